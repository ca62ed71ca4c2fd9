package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns active orders oldest first. The result is never nil.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	final := make([]string, 0, 2)
	for _, s := range order.AllStatuses() {
		if s.IsFinal() {
			final = append(final, s.String())
		}
	}

	return readSnapshots(ctx, h.db, "WHERE status NOT IN ? ORDER BY created_at, id", final)
}
