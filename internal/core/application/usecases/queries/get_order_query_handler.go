package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order snapshot or an errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	snapshots, err := readSnapshots(ctx, h.db, "WHERE id = ?", query.OrderID().UUID().Bytes())
	if err != nil {
		return order.Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return order.Snapshot{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return snapshots[0], nil
}
