package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, snapshot order.Snapshot) error
}
