// Package order implements the Order aggregate of the food-ordering domain.
//
// The package includes:
//   - Order: the aggregate root owning an ordered list of items, a status,
//     timestamps and optional delivery fee, discount, address and notes
//   - OrderItem: an immutable line item with a derived subtotal
//   - OrderID, OrderItemID: identifier value objects compared by value
//   - Status: the closed set of fulfilment states
//   - TransitionTable: an optional successor table for callers that want to
//     restrict status changes (the aggregate itself never does)
//   - Snapshot: the canonical serialized form of an order
//
// Every change to an order goes through its methods. Mutators never fail and
// never validate; inconsistent results (negative totals, duplicate item ids,
// backward status changes) surface in derived values instead. Construction is
// the only place validation errors are raised.
//
// Totals are integer cents and are recomputed from current state on every call.
package order
