package memory

import (
	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	orders     []entities.Order
	ordersByID map[entities.OrderID]int
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository(expectedOrders int) *OrderRepository {
	return &OrderRepository{
		orders:     make([]entities.Order, 0, expectedOrders),
		ordersByID: make(map[entities.OrderID]int, expectedOrders),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders loads orders into the repository. Order IDs must be unique.
func (r *OrderRepository) LoadOrders(orders []*entities.Order) error {
	for _, order := range orders {
		if _, exists := r.ordersByID[order.ID]; exists {
			return errors.Newf("duplicate order ID: %d", order.ID)
		}
		r.ordersByID[order.ID] = len(r.orders)
		r.orders = append(r.orders, *order)
	}
	return nil
}

// GetAllOrders returns all orders in load order
func (r *OrderRepository) GetAllOrders() ([]*entities.Order, error) {
	var orders []*entities.Order
	for i := range r.orders {
		orders = append(orders, &r.orders[i])
	}
	return orders, nil
}
