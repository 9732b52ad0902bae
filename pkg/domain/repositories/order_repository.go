package repositories

import "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"

// OrderRepository provides access to the order fact table
type OrderRepository interface {
	GetAllOrders() ([]*entities.Order, error)
	LoadOrders(orders []*entities.Order) error
}
