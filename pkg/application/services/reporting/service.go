// Package reporting implements the join and aggregation engine: ten fixed
// reports computed over an immutable snapshot of the seven logistics tables.
// Every report is a pure function of the snapshot and returns rows in a
// deterministic order, so re-running any report yields identical output.
package reporting

import (
	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// Service computes the fixed reports. It carries no state; all inputs arrive
// through the Tables snapshot.
type Service struct{}

// NewService creates a new reporting service
func NewService() *Service {
	return &Service{}
}

func allOrders(tables repositories.Tables) ([]*entities.Order, error) {
	orders, err := tables.Orders.GetAllOrders()
	if err != nil {
		return nil, errors.Wrap(err, "loading orders")
	}
	return orders, nil
}
