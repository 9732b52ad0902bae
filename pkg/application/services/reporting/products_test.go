package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	testhelpers "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/testing"
)

func TestService_TopProductsByUnits(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	rows, err := NewService().TopProductsByUnits(ctx, tables)
	if err != nil {
		t.Fatalf("TopProductsByUnits failed: %v", err)
	}

	// Product 5001 ships from two plants and appears once per (product, plant)
	// group, not merged.
	checkRows(t, rows, [][]string{
		{"5003", "PLANT03", "200"},
		{"5001", "PLANT01", "110"},
		{"5002", "PLANT01", "40"},
		{"5002", "PLANT02", "30"},
		{"5001", "PLANT02", "20"},
	})
}

func TestService_TopProductsByUnits_CapsAtFive(t *testing.T) {
	var orders []*entities.Order
	for i := 0; i < 6; i++ {
		orders = append(orders, testhelpers.MustOrder(
			entities.OrderID(i+1), testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0,
			entities.ProductID(i+1), "PLANT01", "PORT02", entities.Quantity(60-10*i), "100",
		))
	}
	tables := tableSet{orders: orders}.build(t)

	rows, err := NewService().TopProductsByUnits(context.Background(), tables)
	if err != nil {
		t.Fatalf("TopProductsByUnits failed: %v", err)
	}

	checkRows(t, rows, [][]string{
		{"1", "PLANT01", "60"},
		{"2", "PLANT01", "50"},
		{"3", "PLANT01", "40"},
		{"4", "PLANT01", "30"},
		{"5", "PLANT01", "20"},
	})
}

func TestService_TopProductsByOrderCount(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	rows, err := NewService().TopProductsByOrderCount(ctx, tables)
	if err != nil {
		t.Fatalf("TopProductsByOrderCount failed: %v", err)
	}

	checkRows(t, rows, [][]string{
		{"5001", "3"},
		{"5002", "2"},
		{"5003", "1"},
	})
}

func TestService_TopProductsByOrderCount_TiesSortByProduct(t *testing.T) {
	tables := tableSet{
		orders: []*entities.Order{
			testhelpers.MustOrder(1, testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0, 7, "PLANT01", "PORT02", 10, "100"),
			testhelpers.MustOrder(2, testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0, 3, "PLANT01", "PORT02", 10, "100"),
		},
	}.build(t)

	rows, err := NewService().TopProductsByOrderCount(context.Background(), tables)
	if err != nil {
		t.Fatalf("TopProductsByOrderCount failed: %v", err)
	}

	checkRows(t, rows, [][]string{
		{"3", "1"},
		{"7", "1"},
	})
}
