package reporting

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/logging"
)

// Definition describes one report in the catalog
type Definition struct {
	ID          string
	Title       string
	Description string
}

var descriptions = map[string]string{
	dto.ReportOrdersByPlant:         "Order count, total units and total weight per plant",
	dto.ReportOrdersByPlantAndPort:  "Order counts per plant and its valid port pairings",
	dto.ReportTopProductsByUnits:    "Five highest-volume products by units, split by plant",
	dto.ReportTopProductsByOrders:   "Five most-ordered products by order count",
	dto.ReportPlantsAboveAverage:    "Plants whose order count beats the per-plant average",
	dto.ReportTopPlantsByWeight:     "Five heaviest plants by total shipped weight, ranked",
	dto.ReportWeightLimitViolations: "Orders exceeding a matching rate row's weight ceiling",
	dto.ReportWarehouseUtilization:  "Daily shipped units per plant against warehouse capacity",
	dto.ReportOnTimeByCarrier:       "Share of on-time orders per carrier",
	dto.ReportCostPerOrder:          "Freight plus warehouse cost for each priced order",
}

// Catalog returns every report definition in canonical order
func Catalog() []Definition {
	defs := make([]Definition, 0, len(dto.ReportOrder))
	for _, id := range dto.ReportOrder {
		defs = append(defs, Definition{
			ID:          id,
			Title:       dto.ReportTitles[id],
			Description: descriptions[id],
		})
	}
	return defs
}

// Runner executes a selection of reports over one table snapshot. Reports are
// independent pure functions, so the default mode runs them concurrently;
// Sequential mode produces the identical ReportSet one report at a time.
type Runner struct {
	service *Service
	logger  logging.Logger

	// Sequential disables concurrent report execution.
	Sequential bool
}

// NewRunner creates a runner with the default logger
func NewRunner() *Runner {
	return &Runner{service: NewService(), logger: logging.Default()}
}

// Run executes the requested reports (all of them when ids is empty) and
// returns the filled ReportSet. Unknown IDs fail before anything executes.
func (r *Runner) Run(ctx context.Context, tables repositories.Tables, ids ...string) (*dto.ReportSet, error) {
	selected, err := selectReports(ids)
	if err != nil {
		return nil, err
	}

	set := &dto.ReportSet{Meta: dto.Meta{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}}
	start := time.Now()

	if r.Sequential {
		for _, id := range selected {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "report run canceled")
			}
			if err := r.runReport(ctx, tables, id, set); err != nil {
				return nil, err
			}
		}
	} else {
		// Each report writes its own ReportSet field, so the goroutines
		// never touch the same memory.
		g, gctx := errgroup.WithContext(ctx)
		for _, id := range selected {
			id := id
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return errors.Wrap(err, "report run canceled")
				}
				return r.runReport(gctx, tables, id, set)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	set.Meta.Elapsed = time.Since(start)
	set.Meta.Reports = selected
	r.logger.Info("report run complete",
		"run_id", set.Meta.RunID,
		"reports", len(selected),
		"elapsed", set.Meta.Elapsed.String(),
	)
	return set, nil
}

func (r *Runner) runReport(ctx context.Context, tables repositories.Tables, id string, set *dto.ReportSet) error {
	start := time.Now()
	var count int

	switch id {
	case dto.ReportOrdersByPlant:
		rows, err := r.service.OrdersAndWeightByPlant(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.OrdersByPlant = rows
		count = len(rows)
	case dto.ReportOrdersByPlantAndPort:
		rows, err := r.service.OrdersByPlantAndValidPorts(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.OrdersByPlantAndPort = rows
		count = len(rows)
	case dto.ReportTopProductsByUnits:
		rows, err := r.service.TopProductsByUnits(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.TopProductsByUnits = rows
		count = len(rows)
	case dto.ReportTopProductsByOrders:
		rows, err := r.service.TopProductsByOrderCount(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.TopProductsByOrders = rows
		count = len(rows)
	case dto.ReportPlantsAboveAverage:
		rows, err := r.service.PlantsAboveAverageVolume(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.PlantsAboveAverage = rows
		count = len(rows)
	case dto.ReportTopPlantsByWeight:
		rows, err := r.service.TopPlantsByWeight(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.TopPlantsByWeight = rows
		count = len(rows)
	case dto.ReportWeightLimitViolations:
		rows, err := r.service.WeightLimitViolations(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.WeightLimitViolations = rows
		count = len(rows)
	case dto.ReportWarehouseUtilization:
		rows, err := r.service.WarehouseUtilization(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.WarehouseUtilization = rows
		count = len(rows)
	case dto.ReportOnTimeByCarrier:
		rows, err := r.service.OnTimeRateByCarrier(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.OnTimeByCarrier = rows
		count = len(rows)
	case dto.ReportCostPerOrder:
		rows, err := r.service.LogisticsCostPerOrder(ctx, tables)
		if err != nil {
			return errors.Wrapf(err, "report %s", id)
		}
		set.CostPerOrder = rows
		count = len(rows)
	default:
		return errors.Newf("unknown report: %s", id)
	}

	r.logger.Debug("report complete",
		"report", id,
		"rows", count,
		"elapsed", time.Since(start).String(),
	)
	return nil
}

// selectReports resolves the requested IDs to canonical order, rejecting
// unknown IDs and collapsing duplicates.
func selectReports(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return append([]string(nil), dto.ReportOrder...), nil
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := dto.ReportTitles[id]; !ok {
			return nil, errors.Newf("unknown report: %s", id)
		}
		want[id] = true
	}

	var selected []string
	for _, id := range dto.ReportOrder {
		if want[id] {
			selected = append(selected, id)
		}
	}
	return selected, nil
}
