// Package analytics contiene los casos de uso de lectura: el resumen del dashboard
// y el reporte de product mix con sus exportaciones.
package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/report"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

const (
	dashboardTopProducts = 5
	summaryCacheKey      = "backoffice:dashboard:summary"
)

// DashboardUseCase arma el resumen: ventas totales, product mix, alertas de stock bajo
// y ventas por sucursal. Las secciones se consultan en paralelo y fallan por separado.
type DashboardUseCase struct {
	sales    repository.SalesRepository
	balances repository.StockBalanceRepository
	names    NameLookup
	cache    SummaryCache
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	sales repository.SalesRepository,
	balances repository.StockBalanceRepository,
	names NameLookup,
	cache SummaryCache,
	ttl time.Duration,
	log zerolog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		sales:    sales,
		balances: balances,
		names:    names,
		cache:    cache,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// GetSummary devuelve la instantánea guardada o la calcula si no hay.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, ok, err := uc.cache.Get(ctx, summaryCacheKey); err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: leer caché")
	} else if ok {
		return cached, nil
	}
	return uc.compute(ctx)
}

// Refresh recalcula y reemplaza la instantánea. Lo disparan las escrituras y las notificaciones.
func (uc *DashboardUseCase) Refresh(ctx context.Context) error {
	_, err := uc.compute(ctx)
	return err
}

func (uc *DashboardUseCase) compute(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type linesResult struct {
		lines []entity.SaleLine
		err   error
	}
	type balancesResult struct {
		list []entity.StockBalance
		err  error
	}
	type branchResult struct {
		list []entity.BranchSales
		err  error
	}

	totalCh := make(chan totalResult, 1)
	linesCh := make(chan linesResult, 1)
	balCh := make(chan balancesResult, 1)
	branchCh := make(chan branchResult, 1)

	go func() {
		t, err := uc.sales.TotalSales(ctx)
		totalCh <- totalResult{t, err}
	}()
	go func() {
		l, err := uc.sales.ListSaleLines(ctx)
		linesCh <- linesResult{l, err}
	}()
	go func() {
		b, err := uc.balances.ListBalances(ctx)
		balCh <- balancesResult{b, err}
	}()
	go func() {
		b, err := uc.sales.SalesByBranch(ctx)
		branchCh <- branchResult{b, err}
	}()

	total := <-totalCh
	lines := <-linesCh
	bal := <-balCh
	branches := <-branchCh

	summary := &dto.DashboardSummaryDTO{
		TotalSales:  decimal.Zero,
		ProductMix:  []dto.ProductMixRowDTO{},
		LowStock:    []dto.LowStockAlertDTO{},
		BranchSales: []dto.BranchSalesDTO{},
		GeneratedAt: uc.now().UTC().Format(time.RFC3339),
	}

	// Ventas totales: si falla se muestra 0 y se registra.
	if total.err != nil {
		uc.log.Warn().Err(total.err).Msg("dashboard: ventas totales")
		summary.SalesError = i18n.ReportLoadFailed
	} else {
		summary.TotalSales = total.total.Round(2)
	}

	if lines.err != nil {
		uc.log.Warn().Err(lines.err).Msg("dashboard: product mix")
		summary.ProductMixError = i18n.ReportLoadFailed
	} else {
		res := report.Aggregate(lines.lines, report.Range{}, uc.names)
		summary.ProductMixEmpty = res.NoData
		if res.NoData {
			summary.ProductMixLabel = i18n.ReportNoData
		}
		summary.ProductMix = toRowDTOs(report.Top(res.Rows, dashboardTopProducts))
	}

	if bal.err != nil {
		uc.log.Warn().Err(bal.err).Msg("dashboard: saldos de stock")
		summary.LowStockError = i18n.AlertsLoadFailed
	} else {
		summary.LowStock = lowStockAlerts(bal.list)
		if len(summary.LowStock) == 0 {
			summary.LowStockLabel = i18n.AlertsNone
		}
	}

	if branches.err != nil {
		uc.log.Warn().Err(branches.err).Msg("dashboard: ventas por sucursal")
		summary.BranchSalesError = i18n.BranchSalesFailed
	} else {
		for _, b := range branches.list {
			summary.BranchSales = append(summary.BranchSales, dto.BranchSalesDTO{
				BranchID:   b.BranchID,
				BranchName: uc.names.BranchName(b.BranchID),
				Total:      b.Total.Round(2),
			})
		}
	}

	if err := uc.cache.Set(ctx, summaryCacheKey, summary, uc.ttl); err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: guardar caché")
	}
	return summary, nil
}

// lowStockAlerts conserva el orden de la vista (stock actual ascendente).
func lowStockAlerts(list []entity.StockBalance) []dto.LowStockAlertDTO {
	out := []dto.LowStockAlertDTO{}
	for _, b := range list {
		if !b.IsLow() {
			continue
		}
		out = append(out, dto.LowStockAlertDTO{
			IngredientID:      b.IngredientID,
			IngredientName:    b.IngredientName,
			BranchID:          b.BranchID,
			BranchName:        b.BranchName,
			CurrentStock:      b.CurrentStock,
			LowStockThreshold: *b.LowStockThreshold,
		})
	}
	return out
}

func toRowDTOs(rows []report.Row) []dto.ProductMixRowDTO {
	out := make([]dto.ProductMixRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductMixRowDTO{
			MenuID:   r.MenuID,
			Name:     r.Name,
			Quantity: r.Quantity,
			Revenue:  r.Revenue.Round(2),
		})
	}
	return out
}
