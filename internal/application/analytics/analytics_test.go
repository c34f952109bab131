package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// ==========================================
// Fakes
// ==========================================

type fakeSales struct {
	lines     []entity.SaleLine
	total     decimal.Decimal
	branches  []entity.BranchSales
	linesErr  error
	totalErr  error
	branchErr error
	calls     int
}

func (f *fakeSales) ListSaleLines(context.Context) ([]entity.SaleLine, error) {
	f.calls++
	return f.lines, f.linesErr
}
func (f *fakeSales) TotalSales(context.Context) (decimal.Decimal, error) { return f.total, f.totalErr }
func (f *fakeSales) SalesByBranch(context.Context) ([]entity.BranchSales, error) {
	return f.branches, f.branchErr
}

type fakeBalances struct {
	list []entity.StockBalance
	err  error
}

func (f *fakeBalances) ListBalances(context.Context) ([]entity.StockBalance, error) {
	return f.list, f.err
}

type fakeNames struct{}

func (fakeNames) MenuName(id string) (string, bool) {
	names := map[string]string{"m1": "Pad Thai", "m2": "Tom Yum", "m3": "Thai Tea"}
	n, ok := names[id]
	return n, ok
}

func (fakeNames) BranchName(id string) string {
	if id == "b1" {
		return "Central"
	}
	return id
}

type mapCache struct {
	data map[string]*dto.DashboardSummaryDTO
}

func (c *mapCache) Get(_ context.Context, key string) (*dto.DashboardSummaryDTO, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, v *dto.DashboardSummaryDTO, _ time.Duration) error {
	c.data[key] = v
	return nil
}

type captureExporter struct{ doc analytics.ReportDocument }

func (e *captureExporter) Export(_ context.Context, doc analytics.ReportDocument) ([]byte, error) {
	e.doc = doc
	return []byte("ok"), nil
}
func (e *captureExporter) ContentType() string { return "text/plain" }
func (e *captureExporter) Extension() string   { return "txt" }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func at(s string) *time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return &t
}

func sampleSales() *fakeSales {
	return &fakeSales{
		total: d("480.5"),
		lines: []entity.SaleLine{
			{MenuID: "m1", Quantity: d("2"), UnitPrice: d("60"), ReceiptCreatedAt: at("2026-03-01T10:00:00Z")},
			{MenuID: "m2", Quantity: d("1"), UnitPrice: d("200"), ReceiptCreatedAt: at("2026-03-05T10:00:00Z")},
			{MenuID: "m3", Quantity: d("4"), UnitPrice: d("25"), ReceiptCreatedAt: nil},
		},
		branches: []entity.BranchSales{{BranchID: "b1", Total: d("300")}, {BranchID: "bX", Total: d("180.5")}},
	}
}

// ==========================================
// Dashboard
// ==========================================

func TestDashboard_GetSummary(t *testing.T) {
	balances := &fakeBalances{list: []entity.StockBalance{
		{IngredientID: "rice", IngredientName: "Rice", BranchID: "b1", BranchName: "Central", CurrentStock: d("1"), LowStockThreshold: ptr(d("5"))},
		{IngredientID: "oil", IngredientName: "Oil", BranchID: "b1", BranchName: "Central", CurrentStock: d("2"), LowStockThreshold: nil},
		{IngredientID: "egg", IngredientName: "Egg", BranchID: "b1", BranchName: "Central", CurrentStock: d("5"), LowStockThreshold: ptr(d("5"))},
		{IngredientID: "salt", IngredientName: "Salt", BranchID: "b1", BranchName: "Central", CurrentStock: d("9"), LowStockThreshold: ptr(d("5"))},
	}}
	cache := &mapCache{data: map[string]*dto.DashboardSummaryDTO{}}
	uc := analytics.NewDashboardUseCase(sampleSales(), balances, fakeNames{}, cache, time.Minute, zerolog.Nop())

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, d("480.5").Equal(s.TotalSales))
	require.Len(t, s.ProductMix, 3)
	assert.Equal(t, "Tom Yum", s.ProductMix[0].Name)
	assert.Equal(t, "Pad Thai", s.ProductMix[1].Name)

	require.Len(t, s.LowStock, 2, "umbral nulo no alerta; igual al umbral sí")
	assert.Equal(t, "rice", s.LowStock[0].IngredientID)
	assert.Equal(t, "egg", s.LowStock[1].IngredientID)

	require.Len(t, s.BranchSales, 2)
	assert.Equal(t, "Central", s.BranchSales[0].BranchName)
	assert.Equal(t, "bX", s.BranchSales[1].BranchName, "sucursal desconocida usa el id")

	assert.Len(t, cache.data, 1, "se guarda la instantánea")
}

func TestDashboard_SeccionesFallanPorSeparado(t *testing.T) {
	sales := sampleSales()
	sales.totalErr = errors.New("down")
	sales.branchErr = errors.New("down")
	balances := &fakeBalances{err: &domain.RemoteError{Kind: domain.KindPermission}}
	uc := analytics.NewDashboardUseCase(sales, balances, fakeNames{}, &mapCache{data: map[string]*dto.DashboardSummaryDTO{}}, 0, zerolog.Nop())

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, s.TotalSales.IsZero())
	assert.Equal(t, i18n.ReportLoadFailed, s.SalesError)
	assert.Equal(t, i18n.AlertsLoadFailed, s.LowStockError)
	assert.Equal(t, i18n.BranchSalesFailed, s.BranchSalesError)
	assert.Empty(t, s.ProductMixError)
	assert.Len(t, s.ProductMix, 3)
}

func TestDashboard_SinVentasNiAlertas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeSales{}, &fakeBalances{}, fakeNames{}, &mapCache{data: map[string]*dto.DashboardSummaryDTO{}}, 0, zerolog.Nop())
	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, s.ProductMixEmpty)
	assert.Equal(t, i18n.ReportNoData, s.ProductMixLabel)
	assert.Equal(t, i18n.AlertsNone, s.LowStockLabel)
	assert.NotNil(t, s.BranchSales)
}

func TestDashboard_UsaCacheHastaRefresh(t *testing.T) {
	sales := sampleSales()
	cache := &mapCache{data: map[string]*dto.DashboardSummaryDTO{}}
	uc := analytics.NewDashboardUseCase(sales, &fakeBalances{}, fakeNames{}, cache, time.Minute, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	_, err = uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sales.calls)

	require.NoError(t, uc.Refresh(ctx))
	assert.Equal(t, 2, sales.calls)
}

// ==========================================
// Reportes
// ==========================================

func TestReport_GetProductMix(t *testing.T) {
	uc := analytics.NewReportUseCase(sampleSales(), fakeNames{}, zerolog.Nop())

	res, err := uc.GetProductMix(context.Background(), dto.ProductMixRequest{From: "2026-03-02", To: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 2, "m1 queda fuera del rango; m3 sin fecha se conserva")
	assert.Equal(t, "Tom Yum", res.Rows[0].Name)
	assert.Equal(t, "Thai Tea", res.Rows[1].Name)
	assert.True(t, d("300").Equal(res.TotalRevenue))
	assert.False(t, res.NoData)

	res, err = uc.GetProductMix(context.Background(), dto.ProductMixRequest{Search: "thai"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Len(t, res.Top, 3, "el top no depende del filtro de búsqueda")
}

func TestReport_BusquedaSinCoincidenciasNoEsSinDatos(t *testing.T) {
	uc := analytics.NewReportUseCase(sampleSales(), fakeNames{}, zerolog.Nop())

	res, err := uc.GetProductMix(context.Background(), dto.ProductMixRequest{Search: "burger"})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.False(t, res.NoData, "hay ventas; solo la búsqueda no coincide")
	assert.Empty(t, res.NoDataLabel)
	assert.Len(t, res.Top, 3)
	assert.True(t, res.TotalRevenue.IsZero())

	exp := &captureExporter{}
	_, _, err = uc.Export(context.Background(), dto.ProductMixRequest{Search: "burger"}, language.English, exp)
	require.NoError(t, err)
	assert.Empty(t, exp.doc.Rows)
	assert.False(t, exp.doc.NoData)
}

func TestReport_SinDatosYRangoInvalido(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeSales{}, fakeNames{}, zerolog.Nop())

	res, err := uc.GetProductMix(context.Background(), dto.ProductMixRequest{})
	require.NoError(t, err)
	assert.True(t, res.NoData)
	assert.Equal(t, i18n.ReportNoData, res.NoDataLabel)
	assert.NotNil(t, res.Rows)

	_, err = uc.GetProductMix(context.Background(), dto.ProductMixRequest{From: "03/01/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReport_Export(t *testing.T) {
	uc := analytics.NewReportUseCase(sampleSales(), fakeNames{}, zerolog.Nop())
	exp := &captureExporter{}

	data, name, err := uc.Export(context.Background(), dto.ProductMixRequest{}, language.English, exp)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
	assert.Contains(t, name, "product-mix-")
	assert.Contains(t, name, ".txt")

	require.Len(t, exp.doc.Rows, 3)
	assert.Equal(t, "Tom Yum", exp.doc.Rows[0].Name)
	assert.Equal(t, "$200.00", exp.doc.Rows[0].Revenue)
	assert.Equal(t, [3]string{"Menu item", "Quantity", "Revenue"}, exp.doc.Headers)
	assert.Equal(t, "No sales yet", exp.doc.NoDataLabel)
	assert.False(t, exp.doc.NoData)

	empty := &captureExporter{}
	_, _, err = analytics.NewReportUseCase(&fakeSales{}, fakeNames{}, zerolog.Nop()).
		Export(context.Background(), dto.ProductMixRequest{}, language.English, empty)
	require.NoError(t, err)
	assert.True(t, empty.doc.NoData)
}
