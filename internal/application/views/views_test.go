package views_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/views"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

type refs struct{}

func (refs) Ingredients() []entity.Ingredient {
	return []entity.Ingredient{{ID: "i1", Name: "Rice", Unit: "kg"}, {ID: "i2", Name: "Lime"}}
}
func (refs) Branches() []entity.Branch {
	return []entity.Branch{{ID: "b1", Name: "Central"}, {ID: "b2", Name: "Airport"}}
}
func (refs) Suppliers() []entity.Supplier { return []entity.Supplier{{ID: "s1", Name: "Fresh Farm"}} }

type dash struct{}

func (dash) GetSummary(context.Context) (*dto.DashboardSummaryDTO, error) {
	return &dto.DashboardSummaryDTO{GeneratedAt: "now"}, nil
}

type reports struct{}

func (reports) GetProductMix(context.Context, dto.ProductMixRequest) (*dto.ProductMixResponse, error) {
	return &dto.ProductMixResponse{NoData: true}, nil
}

func newUC() *views.UseCase { return views.NewUseCase(refs{}, dash{}, reports{}) }

func TestShow_StockIn(t *testing.T) {
	v, err := newUC().Show(context.Background(), views.StockIn, language.English)
	require.NoError(t, err)

	require.Len(t, v.Suppliers, 3)
	assert.Equal(t, dto.OptionDTO{Value: "", Label: "-- select supplier --"}, v.Suppliers[0])
	assert.Equal(t, "s1", v.Suppliers[1].Value)
	assert.Equal(t, views.AddNewSupplierValue, v.Suppliers[2].Value)

	require.Len(t, v.Branches, 3)
	assert.Equal(t, "-- select branch --", v.Branches[0].Label)

	require.Len(t, v.Ingredients, 3)
	assert.Equal(t, "Rice (kg)", v.Ingredients[1].Label)
	assert.Equal(t, "Lime", v.Ingredients[2].Label)

	require.NotNil(t, v.DefaultItem)
	assert.Equal(t, "1", v.DefaultItem.Quantity)
	assert.Equal(t, "pcs", v.DefaultItem.Unit)
	assert.Empty(t, v.DefaultItem.IngredientID)
}

func TestShow_StockTransferEnTailandes(t *testing.T) {
	v, err := newUC().Show(context.Background(), views.StockTransfer, language.Thai)
	require.NoError(t, err)
	assert.Equal(t, "-- สาขาต้นทาง --", v.FromBranch[0].Label)
	assert.Equal(t, "-- สาขาปลายทาง --", v.ToBranch[0].Label)
	assert.Len(t, v.FromBranch, 3)
	assert.Nil(t, v.Suppliers)
}

func TestShow_DashboardYReportes(t *testing.T) {
	v, err := newUC().Show(context.Background(), views.Dashboard, language.English)
	require.NoError(t, err)
	require.NotNil(t, v.Dashboard)

	v, err = newUC().Show(context.Background(), views.Reports, language.English)
	require.NoError(t, err)
	require.NotNil(t, v.Report)
	assert.True(t, v.Report.NoData)
}

func TestShow_TodasLasPaginasConocidas(t *testing.T) {
	for _, id := range views.IDs {
		_, err := newUC().Show(context.Background(), id, language.English)
		assert.NoError(t, err, id)
	}
}

func TestShow_Desconocida(t *testing.T) {
	_, err := newUC().Show(context.Background(), "settings", language.English)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
