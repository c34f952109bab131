// Package views arma el modelo de cada página del back-office: qué selectores tiene,
// con qué opciones y con qué fila inicial. Cambiar de página es pedir otro modelo.
package views

import (
	"context"

	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// Identificadores de página.
const (
	Dashboard     = "dashboard"
	StockIn       = "stock-in"
	StockTransfer = "stock-transfer"
	Reports       = "reports"
	Suppliers     = "suppliers"
)

// AddNewSupplierValue valor centinela de la opción "agregar proveedor" del selector.
const AddNewSupplierValue = "__ADD_NEW_SUPPLIER__"

// Valores iniciales de una fila de ingrediente nueva.
const (
	DefaultItemQuantity = "1"
	DefaultItemUnit     = "pcs"
)

// IDs páginas conocidas, en el orden de la navegación.
var IDs = []string{Dashboard, StockIn, StockTransfer, Reports, Suppliers}

// References lectura de la caché de referencia.
type References interface {
	Ingredients() []entity.Ingredient
	Branches() []entity.Branch
	Suppliers() []entity.Supplier
}

// DashboardSource resumen del dashboard.
type DashboardSource interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// ReportSource reporte de product mix.
type ReportSource interface {
	GetProductMix(ctx context.Context, req dto.ProductMixRequest) (*dto.ProductMixResponse, error)
}

// UseCase construye modelos de página.
type UseCase struct {
	refs      References
	dashboard DashboardSource
	reports   ReportSource
}

// NewUseCase construye el caso de uso.
func NewUseCase(refs References, dashboard DashboardSource, reports ReportSource) *UseCase {
	return &UseCase{refs: refs, dashboard: dashboard, reports: reports}
}

// Show devuelve el modelo de la página id en el idioma tag; ErrNotFound si la página no existe.
func (uc *UseCase) Show(ctx context.Context, id string, tag language.Tag) (*dto.ViewDTO, error) {
	v := &dto.ViewDTO{ID: id}
	switch id {
	case Dashboard:
		s, err := uc.dashboard.GetSummary(ctx)
		if err != nil {
			return nil, err
		}
		v.Dashboard = s
	case StockIn:
		v.Suppliers = uc.supplierOptions(tag)
		v.Branches = branchOptions(uc.refs.Branches(), i18n.T(tag, i18n.SelectBranch))
		v.Ingredients = uc.ingredientOptions(tag)
		v.DefaultItem = defaultItem()
	case StockTransfer:
		branches := uc.refs.Branches()
		v.FromBranch = branchOptions(branches, i18n.T(tag, i18n.SelectFromBranch))
		v.ToBranch = branchOptions(branches, i18n.T(tag, i18n.SelectToBranch))
		v.Ingredients = uc.ingredientOptions(tag)
		v.DefaultItem = defaultItem()
	case Reports:
		r, err := uc.reports.GetProductMix(ctx, dto.ProductMixRequest{})
		if err != nil {
			return nil, err
		}
		v.Report = r
	case Suppliers:
		v.Suppliers = uc.supplierOptions(tag)
	default:
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (uc *UseCase) supplierOptions(tag language.Tag) []dto.OptionDTO {
	list := uc.refs.Suppliers()
	opts := make([]dto.OptionDTO, 0, len(list)+2)
	opts = append(opts, dto.OptionDTO{Value: "", Label: i18n.T(tag, i18n.SelectSupplier)})
	for _, s := range list {
		opts = append(opts, dto.OptionDTO{Value: s.ID, Label: s.Name})
	}
	return append(opts, dto.OptionDTO{Value: AddNewSupplierValue, Label: i18n.T(tag, i18n.SupplierAddNewOption)})
}

func (uc *UseCase) ingredientOptions(tag language.Tag) []dto.OptionDTO {
	list := uc.refs.Ingredients()
	opts := make([]dto.OptionDTO, 0, len(list)+1)
	opts = append(opts, dto.OptionDTO{Value: "", Label: i18n.T(tag, i18n.SelectIngredient)})
	for _, i := range list {
		label := i.Name
		if i.Unit != "" {
			label += " (" + i.Unit + ")"
		}
		opts = append(opts, dto.OptionDTO{Value: i.ID, Label: label})
	}
	return opts
}

func branchOptions(list []entity.Branch, placeholder string) []dto.OptionDTO {
	opts := make([]dto.OptionDTO, 0, len(list)+1)
	opts = append(opts, dto.OptionDTO{Value: "", Label: placeholder})
	for _, b := range list {
		opts = append(opts, dto.OptionDTO{Value: b.ID, Label: b.Name})
	}
	return opts
}

func defaultItem() *dto.ItemRowDTO {
	return &dto.ItemRowDTO{Quantity: DefaultItemQuantity, Unit: DefaultItemUnit}
}
