package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/report"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

const reportTopProducts = 5

// ReportUseCase reporte de product mix por rango de fechas y sus exportaciones.
// Las líneas se traen completas y se filtran en memoria (ver report.Aggregate).
type ReportUseCase struct {
	sales repository.SalesRepository
	names NameLookup
	log   zerolog.Logger
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales repository.SalesRepository, names NameLookup, log zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{sales: sales, names: names, log: log, now: time.Now}
}

// GetProductMix agrega las ventas del rango, filtra por nombre y devuelve también el top 5.
// NoData se decide antes de la búsqueda: una búsqueda sin coincidencias deja Rows vacío.
func (uc *ReportUseCase) GetProductMix(ctx context.Context, req dto.ProductMixRequest) (*dto.ProductMixResponse, error) {
	r, err := report.ParseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	lines, err := uc.sales.ListSaleLines(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("reporte: leer líneas de venta")
		return nil, fmt.Errorf("reporte: líneas de venta: %w", err)
	}

	res := report.Aggregate(lines, r, uc.names)
	rows := report.Filter(res.Rows, req.Search)

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Revenue)
	}

	resp := &dto.ProductMixResponse{
		From:         strings.TrimSpace(req.From),
		To:           strings.TrimSpace(req.To),
		Rows:         toRowDTOs(rows),
		Top:          toRowDTOs(report.Top(res.Rows, reportTopProducts)),
		NoData:       res.NoData,
		TotalRevenue: total.Round(2),
	}
	if resp.NoData {
		resp.NoDataLabel = i18n.ReportNoData
	}
	return resp, nil
}

// Export genera el reporte con el exportador indicado, con textos en el idioma tag.
func (uc *ReportUseCase) Export(ctx context.Context, req dto.ProductMixRequest, tag language.Tag, exp ReportExporter) ([]byte, string, error) {
	mix, err := uc.GetProductMix(ctx, req)
	if err != nil {
		return nil, "", err
	}

	doc := ReportDocument{
		Title:       i18n.T(tag, i18n.ReportTitle),
		Period:      period(mix.From, mix.To),
		Headers:     [3]string{i18n.T(tag, i18n.ReportColMenu), i18n.T(tag, i18n.ReportColQuantity), i18n.T(tag, i18n.ReportColRevenue)},
		NoData:      mix.NoData,
		NoDataLabel: i18n.T(tag, i18n.ReportNoData),
		TotalLabel:  i18n.T(tag, i18n.ReportTotal),
		Total:       i18n.Money(tag, mix.TotalRevenue),
		GeneratedAt: uc.now(),
	}
	for _, r := range mix.Rows {
		doc.Rows = append(doc.Rows, ExportRow{
			Name:     r.Name,
			Quantity: r.Quantity.String(),
			Revenue:  i18n.Money(tag, r.Revenue),
		})
	}

	data, err := exp.Export(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: exportar %s: %w", exp.Extension(), err)
	}
	filename := fmt.Sprintf("product-mix-%s.%s", uc.now().Format("20060102"), exp.Extension())
	return data, filename, nil
}

func period(from, to string) string {
	switch {
	case from == "" && to == "":
		return "*"
	case from == "":
		return "… – " + to
	case to == "":
		return from + " – …"
	}
	return from + " – " + to
}
