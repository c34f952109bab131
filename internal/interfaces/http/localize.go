package http

import (
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// localizeSummary traduce las claves del resumen y formatea importes. No modifica s (puede venir de caché).
func localizeSummary(tag language.Tag, s *dto.DashboardSummaryDTO) *dto.DashboardSummaryDTO {
	out := *s
	out.TotalSalesLabel = i18n.Money(tag, s.TotalSales)
	out.SalesError = translate(tag, s.SalesError)
	out.ProductMixLabel = translate(tag, s.ProductMixLabel)
	out.ProductMixError = translate(tag, s.ProductMixError)
	out.LowStockLabel = translate(tag, s.LowStockLabel)
	out.LowStockError = translate(tag, s.LowStockError)
	out.BranchSalesError = translate(tag, s.BranchSalesError)

	out.BranchSales = make([]dto.BranchSalesDTO, len(s.BranchSales))
	for i, b := range s.BranchSales {
		b.TotalLabel = i18n.Money(tag, b.Total)
		out.BranchSales[i] = b
	}
	return &out
}

func localizeReport(tag language.Tag, r *dto.ProductMixResponse) *dto.ProductMixResponse {
	out := *r
	out.NoDataLabel = translate(tag, r.NoDataLabel)
	return &out
}

func translate(tag language.Tag, key string) string {
	if key == "" {
		return ""
	}
	return i18n.T(tag, key)
}
