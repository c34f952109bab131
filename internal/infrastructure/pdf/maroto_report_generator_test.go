package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
)

func doc(rows ...analytics.ExportRow) analytics.ReportDocument {
	return analytics.ReportDocument{
		Title:       "Product mix report",
		Period:      "2026-03-01 – 2026-03-31",
		Headers:     [3]string{"Menu item", "Quantity", "Revenue"},
		Rows:        rows,
		NoDataLabel: "No sales yet",
		TotalLabel:  "Total",
		Total:       "$0.00",
		GeneratedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMarotoReportGenerator_Export(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	out, err := g.Export(context.Background(), doc(
		analytics.ExportRow{Name: "Pad Thai", Quantity: "3", Revenue: "$180.00"},
		analytics.ExportRow{Name: "Tom Yum", Quantity: "1", Revenue: "$120.00"},
	))
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestMarotoReportGenerator_SinFilas(t *testing.T) {
	empty := doc()
	empty.NoData = true
	out, err := pdf.NewMarotoReportGenerator().Export(context.Background(), empty)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))

	out, err = pdf.NewMarotoReportGenerator().Export(context.Background(), doc())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]), "búsqueda sin coincidencias: tabla vacía")
}
