package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
)

func export(t *testing.T, rows ...analytics.ExportRow) *excelize.File {
	t.Helper()
	return exportDoc(t, len(rows) == 0, rows...)
}

func exportDoc(t *testing.T, noData bool, rows ...analytics.ExportRow) *excelize.File {
	t.Helper()
	out, err := NewReportExporter().Export(context.Background(), analytics.ReportDocument{
		Title:       "Product mix report",
		Period:      "*",
		Headers:     [3]string{"Menu item", "Quantity", "Revenue"},
		Rows:        rows,
		NoData:      noData,
		NoDataLabel: "No sales yet",
		TotalLabel:  "Total",
		Total:       "$300.00",
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestReportExporter_Filas(t *testing.T) {
	f := export(t,
		analytics.ExportRow{Name: "Tom Yum", Quantity: "1", Revenue: "$200.00"},
		analytics.ExportRow{Name: "Pad Thai", Quantity: "2", Revenue: "$100.00"},
	)
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	assert.Equal(t, "Product mix report", rows[0][0])
	assert.Equal(t, []string{"Menu item", "Quantity", "Revenue"}, rows[3])
	assert.Equal(t, []string{"Tom Yum", "1", "$200.00"}, rows[4])
	assert.Equal(t, []string{"Pad Thai", "2", "$100.00"}, rows[5])
	assert.Equal(t, []string{"", "Total", "$300.00"}, rows[len(rows)-1])
}

func TestReportExporter_SinVentas(t *testing.T) {
	f := export(t)
	v, err := f.GetCellValue(sheetName, "A5")
	require.NoError(t, err)
	assert.Equal(t, "No sales yet", v)
}

func TestReportExporter_BusquedaVaciaSinLeyenda(t *testing.T) {
	f := exportDoc(t, false)
	v, err := f.GetCellValue(sheetName, "A5")
	require.NoError(t, err)
	assert.Empty(t, v)
}
