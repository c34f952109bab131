// Package xlsx exporta el reporte de product mix a una planilla Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
)

var _ analytics.ReportExporter = (*ReportExporter)(nil)

const sheetName = "Product mix"

// ReportExporter implementa analytics.ReportExporter con excelize.
type ReportExporter struct{}

func NewReportExporter() *ReportExporter { return &ReportExporter{} }

func (e *ReportExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ReportExporter) Extension() string { return "xlsx" }

// Export escribe título, período, cabecera, una fila por ítem (o la fila de "sin ventas") y el total.
func (e *ReportExporter) Export(_ context.Context, doc analytics.ReportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	rows := [][]any{
		{doc.Title},
		{doc.Period},
		{},
		{doc.Headers[0], doc.Headers[1], doc.Headers[2]},
	}
	if doc.NoData {
		rows = append(rows, []any{doc.NoDataLabel})
	}
	for _, r := range doc.Rows {
		rows = append(rows, []any{r.Name, r.Quantity, r.Revenue})
	}
	rows = append(rows, []any{}, []any{"", doc.TotalLabel, doc.Total})

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := r
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	last := len(rows)
	_ = f.SetCellStyle(sheetName, "A1", "A1", title)
	_ = f.SetCellStyle(sheetName, "A4", "C4", bold)
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("B%d", last), fmt.Sprintf("C%d", last), bold)
	_ = f.SetColWidth(sheetName, "A", "A", 40)
	_ = f.SetColWidth(sheetName, "B", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
