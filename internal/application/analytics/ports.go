package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// NameLookup resolución de nombres desde la caché de referencia.
type NameLookup interface {
	MenuName(id string) (string, bool)
	BranchName(id string) string
}

// SummaryCache instantánea del dashboard.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error
}

// ExportRow fila del reporte ya formateada para el documento.
type ExportRow struct {
	Name     string
	Quantity string
	Revenue  string
}

// ReportDocument contenido de un export del product mix, con textos ya traducidos.
// Con NoData se imprime una sola fila con NoDataLabel.
type ReportDocument struct {
	Title       string
	Period      string
	Headers     [3]string
	Rows        []ExportRow
	NoData      bool
	NoDataLabel string
	TotalLabel  string
	Total       string
	GeneratedAt time.Time
}

// ReportExporter genera un archivo (PDF, XLSX) a partir del documento.
type ReportExporter interface {
	Export(ctx context.Context, doc ReportDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
