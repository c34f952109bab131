// Package report agrega líneas de venta por producto del menú (product mix).
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Range intervalo cerrado [From, To]; cualquiera de los extremos puede ser nil.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Contains indica si t cae dentro del rango (extremos incluidos).
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// ParseRange construye el rango a partir de fechas YYYY-MM-DD.
// from se interpreta como 00:00:00Z y to como 23:59:59Z del día indicado.
func ParseRange(from, to string) (Range, error) {
	var r Range
	if s := strings.TrimSpace(from); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return Range{}, domain.Invalid("from", fmt.Sprintf("fecha inválida %q", s))
		}
		r.From = &d
	}
	if s := strings.TrimSpace(to); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return Range{}, domain.Invalid("to", fmt.Sprintf("fecha inválida %q", s))
		}
		end := d.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		r.To = &end
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return Range{}, domain.Invalid("to", "el fin del rango es anterior al inicio")
	}
	return r, nil
}

// NameResolver traduce un menu_id a su nombre visible.
type NameResolver interface {
	MenuName(id string) (string, bool)
}

// Row resumen de un producto del menú.
type Row struct {
	MenuID   string
	Name     string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

// Result filas ordenadas por ingreso descendente.
// NoData distingue "no hubo ventas" de "todavía no se cargó".
type Result struct {
	Rows   []Row
	NoData bool
}

// Aggregate filtra por fecha, suma cantidad e ingreso (cantidad × precio unitario) por producto,
// resuelve nombres y ordena por ingreso descendente. Empates conservan el orden de aparición.
// Las líneas sin fecha de recibo siempre se conservan.
func Aggregate(lines []entity.SaleLine, r Range, names NameResolver) Result {
	index := make(map[string]int)
	rows := make([]Row, 0)
	for _, l := range lines {
		if l.ReceiptCreatedAt != nil && !r.Contains(*l.ReceiptCreatedAt) {
			continue
		}
		i, ok := index[l.MenuID]
		if !ok {
			i = len(rows)
			index[l.MenuID] = i
			rows = append(rows, Row{MenuID: l.MenuID, Quantity: decimal.Zero, Revenue: decimal.Zero})
		}
		rows[i].Quantity = rows[i].Quantity.Add(l.Quantity)
		rows[i].Revenue = rows[i].Revenue.Add(l.UnitPrice.Mul(l.Quantity))
	}

	if len(rows) == 0 {
		return Result{NoData: true}
	}

	for i := range rows {
		rows[i].Name = rows[i].MenuID
		if names != nil {
			if n, ok := names.MenuName(rows[i].MenuID); ok {
				rows[i].Name = n
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	return Result{Rows: rows}
}

// Filter conserva las filas cuyo nombre contiene search (sin distinguir mayúsculas).
func Filter(rows []Row, search string) []Row {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// Top devuelve las primeras n filas (product mix del dashboard).
func Top(rows []Row, n int) []Row {
	if n < 0 || len(rows) <= n {
		return rows
	}
	return rows[:n]
}
