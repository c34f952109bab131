package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// table tabla de referencia sembrable. columns[0] es la clave del upsert.
type table struct {
	name     string
	columns  []string
	numeric  map[string]bool
	required []string
}

var tables = []table{
	{name: "ingredients", columns: []string{"id", "name", "unit", "low_stock_threshold"}, numeric: map[string]bool{"low_stock_threshold": true}, required: []string{"id", "name"}},
	{name: "branches", columns: []string{"id", "name"}, required: []string{"id", "name"}},
	{name: "suppliers", columns: []string{"id", "name"}, required: []string{"id", "name"}},
	{name: "menus", columns: []string{"id", "name", "price"}, numeric: map[string]bool{"price": true}, required: []string{"id", "name"}},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText devuelve el contenido en UTF-8. Los exports que no son UTF-8 válido se leen como Windows-874 (TIS-620).
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	out, _, err := transform.Bytes(charmap.Windows874.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decodificar windows-874: %w", err)
	}
	return string(out), nil
}

// readCSV lee un CSV con fila de encabezados.
func readCSV(data []byte) ([][]string, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// readWorkbook lee una hoja por tabla (nombre de hoja = nombre de tabla). Las hojas ausentes se omiten.
func readWorkbook(r io.Reader) (map[string][][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	out := make(map[string][][]string)
	for _, sheet := range f.GetSheetList() {
		name := strings.ToLower(strings.TrimSpace(sheet))
		if !knownTable(name) {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("hoja %s: %w", sheet, err)
		}
		out[name] = rows
	}
	return out, nil
}

func knownTable(name string) bool {
	for _, t := range tables {
		if t.name == name {
			return true
		}
	}
	return false
}

// normalize ordena cada registro según t.columns usando los encabezados (sin distinguir mayúsculas).
// Filas vacías se saltan; falta de columnas requeridas o números inválidos son error con número de fila.
func normalize(t table, records [][]string) ([][]string, error) {
	if len(records) == 0 {
		return nil, nil
	}
	pos := make(map[string]int)
	for i, h := range records[0] {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range t.required {
		if _, ok := pos[c]; !ok {
			return nil, fmt.Errorf("%s: falta la columna %q", t.name, c)
		}
	}

	var out [][]string
	for n, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		line := n + 2
		row := make([]string, len(t.columns))
		for i, c := range t.columns {
			if p, ok := pos[c]; ok && p < len(rec) {
				row[i] = strings.TrimSpace(rec[p])
			}
			if row[i] != "" && t.numeric[c] {
				if _, err := decimal.NewFromString(row[i]); err != nil {
					return nil, fmt.Errorf("%s fila %d: %s no es numérico: %q", t.name, line, c, row[i])
				}
			}
		}
		for _, c := range t.required {
			if row[indexOf(t.columns, c)] == "" {
				return nil, fmt.Errorf("%s fila %d: %s vacío", t.name, line, c)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// writeSQL escribe un upsert idempotente por tabla.
func writeSQL(w io.Writer, t table, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s (%d filas)\n", t.name, len(rows))
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES\n", t.name, strings.Join(t.columns, ", "))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = literal(v, t.numeric[t.columns[j]])
		}
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  (%s)%s\n", strings.Join(vals, ", "), sep)
	}
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	fmt.Fprintf(&b, "ON CONFLICT (%s) DO UPDATE SET %s;\n\n", t.columns[0], strings.Join(sets, ", "))
	_, err := io.WriteString(w, b.String())
	return err
}

func literal(v string, numeric bool) string {
	switch {
	case v == "":
		return "NULL"
	case numeric:
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
