package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func tableNamed(name string) table {
	for _, t := range tables {
		if t.name == name {
			return t
		}
	}
	panic(name)
}

func TestReadCSV_Windows874(t *testing.T) {
	raw, err := charmap.Windows874.NewEncoder().String("id,name\nb1,สาขาหลัก\n")
	require.NoError(t, err)

	records, err := readCSV([]byte(raw))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "สาขาหลัก", records[1][1])
}

func TestReadCSV_UTF8ConBOM(t *testing.T) {
	records, err := readCSV([]byte("\xEF\xBB\xBFid,name\ns1,Fresh Co\n"))
	require.NoError(t, err)
	assert.Equal(t, "id", records[0][0])
}

func TestNormalize_OrdenPorEncabezado(t *testing.T) {
	records := [][]string{
		{"Name", "LOW_STOCK_THRESHOLD", "id", "unit"},
		{"Rice", "5", "rice", "kg"},
		{"", "", "", ""},
		{"Fish sauce", "", "fish", ""},
	}
	rows, err := normalize(tableNamed("ingredients"), records)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"rice", "Rice", "kg", "5"},
		{"fish", "Fish sauce", "", ""},
	}, rows)
}

func TestNormalize_Errores(t *testing.T) {
	_, err := normalize(tableNamed("branches"), [][]string{{"id"}, {"b1"}})
	assert.ErrorContains(t, err, `falta la columna "name"`)

	_, err = normalize(tableNamed("menus"), [][]string{{"id", "name", "price"}, {"m1", "Pad Thai", "fifty"}})
	assert.ErrorContains(t, err, "fila 2")

	_, err = normalize(tableNamed("suppliers"), [][]string{{"id", "name"}, {"s1", " "}})
	assert.ErrorContains(t, err, "name vacío")
}

func TestWriteSQL_Upsert(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"m1", "Khao Man Gai", "45.50"}, {"m2", "Chef's special", ""}}
	require.NoError(t, writeSQL(&buf, tableNamed("menus"), rows))

	sql := buf.String()
	assert.Contains(t, sql, "INSERT INTO menus (id, name, price) VALUES")
	assert.Contains(t, sql, "('m1', 'Khao Man Gai', 45.50),")
	assert.Contains(t, sql, "('m2', 'Chef''s special', NULL)\n")
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price;")

	buf.Reset()
	require.NoError(t, writeSQL(&buf, tableNamed("menus"), nil))
	assert.Empty(t, buf.String())
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Branches"))
	require.NoError(t, f.SetSheetRow("Branches", "A1", &[]any{"id", "name"}))
	require.NoError(t, f.SetSheetRow("Branches", "A2", &[]any{"b1", "Central"}))
	_, err := f.NewSheet("notes")
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := readWorkbook(buf)
	require.NoError(t, err)
	require.Contains(t, got, "branches")
	assert.NotContains(t, got, "notes")
	assert.Equal(t, "Central", got["branches"][1][1])
	assert.True(t, strings.EqualFold("id", got["branches"][0][0]))
}
