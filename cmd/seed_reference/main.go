// seed_reference genera un script SQL idempotente para poblar las tablas de referencia
// (ingredients, branches, suppliers, menus) a partir de exports CSV o de un libro .xlsx.
//
// Uso: go run ./cmd/seed_reference [directorio | archivo.xlsx] [salida.sql]
// En un directorio busca ingredients.csv, branches.csv, suppliers.csv y menus.csv; los que falten se omiten.
// Los CSV pueden venir en UTF-8 o en Windows-874 (exports de POS tailandeses).
// Por defecto escribe migrations/002_seed_reference.sql en la raíz del módulo.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	src := "."
	if len(os.Args) > 1 {
		src = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "migrations", "002_seed_reference.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	sources, err := load(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer datos: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Datos de referencia del back-office\n-- Generado desde %s\n\n", src)
	var summary []string
	for _, t := range tables {
		rows, err := normalize(t, sources[t.name])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if err := writeSQL(out, t, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
			os.Exit(1)
		}
		summary = append(summary, fmt.Sprintf("%d %s", len(rows), t.name))
	}

	fmt.Printf("Generado %s: %s\n", outPath, strings.Join(summary, ", "))
}

func load(src string) (map[string][][]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readWorkbook(f)
	}

	out := make(map[string][][]string)
	for _, t := range tables {
		data, err := os.ReadFile(filepath.Join(src, t.name+".csv"))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records, err := readCSV(data)
		if err != nil {
			return nil, fmt.Errorf("%s.csv: %w", t.name, err)
		}
		out[t.name] = records
	}
	return out, nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
