package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// DefaultInsertAttempts tope de intentos cuando la configuración no define otro.
const DefaultInsertAttempts = 4

// Column valor de una columna en un insert. Solo las columnas Optional pueden
// descartarse cuando la tabla remota no las conoce.
type Column struct {
	Name     string
	Value    any
	Optional bool
}

// InsertSpec fila de cabecera a insertar.
type InsertSpec struct {
	Table   string
	Columns []Column
}

// InsertResult id asignado por la base y columnas descartadas por desajuste de esquema.
type InsertResult struct {
	ID       string
	Dropped  []string
	Attempts int
}

type insertFunc func(ctx context.Context, table string, cols []Column) (string, error)

// ResilientInserter inserta cabeceras reintentando sin las columnas opcionales
// que la tabla remota rechaza. No hay ningún otro reintento.
type ResilientInserter struct {
	maxAttempts int
	log         zerolog.Logger
	exec        insertFunc
}

// NewResilientInserter construye el helper; maxAttempts < 1 usa DefaultInsertAttempts.
func NewResilientInserter(maxAttempts int, log zerolog.Logger) *ResilientInserter {
	if maxAttempts < 1 {
		maxAttempts = DefaultInsertAttempts
	}
	return &ResilientInserter{maxAttempts: maxAttempts, log: log}
}

// Insert ejecuta el insert sobre q. Cada intento corre en su propia (sub)transacción,
// así un intento fallido no invalida la transacción que lo envuelve.
func (ri *ResilientInserter) Insert(ctx context.Context, q Querier, spec InsertSpec) (InsertResult, error) {
	exec := ri.exec
	if exec == nil {
		exec = func(ctx context.Context, table string, cols []Column) (string, error) {
			return insertOnce(ctx, q, table, cols)
		}
	}
	res, err := ri.run(ctx, spec, exec)
	if len(res.Dropped) > 0 {
		ri.log.Warn().
			Str("table", spec.Table).
			Strs("dropped_columns", res.Dropped).
			Int("attempts", res.Attempts).
			Msg("columnas opcionales descartadas por desajuste de esquema")
	}
	return res, err
}

func (ri *ResilientInserter) run(ctx context.Context, spec InsertSpec, exec insertFunc) (InsertResult, error) {
	cols := append([]Column(nil), spec.Columns...)
	var res InsertResult

	for {
		res.Attempts++
		id, err := exec(ctx, spec.Table, cols)
		if err == nil {
			res.ID = id
			return res, nil
		}

		var re *domain.RemoteError
		if !errors.As(err, &re) || re.Kind != domain.KindSchemaMismatch || re.Column == "" {
			return res, err
		}
		if res.Attempts >= ri.maxAttempts {
			return res, err
		}
		idx := indexOfColumn(cols, re.Column)
		if idx < 0 || !cols[idx].Optional {
			return res, err
		}
		ri.log.Debug().Str("table", spec.Table).Str("column", re.Column).Msg("reintentando insert sin columna")
		res.Dropped = append(res.Dropped, re.Column)
		cols = append(cols[:idx:idx], cols[idx+1:]...)
	}
}

func indexOfColumn(cols []Column, name string) int {
	for i, c := range cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func insertOnce(ctx context.Context, q Querier, table string, cols []Column) (string, error) {
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		names[i] = pgx.Identifier{c.Name}.Sanitize()
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = c.Value
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id::text",
		pgx.Identifier{table}.Sanitize(), strings.Join(names, ", "), strings.Join(marks, ", "))

	tx, err := q.Begin(ctx)
	if err != nil {
		return "", classifyError(err, table)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", classifyError(err, table)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", classifyError(err, table)
	}
	return id, nil
}
