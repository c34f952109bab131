package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo listas de ingredientes, sucursales, proveedores y menú.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador de datos de referencia.
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

func (r *ReferenceRepo) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id::text, name, COALESCE(unit, ''), low_stock_threshold
		FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, classifyError(err, "ingredients")
	}
	defer rows.Close()

	var list []entity.Ingredient
	for rows.Next() {
		var (
			i         entity.Ingredient
			threshold *decimal.Decimal
		)
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &threshold); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		i.LowStockThreshold = threshold
		list = append(list, i)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "ingredients")
	}
	return list, nil
}

func (r *ReferenceRepo) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name FROM branches ORDER BY name`)
	if err != nil {
		return nil, classifyError(err, "branches")
	}
	defer rows.Close()

	var list []entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "branches")
	}
	return list, nil
}

func (r *ReferenceRepo) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, classifyError(err, "suppliers")
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "suppliers")
	}
	return list, nil
}

func (r *ReferenceRepo) ListMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name, COALESCE(price, 0) FROM menus ORDER BY name`)
	if err != nil {
		return nil, classifyError(err, "menus")
	}
	defer rows.Close()

	var list []entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "menus")
	}
	return list, nil
}

// CreateSupplier inserta un proveedor y devuelve la fila creada.
func (r *ReferenceRepo) CreateSupplier(ctx context.Context, name string) (*entity.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("name", "requerido")
	}
	var s entity.Supplier
	err := r.q.QueryRow(ctx, `INSERT INTO suppliers (name) VALUES ($1) RETURNING id::text, name`, name).
		Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, classifyError(err, "suppliers")
	}
	return &s, nil
}
