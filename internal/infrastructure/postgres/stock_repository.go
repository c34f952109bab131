package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	_ repository.StockMovementRepository = (*StockRepo)(nil)
	_ repository.StockBalanceRepository  = (*StockRepo)(nil)
)

// StockRepo entradas, traslados y saldos sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q   Querier
	ins *ResilientInserter
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier, ins *ResilientInserter) *StockRepo {
	return &StockRepo{q: q, ins: ins}
}

// CreateStockIn inserta la cabecera en stock_in y sus líneas en stock_in_item.
func (r *StockRepo) CreateStockIn(ctx context.Context, in *entity.StockIn) ([]string, error) {
	res, err := r.ins.Insert(ctx, r.q, InsertSpec{
		Table: "stock_in",
		Columns: headerColumns(
			[]Column{
				{Name: "supplier_id", Value: in.SupplierID},
				{Name: "branch_id", Value: in.BranchID},
			},
			in.Note, in.CreatedAt, in.CreatedBy,
		),
	})
	if err != nil {
		return res.Dropped, err
	}
	in.ID = res.ID

	if err := r.insertItems(ctx, "stock_in_item", "stock_in_id", in.ID, in.Items); err != nil {
		return res.Dropped, err
	}
	return res.Dropped, nil
}

// CreateStockTransfer inserta la cabecera en stock_transfer y sus líneas en stock_transfer_item.
func (r *StockRepo) CreateStockTransfer(ctx context.Context, t *entity.StockTransfer) ([]string, error) {
	res, err := r.ins.Insert(ctx, r.q, InsertSpec{
		Table: "stock_transfer",
		Columns: headerColumns(
			[]Column{
				{Name: "from_branch_id", Value: t.FromBranchID},
				{Name: "to_branch_id", Value: t.ToBranchID},
			},
			t.Note, t.CreatedAt, t.CreatedBy,
		),
	})
	if err != nil {
		return res.Dropped, err
	}
	t.ID = res.ID

	if err := r.insertItems(ctx, "stock_transfer_item", "stock_transfer_id", t.ID, t.Items); err != nil {
		return res.Dropped, err
	}
	return res.Dropped, nil
}

// headerColumns agrega las columnas de auditoría, todas opcionales.
func headerColumns(required []Column, note string, createdAt time.Time, createdBy string) []Column {
	cols := append(required,
		Column{Name: "note", Value: note, Optional: true},
		Column{Name: "created_at", Value: createdAt, Optional: true},
	)
	if createdBy != "" {
		cols = append(cols, Column{Name: "created_by", Value: createdBy, Optional: true})
	}
	return cols
}

func (r *StockRepo) insertItems(ctx context.Context, table, fk, headerID string, items []entity.StockLine) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, ingredient_id, quantity, unit) VALUES ($1, $2, $3, $4)`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{fk}.Sanitize())

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, headerID, it.IngredientID, it.Quantity, it.Unit)
	}
	br := r.q.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return classifyError(err, table)
		}
	}
	return classifyError(br.Close(), table)
}

// ListBalances lee la vista ingredients_stock_balance ordenada por stock actual ascendente.
func (r *StockRepo) ListBalances(ctx context.Context) ([]entity.StockBalance, error) {
	query := `
		SELECT b.ingredient_id::text, COALESCE(i.name, b.ingredient_id::text), i.low_stock_threshold,
		       b.branch_id::text, COALESCE(br.name, b.branch_id::text), COALESCE(b.current_stock, 0)
		FROM ingredients_stock_balance b
		LEFT JOIN ingredients i ON i.id = b.ingredient_id
		LEFT JOIN branches br ON br.id = b.branch_id
		ORDER BY b.current_stock ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, classifyError(err, "ingredients_stock_balance")
	}
	defer rows.Close()

	var list []entity.StockBalance
	for rows.Next() {
		var (
			b         entity.StockBalance
			threshold *decimal.Decimal
		)
		if err := rows.Scan(&b.IngredientID, &b.IngredientName, &threshold,
			&b.BranchID, &b.BranchName, &b.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		b.LowStockThreshold = threshold
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "ingredients_stock_balance")
	}
	return list, nil
}
