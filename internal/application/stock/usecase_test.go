package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ==========================================
// Fakes
// ==========================================

type fakeMovements struct {
	stockIns  []entity.StockIn
	transfers []entity.StockTransfer
	dropped   []string
	err       error
}

func (f *fakeMovements) CreateStockIn(_ context.Context, in *entity.StockIn) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	in.ID = "si-1"
	f.stockIns = append(f.stockIns, *in)
	return f.dropped, nil
}

func (f *fakeMovements) CreateStockTransfer(_ context.Context, t *entity.StockTransfer) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	t.ID = "st-1"
	f.transfers = append(f.transfers, *t)
	return f.dropped, nil
}

type fakeTx struct {
	calls int
	repo  *fakeMovements
}

func (f *fakeTx) Run(ctx context.Context, fn func(repo repository.StockMovementRepository) error) error {
	f.calls++
	return fn(f.repo)
}

type fakeStore struct {
	known     map[string]bool
	suppliers []entity.Supplier
}

func (f *fakeStore) HasIngredient(id string) bool  { return f.known[id] }
func (f *fakeStore) AddSupplier(s entity.Supplier) { f.suppliers = append(f.suppliers, s) }

type fakeRefs struct {
	repository.ReferenceRepository
	created []string
	err     error
}

func (f *fakeRefs) CreateSupplier(_ context.Context, name string) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, name)
	return &entity.Supplier{ID: "sup-9", Name: name}, nil
}

type fakeDash struct{ refreshed int }

func (f *fakeDash) Refresh(context.Context) error { f.refreshed++; return nil }

type fixture struct {
	uc    *stock.UseCase
	tx    *fakeTx
	repo  *fakeMovements
	store *fakeStore
	refs  *fakeRefs
	dash  *fakeDash
}

func newFixture() *fixture {
	repo := &fakeMovements{}
	f := &fixture{
		tx:    &fakeTx{repo: repo},
		repo:  repo,
		store: &fakeStore{known: map[string]bool{"rice": true, "oil": true}},
		refs:  &fakeRefs{},
		dash:  &fakeDash{},
	}
	f.uc = stock.NewUseCase(f.tx, f.refs, f.store, f.dash, zerolog.Nop())
	return f
}

func item(id, qty, unit string) dto.StockItemRequest {
	return dto.StockItemRequest{IngredientID: id, Quantity: decimal.RequireFromString(qty), Unit: unit}
}

// ==========================================
// Stock in
// ==========================================

func TestRecordStockIn_OK(t *testing.T) {
	f := newFixture()
	f.repo.dropped = []string{"created_by"}

	res, err := f.uc.RecordStockIn(context.Background(), "user-1", dto.StockInRequest{
		SupplierID: "s1",
		BranchID:   "b1",
		Items:      []dto.StockItemRequest{item("rice", "2.5", " kg "), item("oil", "1", "L")},
	})

	require.NoError(t, err)
	assert.Equal(t, "si-1", res.ID)
	assert.Equal(t, []string{"created_by"}, res.DroppedColumns)
	require.Len(t, f.repo.stockIns, 1)
	saved := f.repo.stockIns[0]
	assert.Equal(t, entity.DefaultNote, saved.Note)
	assert.Equal(t, "user-1", saved.CreatedBy)
	assert.Equal(t, "kg", saved.Items[0].Unit)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, 1, f.dash.refreshed)
}

func TestRecordStockIn_ValidacionSinLlamadaRemota(t *testing.T) {
	cases := map[string]dto.StockInRequest{
		"sin supplier":  {BranchID: "b1", Items: []dto.StockItemRequest{item("rice", "1", "kg")}},
		"sin branch":    {SupplierID: "s1", Items: []dto.StockItemRequest{item("rice", "1", "kg")}},
		"sin líneas":    {SupplierID: "s1", BranchID: "b1"},
		"cantidad cero": {SupplierID: "s1", BranchID: "b1", Items: []dto.StockItemRequest{item("rice", "0", "kg")}},
		"desconocido":   {SupplierID: "s1", BranchID: "b1", Items: []dto.StockItemRequest{item("salt", "1", "kg")}},
		"unidad vacía":  {SupplierID: "s1", BranchID: "b1", Items: []dto.StockItemRequest{item("rice", "1", "  ")}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.RecordStockIn(context.Background(), "u", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, f.tx.calls)
			assert.Zero(t, f.dash.refreshed)
		})
	}
}

func TestRecordStockIn_ErrorRemotoSePropaga(t *testing.T) {
	f := newFixture()
	f.repo.err = &domain.RemoteError{Kind: domain.KindPermission, Message: "rls"}

	_, err := f.uc.RecordStockIn(context.Background(), "u", dto.StockInRequest{
		SupplierID: "s1", BranchID: "b1", Items: []dto.StockItemRequest{item("rice", "1", "kg")},
	})
	assert.Equal(t, domain.KindPermission, domain.RemoteKindOf(err))
	assert.Zero(t, f.dash.refreshed)
}

// ==========================================
// Traslados
// ==========================================

func TestRecordTransfer(t *testing.T) {
	f := newFixture()
	res, err := f.uc.RecordTransfer(context.Background(), "u", dto.StockTransferRequest{
		FromBranchID: "b1", ToBranchID: "b2", Items: []dto.StockItemRequest{item("oil", "3", "L")},
	})
	require.NoError(t, err)
	assert.Equal(t, "st-1", res.ID)
	require.Len(t, f.repo.transfers, 1)
	assert.Equal(t, "b2", f.repo.transfers[0].ToBranchID)
	assert.Equal(t, 1, f.dash.refreshed)
}

func TestRecordTransfer_MismaSucursal(t *testing.T) {
	for _, pair := range [][2]string{{"b1", "b1"}, {"", ""}, {" b1", "b1 "}} {
		f := newFixture()
		_, err := f.uc.RecordTransfer(context.Background(), "u", dto.StockTransferRequest{
			FromBranchID: pair[0], ToBranchID: pair[1], Items: []dto.StockItemRequest{item("oil", "1", "L")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, f.tx.calls)
	}
}

// ==========================================
// Proveedores
// ==========================================

func TestCreateSupplier(t *testing.T) {
	f := newFixture()
	res, err := f.uc.CreateSupplier(context.Background(), dto.CreateSupplierRequest{Name: "  Fresh Farm  "})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Farm", res.Name)
	assert.Equal(t, []string{"Fresh Farm"}, f.refs.created)
	require.Len(t, f.store.suppliers, 1)
	assert.Equal(t, "sup-9", f.store.suppliers[0].ID)
}

func TestCreateSupplier_NombreVacio(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateSupplier(context.Background(), dto.CreateSupplierRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.refs.created)
}

func TestCreateSupplier_ErrorRemotoNoTocaLaCache(t *testing.T) {
	f := newFixture()
	f.refs.err = errors.New("boom")
	_, err := f.uc.CreateSupplier(context.Background(), dto.CreateSupplierRequest{Name: "X"})
	assert.Error(t, err)
	assert.Empty(t, f.store.suppliers)
}
