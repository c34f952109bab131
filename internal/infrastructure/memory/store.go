// Package memory implementa los puertos de persistencia en memoria para desarrollo
// local (STORAGE_DRIVER=memory) y para tests de integración de la capa HTTP.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	_ repository.ReferenceRepository     = (*Store)(nil)
	_ repository.SalesRepository         = (*Store)(nil)
	_ repository.StockMovementRepository = (*Store)(nil)
	_ repository.StockBalanceRepository  = (*Store)(nil)
	_ repository.UserRepository          = (*Store)(nil)
)

// Receipt recibo de caja con sus líneas.
type Receipt struct {
	ID        string
	BranchID  string
	Total     decimal.Decimal
	CreatedAt *time.Time
	Items     []entity.SaleLine
}

type balanceKey struct {
	ingredient string
	branch     string
}

// Store base en memoria. Todas las operaciones son seguras para uso concurrente.
type Store struct {
	mu          sync.RWMutex
	ingredients []entity.Ingredient
	branches    []entity.Branch
	suppliers   []entity.Supplier
	menus       []entity.MenuItem
	receipts    []Receipt
	stockIns    []entity.StockIn
	transfers   []entity.StockTransfer
	balances    map[balanceKey]decimal.Decimal
	users       map[string]entity.User
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		balances: make(map[balanceKey]decimal.Decimal),
		users:    make(map[string]entity.User),
	}
}

// SeedReference reemplaza las listas de referencia.
func (s *Store) SeedReference(ingredients []entity.Ingredient, branches []entity.Branch, suppliers []entity.Supplier, menus []entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients = append([]entity.Ingredient(nil), ingredients...)
	s.branches = append([]entity.Branch(nil), branches...)
	s.suppliers = append([]entity.Supplier(nil), suppliers...)
	s.menus = append([]entity.MenuItem(nil), menus...)
}

// AddReceipt registra un recibo; sus líneas heredan la fecha del recibo.
func (s *Store) AddReceipt(r Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	for i := range r.Items {
		r.Items[i].ReceiptCreatedAt = r.CreatedAt
	}
	s.receipts = append(s.receipts, r)
}

// StockIns devuelve las entradas registradas (para inspección en tests).
func (s *Store) StockIns() []entity.StockIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.StockIn(nil), s.stockIns...)
}

// StockTransfers devuelve los traslados registrados.
func (s *Store) StockTransfers() []entity.StockTransfer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.StockTransfer(nil), s.transfers...)
}

// ---- Referencia ----

func (s *Store) ListIngredients(_ context.Context) ([]entity.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]entity.Ingredient(nil), s.ingredients...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListBranches(_ context.Context) ([]entity.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]entity.Branch(nil), s.branches...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListSuppliers(_ context.Context) ([]entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]entity.Supplier(nil), s.suppliers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListMenuItems(_ context.Context) ([]entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]entity.MenuItem(nil), s.menus...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateSupplier(_ context.Context, name string) (*entity.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("name", "requerido")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sup := entity.Supplier{ID: uuid.NewString(), Name: name}
	s.suppliers = append(s.suppliers, sup)
	return &sup, nil
}

// ---- Ventas ----

func (s *Store) ListSaleLines(_ context.Context) ([]entity.SaleLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.SaleLine
	for _, r := range s.receipts {
		out = append(out, r.Items...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MenuID < out[j].MenuID })
	return out, nil
}

func (s *Store) TotalSales(_ context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, r := range s.receipts {
		total = total.Add(r.Total)
	}
	return total, nil
}

func (s *Store) SalesByBranch(_ context.Context) ([]entity.BranchSales, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := map[string]int{}
	var out []entity.BranchSales
	for _, r := range s.receipts {
		i, ok := index[r.BranchID]
		if !ok {
			i = len(out)
			index[r.BranchID] = i
			out = append(out, entity.BranchSales{BranchID: r.BranchID, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(r.Total)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out, nil
}

// ---- Stock ----

func (s *Store) CreateStockIn(_ context.Context, in *entity.StockIn) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = uuid.NewString()
	for _, it := range in.Items {
		k := balanceKey{it.IngredientID, in.BranchID}
		s.balances[k] = s.balances[k].Add(it.Quantity)
	}
	s.stockIns = append(s.stockIns, *in)
	return nil, nil
}

func (s *Store) CreateStockTransfer(_ context.Context, t *entity.StockTransfer) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	for _, it := range t.Items {
		from := balanceKey{it.IngredientID, t.FromBranchID}
		to := balanceKey{it.IngredientID, t.ToBranchID}
		s.balances[from] = s.balances[from].Sub(it.Quantity)
		s.balances[to] = s.balances[to].Add(it.Quantity)
	}
	s.transfers = append(s.transfers, *t)
	return nil, nil
}

// ListBalances saldos calculados a partir de entradas y traslados, stock ascendente.
func (s *Store) ListBalances(_ context.Context) ([]entity.StockBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ingredients := map[string]entity.Ingredient{}
	for _, i := range s.ingredients {
		ingredients[i.ID] = i
	}
	branches := map[string]string{}
	for _, b := range s.branches {
		branches[b.ID] = b.Name
	}

	out := make([]entity.StockBalance, 0, len(s.balances))
	for k, qty := range s.balances {
		b := entity.StockBalance{
			IngredientID:   k.ingredient,
			IngredientName: k.ingredient,
			BranchID:       k.branch,
			BranchName:     k.branch,
			CurrentStock:   qty,
		}
		if ing, ok := ingredients[k.ingredient]; ok {
			b.IngredientName = ing.Name
			b.LowStockThreshold = ing.LowStockThreshold
		}
		if name, ok := branches[k.branch]; ok {
			b.BranchName = name
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CurrentStock.Equal(out[j].CurrentStock) {
			return out[i].CurrentStock.LessThan(out[j].CurrentStock)
		}
		return out[i].IngredientID+out[i].BranchID < out[j].IngredientID+out[j].BranchID
	})
	return out, nil
}

// ---- Usuarios ----

func (s *Store) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, ok := s.users[key]; ok {
		return domain.ErrEmailExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[key] = *u
	return nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
