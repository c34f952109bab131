// Package refdata mantiene en memoria las listas de referencia (ingredientes, sucursales,
// proveedores y menú) que usan los formularios, la validación y los reportes.
package refdata

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Store caché de referencia. Se reconstruye entera en cada Load; los lectores reciben copias.
type Store struct {
	repo repository.ReferenceRepository
	log  zerolog.Logger

	mu          sync.RWMutex
	ingredients []entity.Ingredient
	branches    []entity.Branch
	suppliers   []entity.Supplier
	menus       []entity.MenuItem
	menuNames   map[string]string
	branchNames map[string]string
	ingredient  map[string]struct{}
	loaded      bool
}

// NewStore construye el store vacío; llamar Load antes de servir.
func NewStore(repo repository.ReferenceRepository, log zerolog.Logger) *Store {
	s := &Store{repo: repo, log: log}
	s.reindex()
	return s
}

// Load consulta las cuatro listas en paralelo y reemplaza la caché cuando todas terminaron.
// Una lista que falla queda vacía y se registra; nunca aborta la carga.
func (s *Store) Load(ctx context.Context) {
	var (
		ingredients []entity.Ingredient
		branches    []entity.Branch
		suppliers   []entity.Supplier
		menus       []entity.MenuItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.repo.ListIngredients(gctx)
		if err != nil {
			s.log.Warn().Err(err).Str("list", "ingredients").Msg("no se pudo cargar la lista de referencia")
			return nil
		}
		ingredients = list
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.ListBranches(gctx)
		if err != nil {
			s.log.Warn().Err(err).Str("list", "branches").Msg("no se pudo cargar la lista de referencia")
			return nil
		}
		branches = list
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.ListSuppliers(gctx)
		if err != nil {
			s.log.Warn().Err(err).Str("list", "suppliers").Msg("no se pudo cargar la lista de referencia")
			return nil
		}
		suppliers = list
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.ListMenuItems(gctx)
		if err != nil {
			s.log.Warn().Err(err).Str("list", "menus").Msg("no se pudo cargar la lista de referencia")
			return nil
		}
		menus = list
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	s.ingredients = nonNil(ingredients)
	s.branches = nonNil(branches)
	s.suppliers = nonNil(suppliers)
	s.menus = nonNil(menus)
	s.reindex()
	s.loaded = true
	s.mu.Unlock()

	s.log.Info().
		Int("ingredients", len(ingredients)).
		Int("branches", len(branches)).
		Int("suppliers", len(suppliers)).
		Int("menus", len(menus)).
		Msg("datos de referencia cargados")
}

// Refresh alias de Load, usado por las notificaciones de cambio.
func (s *Store) Refresh(ctx context.Context) { s.Load(ctx) }

// Loaded indica si ya se completó al menos una carga.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Ingredients() []entity.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Ingredient(nil), s.ingredients...)
}

func (s *Store) Branches() []entity.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Branch(nil), s.branches...)
}

func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Supplier(nil), s.suppliers...)
}

func (s *Store) MenuItems() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.MenuItem(nil), s.menus...)
}

// MenuName nombre visible de un ítem del menú.
func (s *Store) MenuName(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.menuNames[id]
	return n, ok
}

// BranchName nombre de la sucursal; si no se conoce devuelve el id.
func (s *Store) BranchName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.branchNames[id]; ok {
		return n
	}
	return id
}

// HasIngredient indica si el ingrediente está en la caché.
func (s *Store) HasIngredient(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ingredient[id]
	return ok
}

// AddSupplier agrega un proveedor recién creado sin recargar todo.
func (s *Store) AddSupplier(sup entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.suppliers {
		if existing.ID == sup.ID {
			return
		}
	}
	s.suppliers = append(s.suppliers, sup)
}

// reindex se llama con mu tomado (o antes de publicar el store).
func (s *Store) reindex() {
	s.menuNames = make(map[string]string, len(s.menus))
	for _, m := range s.menus {
		s.menuNames[m.ID] = m.Name
	}
	s.branchNames = make(map[string]string, len(s.branches))
	for _, b := range s.branches {
		s.branchNames[b.ID] = b.Name
	}
	s.ingredient = make(map[string]struct{}, len(s.ingredients))
	for _, i := range s.ingredients {
		s.ingredient[i.ID] = struct{}{}
	}
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
