// Package stock contiene los casos de uso de escritura del back-office:
// entradas de stock, traslados entre sucursales y alta de proveedores.
package stock

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// UseCase valida antes de cualquier llamada remota, persiste en una transacción y refresca el dashboard.
type UseCase struct {
	tx    TxRunner
	refs  repository.ReferenceRepository
	store ReferenceStore
	dash  DashboardRefresher
	log   zerolog.Logger
	now   func() time.Time
}

// NewUseCase construye el caso de uso. dash puede ser nil.
func NewUseCase(tx TxRunner, refs repository.ReferenceRepository, store ReferenceStore, dash DashboardRefresher, log zerolog.Logger) *UseCase {
	return &UseCase{tx: tx, refs: refs, store: store, dash: dash, log: log, now: time.Now}
}

// RecordStockIn registra la recepción de ingredientes de un proveedor en una sucursal.
func (uc *UseCase) RecordStockIn(ctx context.Context, userID string, req dto.StockInRequest) (*dto.StockMovementResponse, error) {
	if err := inventory.ValidateStockInHeader(req.SupplierID, req.BranchID); err != nil {
		return nil, err
	}
	items, err := inventory.ValidateItems(toLines(req.Items), uc.store.HasIngredient)
	if err != nil {
		return nil, err
	}

	in := &entity.StockIn{
		SupplierID: strings.TrimSpace(req.SupplierID),
		BranchID:   strings.TrimSpace(req.BranchID),
		Note:       entity.DefaultNote,
		CreatedAt:  uc.now().UTC(),
		CreatedBy:  userID,
		Items:      items,
	}

	var dropped []string
	err = uc.tx.Run(ctx, func(repo repository.StockMovementRepository) error {
		var err error
		dropped, err = repo.CreateStockIn(ctx, in)
		return err
	})
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(domain.RemoteKindOf(err))).Msg("stock in")
		return nil, err
	}

	uc.log.Info().Str("stock_in_id", in.ID).Int("items", len(items)).Msg("stock in registrado")
	uc.refreshDashboard(ctx)
	return &dto.StockMovementResponse{ID: in.ID, DroppedColumns: dropped}, nil
}

// RecordTransfer registra un traslado de ingredientes entre dos sucursales distintas.
func (uc *UseCase) RecordTransfer(ctx context.Context, userID string, req dto.StockTransferRequest) (*dto.StockMovementResponse, error) {
	from := strings.TrimSpace(req.FromBranchID)
	to := strings.TrimSpace(req.ToBranchID)
	if err := inventory.ValidateTransferBranches(from, to); err != nil {
		return nil, err
	}
	items, err := inventory.ValidateItems(toLines(req.Items), uc.store.HasIngredient)
	if err != nil {
		return nil, err
	}

	t := &entity.StockTransfer{
		FromBranchID: from,
		ToBranchID:   to,
		Note:         entity.DefaultNote,
		CreatedAt:    uc.now().UTC(),
		CreatedBy:    userID,
		Items:        items,
	}

	var dropped []string
	err = uc.tx.Run(ctx, func(repo repository.StockMovementRepository) error {
		var err error
		dropped, err = repo.CreateStockTransfer(ctx, t)
		return err
	})
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(domain.RemoteKindOf(err))).Msg("stock transfer")
		return nil, err
	}

	uc.log.Info().Str("stock_transfer_id", t.ID).Int("items", len(items)).Msg("traslado registrado")
	uc.refreshDashboard(ctx)
	return &dto.StockMovementResponse{ID: t.ID, DroppedColumns: dropped}, nil
}

// CreateSupplier da de alta un proveedor y lo agrega a la caché para que aparezca en los selectores.
func (uc *UseCase) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Invalid("name", "requerido")
	}
	s, err := uc.refs.CreateSupplier(ctx, name)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(domain.RemoteKindOf(err))).Msg("crear supplier")
		return nil, err
	}
	uc.store.AddSupplier(*s)
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name}, nil
}

func (uc *UseCase) refreshDashboard(ctx context.Context) {
	if uc.dash == nil {
		return
	}
	if err := uc.dash.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("refresco del dashboard tras escritura")
	}
}

func toLines(items []dto.StockItemRequest) []entity.StockLine {
	lines := make([]entity.StockLine, len(items))
	for i, it := range items {
		lines[i] = entity.StockLine{IngredientID: it.IngredientID, Quantity: it.Quantity, Unit: it.Unit}
	}
	return lines
}
