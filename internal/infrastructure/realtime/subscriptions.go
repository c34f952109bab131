package realtime

import "context"

// DashboardRefresher recalcula la instantánea del dashboard.
type DashboardRefresher interface {
	Refresh(ctx context.Context) error
}

// ReferenceReloader recarga la caché de referencia.
type ReferenceReloader interface {
	Refresh(ctx context.Context)
}

// Tablas cuyos cambios afectan al dashboard.
var dashboardTables = []struct{ table, event string }{
	{"receipts", "INSERT"},
	{"receipt_items", "INSERT"},
	{"stock_in_item", "INSERT"},
	{"stock_transfer_item", "INSERT"},
	{"ingredients_stock_balance", Any},
}

// Tablas de referencia: se recargan y luego se refresca el dashboard (los nombres cambian).
var referenceTables = []string{"ingredients", "branches", "suppliers", "menus"}

// RegisterBackoffice suscribe los refrescos del back-office en d.
func RegisterBackoffice(d *Dispatcher, refs ReferenceReloader, dash DashboardRefresher) {
	refreshDashboard := func(ctx context.Context, e Event) {
		if err := dash.Refresh(ctx); err != nil {
			d.log.Warn().Err(err).Str("table", e.Table).Msg("realtime: refresco del dashboard")
		}
	}
	for _, t := range dashboardTables {
		d.On(t.table, t.event, refreshDashboard)
	}
	for _, table := range referenceTables {
		d.On(table, Any, func(ctx context.Context, e Event) {
			refs.Refresh(ctx)
			refreshDashboard(ctx, e)
		})
	}
}
