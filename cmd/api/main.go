package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/refdata"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/views"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/cache"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/realtime"
	infraxlsx "github.com/jhoicas/backoffice-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// storage puertos de datos según STORAGE_DRIVER.
type storage struct {
	refs     repository.ReferenceRepository
	sales    repository.SalesRepository
	balances repository.StockBalanceRepository
	users    repository.UserRepository
	tx       stock.TxRunner
	pool     *pgxpool.Pool // nil en memoria
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.App.Storage).
		Str("lang", cfg.App.Lang).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	st := openStorage(ctx, cfg, log)
	if st.pool != nil {
		defer st.pool.Close()
	}

	refs := refdata.NewStore(st.refs, log.Component("refdata"))
	refs.Load(ctx)

	summaryCache := cache.ForTTL(cfg.Redis.DashboardTTL())
	if cfg.Redis.Addr != "" && cfg.Redis.DashboardTTL() > 0 {
		rc := cache.NewRedisDashboardCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché en memoria")
		} else {
			defer rc.Close()
			summaryCache = rc
		}
	}

	dashboardUC := appanalytics.NewDashboardUseCase(st.sales, st.balances, refs, summaryCache, cfg.Redis.DashboardTTL(), log.Component("dashboard"))
	reportUC := appanalytics.NewReportUseCase(st.sales, refs, log.Component("reports"))
	stockUC := stock.NewUseCase(st.tx, st.refs, refs, dashboardUC, log.Component("stock"))
	viewsUC := views.NewUseCase(refs, dashboardUC, reportUC)
	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Error().Err(err).Msg("crear usuario admin inicial")
		} else if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("usuario admin inicial creado")
		}
	}

	if err := dashboardUC.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("cálculo inicial del dashboard")
	}

	// Notificaciones de cambios: solo con PostgreSQL.
	if cfg.Realtime.Enabled && st.pool != nil {
		d := realtime.NewDispatcher(log.Component("realtime"))
		realtime.RegisterBackoffice(d, refs, dashboardUC)
		l := realtime.NewListener(st.pool, cfg.Realtime.Channel, time.Duration(cfg.Realtime.ReconnectSec)*time.Second, d, log.Component("realtime"))
		go l.Run(ctx)
		defer d.Wait()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Back-office API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		References:  refs,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		ViewsUC:     viewsUC,
		PDF:         infrapdf.NewMarotoReportGenerator(),
		XLSX:        infraxlsx.NewReportExporter(),
		JWTSecret:   cfg.JWT.Secret,
		DefaultLang: cfg.App.Lang,
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage {
	if cfg.App.Storage == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.New()
		return storage{refs: s, sales: s, balances: s, users: s, tx: memory.NewTxRunner(s)}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	ins := postgres.NewResilientInserter(cfg.Insert.MaxAttempts, log.Component("insert"))
	stockRepo := postgres.NewStockRepository(pool, ins)
	return storage{
		refs:     postgres.NewReferenceRepository(pool),
		sales:    postgres.NewSalesRepository(pool),
		balances: stockRepo,
		users:    postgres.NewUserRepository(pool),
		tx:       postgres.NewTxRunner(pool, ins),
		pool:     pool,
	}
}
