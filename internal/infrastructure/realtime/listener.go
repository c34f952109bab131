package realtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// listenConn lo que el listener usa de *pgx.Conn.
type listenConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

const closeTimeout = 5 * time.Second

// Listener mantiene una conexión dedicada con LISTEN sobre el canal y reenvía
// cada notificación al Dispatcher. Si la conexión cae, espera y reconecta.
// La conexión se saca del pool (Hijack) y se cierra al salir: nunca vuelve al pool escuchando.
type Listener struct {
	connect   func(ctx context.Context) (listenConn, error)
	channel   string
	reconnect time.Duration
	dispatch  *Dispatcher
	log       zerolog.Logger
}

// NewListener construye el listener.
func NewListener(pool *pgxpool.Pool, channel string, reconnect time.Duration, d *Dispatcher, log zerolog.Logger) *Listener {
	if reconnect <= 0 {
		reconnect = 5 * time.Second
	}
	connect := func(ctx context.Context) (listenConn, error) {
		c, err := pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return c.Hijack(), nil
	}
	return &Listener{connect: connect, channel: channel, reconnect: reconnect, dispatch: d, log: log}
}

// Run bloquea hasta que ctx se cancela.
func (l *Listener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		l.log.Warn().Err(err).Dur("retry_in", l.reconnect).Msg("realtime: conexión perdida")
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnect):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := conn.Close(cctx); err != nil {
			l.log.Debug().Err(err).Msg("realtime: cerrar conexión")
		}
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.log.Info().Str("channel", l.channel).Msg("realtime: escuchando cambios")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("wait: %w", err)
		}
		e, err := ParseEvent(n.Payload)
		if err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("realtime: notificación ignorada")
			continue
		}
		l.dispatch.Dispatch(ctx, e)
	}
}
