package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn entrega las notificaciones en cola y luego falla como una conexión caída.
type fakeConn struct {
	mu       sync.Mutex
	payloads []string
	execs    []string
	closed   int
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (c *fakeConn) WaitForNotification(context.Context) (*pgconn.Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.payloads) == 0 {
		return nil, errors.New("unexpected EOF")
	}
	p := c.payloads[0]
	c.payloads = c.payloads[1:]
	return &pgconn.Notification{Channel: "backoffice_changes", Payload: p}, nil
}

func (c *fakeConn) Close(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func TestListener_DespachaYCierraLaConexion(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	var mu sync.Mutex
	var got []Event
	d.On(Any, Any, func(_ context.Context, e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})

	conn := &fakeConn{payloads: []string{`{"table":"receipts","event":"INSERT"}`, `basura`}}
	l := &Listener{
		connect:   func(context.Context) (listenConn, error) { return conn, nil },
		channel:   "backoffice_changes",
		reconnect: time.Millisecond,
		dispatch:  d,
		log:       zerolog.Nop(),
	}

	err := l.listen(context.Background())
	require.Error(t, err)
	d.Wait()

	assert.Equal(t, []string{`LISTEN "backoffice_changes"`}, conn.execs)
	assert.Equal(t, []Event{{Table: "receipts", Event: "INSERT"}}, got)
	assert.Equal(t, 1, conn.closed, "la conexión dedicada se cierra, no vuelve al pool")
}

func TestListener_ReconectaConConexionNueva(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var conns []*fakeConn
	l := &Listener{
		connect: func(context.Context) (listenConn, error) {
			mu.Lock()
			defer mu.Unlock()
			c := &fakeConn{}
			conns = append(conns, c)
			if len(conns) == 3 {
				cancel()
			}
			return c, nil
		},
		channel:   "backoffice_changes",
		reconnect: time.Millisecond,
		dispatch:  NewDispatcher(zerolog.Nop()),
		log:       zerolog.Nop(),
	}

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó al cancelar el contexto")
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(conns), 3)
	for _, c := range conns {
		assert.Equal(t, 1, c.closed)
	}
}
