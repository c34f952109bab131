// Package realtime recibe las notificaciones de cambio de la base (LISTEN/NOTIFY)
// y dispara los refrescos suscritos por tabla y evento.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Any comodín de tabla o evento.
const Any = "*"

// Event cambio notificado por un trigger: {"table": "receipts", "event": "INSERT"}.
type Event struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

// ParseEvent decodifica el payload de una notificación.
func ParseEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("realtime: payload inválido: %w", err)
	}
	if e.Table == "" {
		return Event{}, fmt.Errorf("realtime: payload sin tabla")
	}
	e.Event = strings.ToUpper(e.Event)
	return e, nil
}

// Handler reacción a un evento. Cada ejecución corre en su propia goroutine.
type Handler func(ctx context.Context, e Event)

type subscription struct {
	table   string
	event   string
	handler Handler
}

func (s subscription) matches(e Event) bool {
	return (s.table == Any || s.table == e.Table) && (s.event == Any || s.event == e.Event)
}

// Dispatcher enruta eventos a los handlers suscritos. No deduplica ni agrupa:
// N notificaciones seguidas disparan N ejecuciones.
type Dispatcher struct {
	mu   sync.RWMutex
	subs []subscription
	wg   sync.WaitGroup
	log  zerolog.Logger
}

// NewDispatcher crea un dispatcher sin suscripciones.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// On suscribe handler a table/event (Any en cualquiera de los dos).
func (d *Dispatcher) On(table, event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, subscription{table: table, event: strings.ToUpper(event), handler: handler})
}

// Dispatch lanza una goroutine por cada handler que coincide y devuelve cuántos se lanzaron.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) int {
	d.mu.RLock()
	var matched []Handler
	for _, s := range d.subs {
		if s.matches(e) {
			matched = append(matched, s.handler)
		}
	}
	d.mu.RUnlock()

	for _, h := range matched {
		d.wg.Add(1)
		go func(h Handler) {
			defer d.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.log.Error().Interface("panic", r).Str("table", e.Table).Msg("realtime: handler")
				}
			}()
			h(ctx, e)
		}(h)
	}
	if len(matched) > 0 {
		d.log.Debug().Str("table", e.Table).Str("event", e.Event).Int("handlers", len(matched)).Msg("realtime: evento")
	}
	return len(matched)
}

// Wait espera a que terminen los handlers en curso.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
