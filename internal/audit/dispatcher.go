package audit

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// RoutingKey turns "reservation_created" into "reservation.created".
func (e Event) RoutingKey() string {
	return strings.ReplaceAll(e.Action, "_", ".")
}

// Publisher forwards events outside the process (see mq.Publisher).
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type Dispatcher struct {
	logger    *Logger
	publisher Publisher
	queue     chan Event
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher starts the worker. publisher may be nil.
func NewDispatcher(logger *Logger, publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		logger:    logger,
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := d.logger.Log(ctx, ev); err != nil {
			log.Println("audit error:", err)
		}

		if d.publisher != nil {
			payload := map[string]any{
				"action":    ev.Action,
				"entity":    ev.Entity,
				"entity_id": ev.EntityID,
				"metadata":  ev.Metadata,
			}
			if err := d.publisher.PublishJSON(ctx, ev.RoutingKey(), payload); err != nil {
				log.Println("event publish error:", err)
			}
		}

		cancel()
	}
}

// Dispatch never blocks a request: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
