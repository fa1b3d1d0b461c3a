// Package notify implements the toast center: short-lived
// message/severity pairs reported by the data layer and rendered by the
// console. Toasts auto-expire and are fanned out over an event bus so
// the UI can print them as they arrive.
package notify

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Topic is the bus topic toasts are published on.
const Topic = "notify:toast"

const defaultTTL = 5 * time.Second

type Toast struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

type Center struct {
	mu     sync.Mutex
	bus    EventBus.Bus
	ttl    time.Duration
	active []Toast
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Center{bus: EventBus.New(), ttl: ttl}
}

func (c *Center) Success(msg string) { c.push(msg, SeveritySuccess) }
func (c *Center) Error(msg string)   { c.push(msg, SeverityError) }
func (c *Center) Info(msg string)    { c.push(msg, SeverityInfo) }

func (c *Center) push(msg string, sev Severity) {
	t := Toast{
		ID:        uuid.NewString(),
		Message:   msg,
		Severity:  sev,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.active = append(c.active, t)
	c.mu.Unlock()

	c.bus.Publish(Topic, t)

	id := t.ID
	time.AfterFunc(c.ttl, func() { c.expire(id) })
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.active {
		if t.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active returns a snapshot of the not-yet-expired toasts, oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.active))
	copy(out, c.active)
	return out
}

// Subscribe registers fn for every future toast.
func (c *Center) Subscribe(fn func(Toast)) error {
	return c.bus.Subscribe(Topic, fn)
}

func (c *Center) Unsubscribe(fn func(Toast)) error {
	return c.bus.Unsubscribe(Topic, fn)
}
