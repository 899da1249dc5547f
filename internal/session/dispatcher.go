package session

import "github.com/meeplelab/gamescout/internal/domain/search/result"

// Outcome is one completed search, published to every consumer. Known is
// false when the base game did not resolve; Result is empty in that case.
type Outcome struct {
	BaseGame string
	Result   result.Result
	Known    bool
}

// Consumer receives search outcomes.
type Consumer interface {
	OnSearch(Outcome)
}

// Dispatcher fans search outcomes out to registered consumers. Consumers
// are registered at startup, before any search runs; Publish takes no
// lock.
type Dispatcher struct {
	consumers []Consumer
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a consumer. Not safe to call concurrently with Publish.
func (d *Dispatcher) Register(c Consumer) {
	d.consumers = append(d.consumers, c)
}

// Publish delivers the outcome to every consumer in registration order.
func (d *Dispatcher) Publish(o Outcome) {
	for _, c := range d.consumers {
		c.OnSearch(o)
	}
}
