package poller

import (
	"context"
	"log"
	"time"

	"messagehub/backend/internal/session"
)

// Poller drives the fixed-interval poll cycle for a viewing session.
type Poller struct {
	Session  *session.Session
	Interval time.Duration

	// OnCycle, when set, runs after every merge; the console redraws here.
	OnCycle func()
}

// Run blocks until ctx is cancelled, polling once per interval. A failed
// cycle is already absorbed inside Session.Poll, so nothing here is
// terminal.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	log.Printf("Poller started, interval %s", p.Interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Session.Poll(ctx)
			if p.OnCycle != nil {
				p.OnCycle()
			}
		}
	}
}
