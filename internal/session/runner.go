package session

import (
	"context"
	"time"
)

// SubmitFunc receives the payload when the countdown forces a submit.
type SubmitFunc func(ctx context.Context, p Payload)

// RunTimer ticks the session once per second until the countdown fires,
// the session leaves InProgress, or ctx is cancelled. Cancelling ctx only
// stops the countdown; abandoning the session is a separate transition.
func RunTimer(ctx context.Context, s *Session, onExpire SubmitFunc) {
	RunTimerEvery(ctx, s, time.Second, onExpire)
}

// RunTimerEvery is RunTimer with an explicit tick interval.
func RunTimerEvery(ctx context.Context, s *Session, interval time.Duration, onExpire SubmitFunc) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p, fired := s.Tick()
			if fired {
				if onExpire != nil {
					onExpire(ctx, p)
				}
				return
			}
			if s.State() != StateInProgress {
				return
			}
		}
	}
}
