// Package memory provides in-process implementations of the repository
// ports. Every store owns its maps exclusively and guards them with a mutex.
package memory

import "time"

// Clock is the time source used to stamp records
type Clock func() time.Time

// monotonicStamper issues UTC timestamps that never go backwards within a
// store, even if the wall clock does. Callers hold the store lock.
type monotonicStamper struct {
	now  Clock
	last time.Time
}

func newStamper(now Clock) monotonicStamper {
	if now == nil {
		now = time.Now
	}
	return monotonicStamper{now: now}
}

func (s *monotonicStamper) stamp() time.Time {
	t := s.now().UTC()
	if t.Before(s.last) {
		t = s.last
	}
	s.last = t
	return t
}
