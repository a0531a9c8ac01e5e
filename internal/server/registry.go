package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sutticue/flashcard-game/internal/round"
)

var errRoundNotFound = errors.New("round not found")

// RoundFactory builds a fresh, unstarted round.
type RoundFactory func() (*round.Controller, error)

// session pairs a controller with the lock that serializes requests on it.
type session struct {
	mu      sync.Mutex
	ctrl    *round.Controller
	created time.Time
}

// registry keeps rounds in memory, keyed by round ID. When full, the
// oldest finished round is dropped first, then the oldest of any.
type registry struct {
	mu     sync.Mutex
	rounds map[string]*session
	max    int
	now    func() time.Time
}

func newRegistry(max int) *registry {
	if max <= 0 {
		max = 1000
	}
	return &registry{
		rounds: make(map[string]*session),
		max:    max,
		now:    time.Now,
	}
}

func (r *registry) add(ctrl *round.Controller) *session {
	s := &session{ctrl: ctrl, created: r.now()}

	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.rounds) >= r.max {
		r.evictLocked()
	}
	r.rounds[ctrl.ID()] = s
	return s
}

func (r *registry) get(id string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rounds[id]
	if !ok {
		return nil, errRoundNotFound
	}
	return s, nil
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rounds)
}

// evictLocked drops one round. r.mu must be held.
func (r *registry) evictLocked() {
	type aged struct {
		id       string
		created  time.Time
		complete bool
	}
	all := make([]aged, 0, len(r.rounds))
	for id, s := range r.rounds {
		// A round busy serving a request counts as active.
		complete := false
		if s.mu.TryLock() {
			complete = s.ctrl.Complete()
			s.mu.Unlock()
		}
		all = append(all, aged{id: id, created: s.created, complete: complete})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].complete != all[j].complete {
			return all[i].complete
		}
		return all[i].created.Before(all[j].created)
	})
	if len(all) > 0 {
		delete(r.rounds, all[0].id)
	}
}
