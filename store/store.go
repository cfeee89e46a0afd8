// Package store holds the application state: authentication, catalogs and
// transactions, each in its own slice, composed into a single root created
// once per running application. Operations are blocking methods; callers
// that want fire-and-forget semantics run them in a goroutine and observe
// completion through state transitions.
//
// Concurrency model: each slice is guarded by its own mutex. Two in-flight
// operations on the same field settle last-write-wins; there is no request
// generation guard.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"ppob/client"
	"ppob/session"
)

// Store is the composition root. Each sub-store owns its own slice; no two
// sub-stores write the same field.
type Store struct {
	Auth        *AuthStore
	Catalog     *CatalogStore
	Transaction *TransactionStore

	log  *logrus.Logger
	done chan struct{}
	wg   sync.WaitGroup

	subMu sync.Mutex
	subs  map[int]chan struct{}
	next  int
}

type Config struct {
	Client  *client.Client
	Session *session.Session
	Logger  *logrus.Logger
}

// New wires the three stores over one API client and one session, and
// starts the top-up reconciliation handler. Call Close on teardown.
func New(cfg Config) *Store {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Store{
		log:  log,
		done: make(chan struct{}),
		subs: make(map[int]chan struct{}),
	}
	s.Auth = newAuthStore(cfg.Client, cfg.Session, log, s.notify)
	s.Catalog = newCatalogStore(cfg.Client, log, s.notify)
	s.Transaction = newTransactionStore(cfg.Client, log, s.notify)

	s.wg.Add(1)
	go s.reconcile()
	return s
}

// Close stops the reconciliation handler.
func (s *Store) Close() {
	close(s.done)
	s.wg.Wait()
}

// reconcile consumes top-up events and dispatches the follow-up balance
// fetch: the mutating response gave immediate feedback, this fetch is the
// reconciliation of record.
func (s *Store) reconcile() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.Transaction.TopUpEvents():
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := s.Transaction.FetchBalance(ctx); err != nil {
				s.log.WithError(err).Warn("balance reconciliation failed")
			}
			cancel()
		}
	}
}

// Subscribe registers for change signals. The channel receives after state
// transitions; a slow subscriber misses intermediate signals but is never
// blocked on. The returned func cancels the subscription.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	id := s.next
	s.next++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notify() {
	s.subMu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	s.subMu.Unlock()
}
