package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ppob/client"
)

// DefaultPageLimit is the history page size used when the caller does not
// pick one.
const DefaultPageLimit = 5

const (
	msgBalanceFailed = "Gagal memuat saldo"
	msgHistoryFailed = "Gagal memuat riwayat transaksi"
	msgPaymentFailed = "Pembayaran gagal. Silakan coba lagi."
	msgTopUpFailed   = "Top Up gagal. Silakan coba lagi."
	msgPaymentOK     = "Pembayaran berhasil"
	msgTopUpOK       = "Top Up berhasil"
)

// TransactionState holds the balance, the paginated history feed and the
// results of in-flight mutations. Transactions is ordered most-recent-first.
// HasMore is the full-page heuristic: a final page of exactly Limit records
// reads as "more data exists" until the next (empty) fetch corrects it.
type TransactionState struct {
	Balance               *int64
	Transactions          []client.Transaction
	CurrentTransaction    *client.Transaction
	TopUpResult           *client.TopUpResult
	Offset                int
	Limit                 int
	HasMore               bool
	IsLoadingBalance      bool
	IsLoadingTransactions bool
	IsCreatingTransaction bool
	IsToppingUp           bool
	Error                 string
	SuccessMessage        string
}

type TransactionStore struct {
	mu      sync.Mutex
	state   TransactionState
	api     *client.Client
	log     *logrus.Logger
	changed func()
	topUps  chan struct{}
}

func newTransactionStore(api *client.Client, log *logrus.Logger, changed func()) *TransactionStore {
	return &TransactionStore{
		state:   TransactionState{Limit: DefaultPageLimit, HasMore: true},
		api:     api,
		log:     log,
		changed: changed,
		topUps:  make(chan struct{}, 16),
	}
}

func (s *TransactionStore) State() TransactionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	state.Transactions = append([]client.Transaction(nil), s.state.Transactions...)
	if state.Balance != nil {
		balance := *state.Balance
		state.Balance = &balance
	}
	if state.CurrentTransaction != nil {
		trx := *state.CurrentTransaction
		state.CurrentTransaction = &trx
	}
	if state.TopUpResult != nil {
		result := *state.TopUpResult
		state.TopUpResult = &result
	}
	return state
}

// TopUpEvents delivers one signal per successful top-up. The composition
// root consumes it to dispatch the reconciling balance fetch.
func (s *TransactionStore) TopUpEvents() <-chan struct{} {
	return s.topUps
}

func (s *TransactionStore) update(fn func(*TransactionState)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
	s.changed()
}

func (s *TransactionStore) FetchBalance(ctx context.Context) error {
	s.update(func(st *TransactionState) {
		st.IsLoadingBalance = true
		st.Error = ""
	})

	balance, err := s.api.GetBalance(ctx)
	if err != nil {
		msg := errorMessage(err, msgBalanceFailed)
		s.update(func(st *TransactionState) {
			st.IsLoadingBalance = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *TransactionState) {
		st.IsLoadingBalance = false
		st.Balance = &balance.Balance
	})
	return nil
}

// CreateTransaction pays for a service. The new record is prepended to the
// history only when no record with the same invoice number is already there,
// so a retried dispatch cannot duplicate it.
func (s *TransactionStore) CreateTransaction(ctx context.Context, serviceCode string) error {
	s.update(func(st *TransactionState) {
		st.IsCreatingTransaction = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	trx, err := s.api.CreateTransaction(ctx, serviceCode)
	if err != nil {
		msg := errorMessage(err, msgPaymentFailed)
		s.update(func(st *TransactionState) {
			st.IsCreatingTransaction = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *TransactionState) {
		st.IsCreatingTransaction = false
		st.CurrentTransaction = &trx
		st.SuccessMessage = msgPaymentOK
		if !hasInvoice(st.Transactions, trx.InvoiceNumber) {
			st.Transactions = append([]client.Transaction{trx}, st.Transactions...)
		}
	})
	return nil
}

// FetchTransactionHistory loads one page. Offset zero replaces the feed,
// anything else appends. Offset and Limit track the values the server
// actually applied, not the requested ones.
func (s *TransactionStore) FetchTransactionHistory(ctx context.Context, offset, limit int) error {
	s.update(func(st *TransactionState) {
		st.IsLoadingTransactions = true
		st.Error = ""
	})

	page, err := s.api.GetTransactionHistory(ctx, offset, limit)
	if err != nil {
		// Previously loaded records stay; the feed remains retryable.
		msg := errorMessage(err, msgHistoryFailed)
		s.update(func(st *TransactionState) {
			st.IsLoadingTransactions = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *TransactionState) {
		st.IsLoadingTransactions = false
		if page.Offset == 0 {
			st.Transactions = page.Records
		} else {
			st.Transactions = append(st.Transactions, page.Records...)
		}
		st.Offset = page.Offset
		st.Limit = page.Limit
		st.HasMore = page.Limit > 0 && len(page.Records) == page.Limit
	})
	return nil
}

// NextPage fetches the continuation of the current feed.
func (s *TransactionStore) NextPage(ctx context.Context) error {
	s.mu.Lock()
	offset := s.state.Offset + s.state.Limit
	limit := s.state.Limit
	s.mu.Unlock()
	return s.FetchTransactionHistory(ctx, offset, limit)
}

// TopUpBalance credits the balance. The returned balance is kept for
// immediate feedback; a top-up event is emitted so the reconciliation
// handler re-fetches the authoritative balance.
func (s *TransactionStore) TopUpBalance(ctx context.Context, amount int64) error {
	s.update(func(st *TransactionState) {
		st.IsToppingUp = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	result, err := s.api.TopUp(ctx, amount)
	if err != nil {
		msg := errorMessage(err, msgTopUpFailed)
		s.update(func(st *TransactionState) {
			st.IsToppingUp = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *TransactionState) {
		st.IsToppingUp = false
		st.TopUpResult = &result
		st.SuccessMessage = msgTopUpOK
	})

	select {
	case s.topUps <- struct{}{}:
	default:
		s.log.Warn("top-up event dropped, reconciliation backlog full")
	}
	return nil
}

// ResetTransactions forces the feed back to its empty initial state, used
// before a fresh paginated load so pages from a previous view cannot mix in.
func (s *TransactionStore) ResetTransactions() {
	s.update(func(st *TransactionState) {
		st.Transactions = nil
		st.Offset = 0
		st.HasMore = true
	})
}

func (s *TransactionStore) ClearError() {
	s.update(func(st *TransactionState) { st.Error = "" })
}

func (s *TransactionStore) ClearSuccessMessage() {
	s.update(func(st *TransactionState) { st.SuccessMessage = "" })
}

func (s *TransactionStore) ClearMessages() {
	s.update(func(st *TransactionState) {
		st.Error = ""
		st.SuccessMessage = ""
	})
}

func (s *TransactionStore) ClearCurrentTransaction() {
	s.update(func(st *TransactionState) { st.CurrentTransaction = nil })
}

func (s *TransactionStore) ClearTopUpResult() {
	s.update(func(st *TransactionState) { st.TopUpResult = nil })
}

func hasInvoice(records []client.Transaction, invoice string) bool {
	for _, r := range records {
		if r.InvoiceNumber == invoice {
			return true
		}
	}
	return false
}
