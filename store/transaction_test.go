package store

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppob/client"
)

func historyRecord(n int) client.Transaction {
	return client.Transaction{
		InvoiceNumber:   fmt.Sprintf("INV17082023-%03d", n),
		ServiceCode:     "PLN",
		ServiceName:     "Listrik",
		TransactionType: client.TransactionTypePayment,
		Description:     "Listrik",
		TotalAmount:     10000,
		CreatedOn:       "2023-08-17T10:10:10Z",
	}
}

func historyHandler(pages map[int][]client.Transaction, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		writeEnvelope(w, 200, 0, "Get History Berhasil", client.HistoryPage{
			Offset:  offset,
			Limit:   limit,
			Records: pages[offset],
		})
	}
}

func TestFetchBalance(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Get Balance Berhasil", client.Balance{Balance: 75000})
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchBalance(context.Background()))

	state := st.Transaction.State()
	require.NotNil(t, state.Balance)
	assert.Equal(t, int64(75000), *state.Balance)
	assert.False(t, state.IsLoadingBalance)
}

func TestCreateTransactionIdempotentInsert(t *testing.T) {
	// The server answers every create with the same invoice number, as a
	// double-dispatched UI retry would see.
	trx := historyRecord(1)
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Transaksi berhasil", trx)
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))
	require.NoError(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))

	state := st.Transaction.State()
	require.Len(t, state.Transactions, 1, "same invoice prepended once")
	assert.Equal(t, trx.InvoiceNumber, state.Transactions[0].InvoiceNumber)
	require.NotNil(t, state.CurrentTransaction)
	assert.Equal(t, trx.InvoiceNumber, state.CurrentTransaction.InvoiceNumber)
	assert.NotEmpty(t, state.SuccessMessage)
}

func TestCreateTransactionPrependsNewestFirst(t *testing.T) {
	var n atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Transaksi berhasil", historyRecord(int(n.Add(1))))
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))
	require.NoError(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))

	state := st.Transaction.State()
	require.Len(t, state.Transactions, 2)
	assert.Equal(t, "INV17082023-002", state.Transactions[0].InvoiceNumber)
}

func TestCreateTransactionFailureLeavesCurrentUntouched(t *testing.T) {
	var fail atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction", func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			writeEnvelope(w, http.StatusBadRequest, 102, "Saldo tidak mencukupi", nil)
			return
		}
		writeEnvelope(w, 200, 0, "Transaksi berhasil", historyRecord(1))
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))
	fail.Store(true)
	require.Error(t, st.Transaction.CreateTransaction(context.Background(), "PLN"))

	state := st.Transaction.State()
	assert.Equal(t, "Saldo tidak mencukupi", state.Error)
	require.NotNil(t, state.CurrentTransaction, "previous result stays")
	assert.Equal(t, "INV17082023-001", state.CurrentTransaction.InvoiceNumber)
	assert.Len(t, state.Transactions, 1)
}

func TestResetTransactions(t *testing.T) {
	pages := map[int][]client.Transaction{
		0: {historyRecord(1), historyRecord(2)},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/history", historyHandler(pages, 2))
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 2))
	require.NotEmpty(t, st.Transaction.State().Transactions)

	st.Transaction.ResetTransactions()

	state := st.Transaction.State()
	assert.Empty(t, state.Transactions)
	assert.Zero(t, state.Offset)
	assert.True(t, state.HasMore)
}

func TestHistoryPagination(t *testing.T) {
	pages := map[int][]client.Transaction{
		0: {historyRecord(1), historyRecord(2), historyRecord(3), historyRecord(4), historyRecord(5)},
		5: {historyRecord(6), historyRecord(7), historyRecord(8)},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/history", historyHandler(pages, 5))
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 5))

	state := st.Transaction.State()
	assert.Len(t, state.Transactions, 5)
	assert.True(t, state.HasMore, "full page implies more")
	assert.Equal(t, 0, state.Offset)
	assert.Equal(t, 5, state.Limit)

	require.NoError(t, st.Transaction.NextPage(context.Background()))

	state = st.Transaction.State()
	assert.Len(t, state.Transactions, 8, "short page appended")
	assert.False(t, state.HasMore)
	assert.Equal(t, 5, state.Offset)
	assert.Equal(t, "INV17082023-001", state.Transactions[0].InvoiceNumber)
	assert.Equal(t, "INV17082023-008", state.Transactions[7].InvoiceNumber)
}

func TestHistoryOffsetZeroReplacesFeed(t *testing.T) {
	var generation atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/history", func(w http.ResponseWriter, r *http.Request) {
		records := []client.Transaction{historyRecord(1), historyRecord(2)}
		if generation.Add(1) > 1 {
			records = []client.Transaction{historyRecord(9)}
		}
		writeEnvelope(w, 200, 0, "Get History Berhasil", client.HistoryPage{
			Offset: 0, Limit: 5, Records: records,
		})
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 5))
	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 5))

	state := st.Transaction.State()
	require.Len(t, state.Transactions, 1, "offset zero resets the feed")
	assert.Equal(t, "INV17082023-009", state.Transactions[0].InvoiceNumber)
}

func TestHistoryTracksServerClampedValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/history", func(w http.ResponseWriter, r *http.Request) {
		// Server clamps the requested limit of 50 down to 5.
		writeEnvelope(w, 200, 0, "Get History Berhasil", client.HistoryPage{
			Offset: 0, Limit: 5,
			Records: []client.Transaction{
				historyRecord(1), historyRecord(2), historyRecord(3), historyRecord(4), historyRecord(5),
			},
		})
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 50))

	state := st.Transaction.State()
	assert.Equal(t, 5, state.Limit, "server-side clamp wins")
	assert.True(t, state.HasMore)
}

func TestHistoryFailureKeepsLoadedRecords(t *testing.T) {
	var fail atomic.Bool
	pages := map[int][]client.Transaction{
		0: {historyRecord(1), historyRecord(2)},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/history", func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			writeEnvelope(w, http.StatusInternalServerError, 999, "history unavailable", nil)
			return
		}
		historyHandler(pages, 2)(w, r)
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.FetchTransactionHistory(context.Background(), 0, 2))
	fail.Store(true)
	require.Error(t, st.Transaction.NextPage(context.Background()))

	state := st.Transaction.State()
	assert.Len(t, state.Transactions, 2, "failed page fetch keeps the feed")
	assert.Equal(t, "history unavailable", state.Error)
	assert.False(t, state.IsLoadingTransactions)
}

func TestTopUpReconciliation(t *testing.T) {
	var balanceFetches atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/topup", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Top Up Balance berhasil", client.TopUpResult{Balance: 150000})
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		balanceFetches.Add(1)
		writeEnvelope(w, 200, 0, "Get Balance Berhasil", client.Balance{Balance: 150000})
	})
	st, _ := newTestStore(t, mux)

	require.NoError(t, st.Transaction.TopUpBalance(context.Background(), 50000))

	state := st.Transaction.State()
	require.NotNil(t, state.TopUpResult)
	assert.Equal(t, int64(150000), state.TopUpResult.Balance)
	assert.Equal(t, msgTopUpOK, state.SuccessMessage)

	// The reconciliation handler issues exactly one follow-up balance fetch.
	require.Eventually(t, func() bool {
		return balanceFetches.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		balance := st.Transaction.State().Balance
		return balance != nil && *balance == 150000
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), balanceFetches.Load(), "no extra balance fetches")
}

func TestTopUpFailure(t *testing.T) {
	var balanceFetches atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/topup", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, 102,
			"Parameter amount hanya boleh angka dan tidak boleh lebih kecil dari 0", nil)
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		balanceFetches.Add(1)
		writeEnvelope(w, 200, 0, "Get Balance Berhasil", client.Balance{Balance: 0})
	})
	st, _ := newTestStore(t, mux)

	require.Error(t, st.Transaction.TopUpBalance(context.Background(), -1))

	state := st.Transaction.State()
	assert.Nil(t, state.TopUpResult)
	assert.NotEmpty(t, state.Error)
	assert.Empty(t, state.SuccessMessage)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, balanceFetches.Load(), "no reconciliation after a failed top-up")
}
