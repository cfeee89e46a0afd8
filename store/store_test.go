package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppob/client"
	"ppob/session"
)

// newTestStore wires a full composition root against an httptest fake API.
func newTestStore(t *testing.T, handler http.Handler) (*Store, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New(&session.MemoryStorage{})
	api, err := client.New(client.Config{BaseURL: srv.URL, Tokens: sess})
	require.NoError(t, err)

	st := New(Config{Client: api, Session: sess})
	t.Cleanup(st.Close)
	return st, sess
}

func writeEnvelope(w http.ResponseWriter, httpStatus, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func testProfile() client.UserProfile {
	return client.UserProfile{
		Email:        "a@b.com",
		FirstName:    "Budi",
		LastName:     "Santoso",
		ProfileImage: "null",
	}
}

// loginProfileHandler answers /login with the given token and /profile with
// the standard test profile.
func loginProfileHandler(token string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Login Sukses", map[string]string{"token": token})
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 0, "Sukses", testProfile())
	})
	return mux
}

func TestSubscribeSignalsOnStateChange(t *testing.T) {
	st, _ := newTestStore(t, loginProfileHandler("T1"))

	ch, cancel := st.Subscribe()
	defer cancel()

	st.Transaction.ClearError()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no change signal received")
	}
}

func TestSnapshotFieldAccessor(t *testing.T) {
	st, _ := newTestStore(t, loginProfileHandler("T1"))
	require.NoError(t, st.Auth.Login(context.Background(), "a@b.com", "pw"))

	snap := st.Snapshot()

	token, ok := snap.Get(FieldToken)
	require.True(t, ok)
	assert.Equal(t, "T1", token)

	authed, ok := snap.Get(FieldIsAuthenticated)
	require.True(t, ok)
	assert.Equal(t, true, authed)

	limit, ok := snap.Get(FieldLimit)
	require.True(t, ok)
	assert.Equal(t, DefaultPageLimit, limit)

	hasMore, ok := snap.Get(FieldHasMore)
	require.True(t, ok)
	assert.Equal(t, true, hasMore)

	_, ok = snap.Get(Field("auth.nonsense"))
	assert.False(t, ok)
}
