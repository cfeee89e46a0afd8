package store

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"ppob/client"
	"ppob/session"
)

// ErrNoSession is returned by CheckAuth when no durable token exists; no
// network call is made in that case.
var ErrNoSession = errors.New("no stored session")

const (
	msgLoginFailed    = "Login gagal. Silakan coba lagi."
	msgRegisterFailed = "Registrasi gagal. Silakan coba lagi."
	msgProfileFailed  = "Gagal memperbarui profil. Silakan coba lagi."
	msgRegistered     = "Registrasi berhasil silahkan login"
	msgProfileUpdated = "Profil berhasil diperbarui"
	msgImageUpdated   = "Foto profil berhasil diperbarui"
)

// AuthState is the authentication slice. IsAuthenticated is derived: it is
// true iff User is non-nil and is never written independently.
type AuthState struct {
	User              *client.UserProfile
	Token             string
	IsAuthenticated   bool
	IsLoading         bool
	IsUpdatingProfile bool
	Error             string
	SuccessMessage    string
}

type AuthStore struct {
	mu      sync.Mutex
	state   AuthState
	api     *client.Client
	session *session.Session
	log     *logrus.Logger
	changed func()
}

func newAuthStore(api *client.Client, sess *session.Session, log *logrus.Logger, changed func()) *AuthStore {
	return &AuthStore{api: api, session: sess, log: log, changed: changed}
}

// State returns a copy of the current slice.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

func (s *AuthStore) update(fn func(*AuthState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.IsAuthenticated = s.state.User != nil
	s.mu.Unlock()
	s.changed()
}

// Login exchanges credentials for a session and fetches the profile. The
// token is installed in the holder before the profile fetch so that fetch
// already carries it. Any failure after the credential check tears the
// session back down: there is no observable "authenticated but no profile"
// state.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.update(func(st *AuthState) {
		st.IsLoading = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.fail(err, msgLoginFailed, func(st *AuthState) { st.IsLoading = false })
		return err
	}

	if err := s.session.Activate(token); err != nil {
		s.log.WithError(err).Warn("persist token failed")
		_ = s.session.Invalidate()
		s.fail(err, msgLoginFailed, func(st *AuthState) { st.IsLoading = false })
		return err
	}

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		_ = s.session.Invalidate()
		s.fail(err, msgLoginFailed, func(st *AuthState) { st.IsLoading = false })
		return err
	}

	s.update(func(st *AuthState) {
		st.IsLoading = false
		st.User = &profile
		st.Token = token
		st.Error = ""
	})
	return nil
}

// Register creates an account. The server does not return a session, so a
// success only sets the message; the user logs in afterwards.
func (s *AuthStore) Register(ctx context.Context, req client.RegisterRequest) error {
	s.update(func(st *AuthState) {
		st.IsLoading = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	if err := s.api.Register(ctx, req); err != nil {
		msg := registerMessage(err)
		s.update(func(st *AuthState) {
			st.IsLoading = false
			st.Error = msg
		})
		return err
	}

	s.update(func(st *AuthState) {
		st.IsLoading = false
		st.SuccessMessage = msgRegistered
	})
	return nil
}

// CheckAuth resumes a persisted session. Without a durable token it fails
// immediately, no network call. A failed profile fetch invalidates both the
// durable token and the holder.
func (s *AuthStore) CheckAuth(ctx context.Context) error {
	token, err := s.session.Resume()
	if err == nil && token == "" {
		err = ErrNoSession
	}
	if err != nil {
		s.update(func(st *AuthState) {
			st.User = nil
			st.Token = ""
		})
		return err
	}

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		_ = s.session.Invalidate()
		s.update(func(st *AuthState) {
			st.User = nil
			st.Token = ""
		})
		return err
	}

	s.update(func(st *AuthState) {
		st.User = &profile
		st.Token = token
	})
	return nil
}

func (s *AuthStore) UpdateProfile(ctx context.Context, firstName, lastName string) error {
	s.update(func(st *AuthState) {
		st.IsUpdatingProfile = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	profile, err := s.api.UpdateProfile(ctx, firstName, lastName)
	if err != nil {
		s.fail(err, msgProfileFailed, func(st *AuthState) { st.IsUpdatingProfile = false })
		return err
	}

	s.update(func(st *AuthState) {
		st.IsUpdatingProfile = false
		st.User = &profile
		st.SuccessMessage = msgProfileUpdated
	})
	return nil
}

func (s *AuthStore) UpdateProfileImage(ctx context.Context, filename string, file io.Reader) error {
	s.update(func(st *AuthState) {
		st.IsUpdatingProfile = true
		st.Error = ""
		st.SuccessMessage = ""
	})

	profile, err := s.api.UpdateProfileImage(ctx, filename, file)
	if err != nil {
		s.fail(err, msgProfileFailed, func(st *AuthState) { st.IsUpdatingProfile = false })
		return err
	}

	s.update(func(st *AuthState) {
		st.IsUpdatingProfile = false
		st.User = &profile
		st.SuccessMessage = msgImageUpdated
	})
	return nil
}

// Logout always succeeds. A failure to remove the durable token is logged
// and swallowed; the in-memory session is cleared regardless.
func (s *AuthStore) Logout() {
	if err := s.session.Invalidate(); err != nil {
		s.log.WithError(err).Warn("clear stored token failed")
	}
	s.update(func(st *AuthState) {
		*st = AuthState{}
	})
}

func (s *AuthStore) ClearError() {
	s.update(func(st *AuthState) { st.Error = "" })
}

func (s *AuthStore) ClearMessages() {
	s.update(func(st *AuthState) {
		st.Error = ""
		st.SuccessMessage = ""
	})
}

func (s *AuthStore) fail(err error, fallback string, also func(*AuthState)) {
	msg := errorMessage(err, fallback)
	s.update(func(st *AuthState) {
		also(st)
		st.Error = msg
	})
}

// registerMessage maps the registration status codes the server documents
// to user-facing messages; anything else falls back to the server message.
func registerMessage(err error) string {
	if se := client.AsStatusError(err); se != nil {
		switch se.Code {
		case client.StatusBadParameter:
			return "Parameter email tidak sesuai format"
		case client.StatusAlreadyExists:
			return "Email sudah terdaftar"
		case client.StatusPasswordPolicy:
			return "Password minimal 8 karakter"
		}
		if se.Message != "" {
			return se.Message
		}
	}
	return msgRegisterFailed
}

// errorMessage surfaces the server message for domain failures, the
// distinguished session message for an expired token, and a generic
// fallback for transport failures.
func errorMessage(err error, fallback string) string {
	if se := client.AsStatusError(err); se != nil {
		if client.IsSessionError(err) {
			return msgInvalidToken
		}
		if se.Message != "" {
			return se.Message
		}
	}
	return fallback
}
