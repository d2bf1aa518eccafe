package app

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/notify"
	"github.com/dwikikusuma/qkart-client/internal/session"
	"go.uber.org/zap"
)

const (
	msgUsernameRequired = "Username is a required field"
	msgUsernameTooShort = "Username must be at least 6 characters"
	msgPasswordRequired = "Password is a required field"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgPasswordMismatch = "Passwords do not match"
	msgBackendDown      = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."
	msgLoggedIn         = "Logged in successfully"
	msgRegistered       = "Registered successfully"
	msgLoggedOut        = "Logged out"
)

const minCredentialLen = 6

// Service runs the login and register flows: validate locally, call the
// backend, persist the session. Outcomes are reported through notices; the
// boolean results only say whether the flow went through.
type Service struct {
	gw       Gateway
	store    session.Store
	notifier notify.Notifier
	log      *zap.Logger
}

func NewService(gw Gateway, store session.Store, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		gw:       gw,
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Login validates the form, exchanges it for a session and persists the
// session on success.
func (s *Service) Login(ctx context.Context, username, password string) bool {
	if username == "" {
		s.notifier.Notify(msgUsernameRequired, notify.SeverityWarning)
		return false
	}
	if password == "" {
		s.notifier.Notify(msgPasswordRequired, notify.SeverityWarning)
		return false
	}

	sess, err := s.gw.Login(ctx, username, password)
	if err != nil {
		s.surface(err)
		return false
	}

	if err := s.store.Save(sess); err != nil {
		s.log.Error("persist session failed", zap.Error(err))
		s.notifier.Notify(msgBackendDown, notify.SeverityError)
		return false
	}

	s.notifier.Notify(msgLoggedIn, notify.SeveritySuccess)
	return true
}

// Register validates the form (the confirmation never leaves the client)
// and creates the account. It does not log the user in.
func (s *Service) Register(ctx context.Context, username, password, confirmPassword string) bool {
	switch {
	case username == "":
		s.notifier.Notify(msgUsernameRequired, notify.SeverityWarning)
		return false
	case len(username) < minCredentialLen:
		s.notifier.Notify(msgUsernameTooShort, notify.SeverityWarning)
		return false
	case password == "":
		s.notifier.Notify(msgPasswordRequired, notify.SeverityWarning)
		return false
	case len(password) < minCredentialLen:
		s.notifier.Notify(msgPasswordTooShort, notify.SeverityWarning)
		return false
	case password != confirmPassword:
		s.notifier.Notify(msgPasswordMismatch, notify.SeverityWarning)
		return false
	}

	if err := s.gw.Register(ctx, username, password); err != nil {
		s.surface(err)
		return false
	}

	s.notifier.Notify(msgRegistered, notify.SeveritySuccess)
	return true
}

// Logout clears the persisted session.
func (s *Service) Logout() bool {
	if err := s.store.Clear(); err != nil {
		s.log.Error("clear session failed", zap.Error(err))
		return false
	}
	s.notifier.Notify(msgLoggedOut, notify.SeveritySuccess)
	return true
}

// surface reports a backend failure the way the web client did: a 400 shows
// the backend's own wording, anything else the generic connectivity notice.
func (s *Service) surface(err error) {
	s.log.Warn("auth call failed", zap.Error(err))
	if backend.StatusOf(err) == http.StatusBadRequest {
		s.notifier.Notify(backend.MessageOr(err, msgBackendDown), notify.SeverityError)
		return
	}
	s.notifier.Notify(msgBackendDown, notify.SeverityError)
}
