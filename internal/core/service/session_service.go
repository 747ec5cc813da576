package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/core/domain"
	"github.com/cccc-2705/Mercado/internal/core/ports"
)

// SessionService implements the session action set. Each action performs its
// network calls through the injected APIs and emits exactly one terminal
// outcome event per invocation, optionally preceded by LOADING and followed
// by a notification. Failures never propagate as errors; they collapse into
// the action's *_FAIL event (field-level signup errors excepted, which also
// surface as notifications).
type SessionService struct {
	tokens   ports.TokenStore
	auth     ports.AuthAPI
	accounts ports.AccountAPI
	store    ports.SessionDispatcher
	notifier ports.Notifier
	log      zerolog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewSessionService(
	tokens ports.TokenStore,
	auth ports.AuthAPI,
	accounts ports.AccountAPI,
	store ports.SessionDispatcher,
	notifier ports.Notifier,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		tokens:   tokens,
		auth:     auth,
		accounts: accounts,
		store:    store,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// CheckAuthenticated verifies the stored access token against the auth API.
// With no access token present it fails immediately without a network call.
func (s *SessionService) CheckAuthenticated(ctx context.Context) {
	s.store.Dispatch(domain.Event{Type: domain.EventLoading})

	access := s.accessToken(ctx)
	if access == "" {
		s.store.Dispatch(domain.Event{Type: domain.EventAuthenticatedFail})
		return
	}

	if err := s.auth.VerifyToken(ctx, access); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventAuthenticatedFail})
		return
	}
	s.store.Dispatch(domain.Event{Type: domain.EventAuthenticatedSuccess})
}

// RefreshToken exchanges the refresh token for a new pair once the access
// token's expiry claim has passed. It fails without a network call when the
// token is absent, undecodable, or not yet expired. Regardless of outcome it
// re-runs CheckAuthenticated and LoadUser so the session converges on the
// stored credentials.
func (s *SessionService) RefreshToken(ctx context.Context) {
	s.store.Dispatch(domain.Event{Type: domain.EventLoading})
	s.refreshOnce(ctx)
	s.CheckAuthenticated(ctx)
	s.LoadUser(ctx)
}

func (s *SessionService) refreshOnce(ctx context.Context) {
	access := s.accessToken(ctx)
	if access == "" {
		s.store.Dispatch(domain.Event{Type: domain.EventRefreshFail})
		return
	}

	exp, err := accessTokenExpiry(access)
	if err != nil {
		// Undecodable tokens are treated as absent.
		s.store.Dispatch(domain.Event{Type: domain.EventRefreshFail})
		return
	}
	if s.now().Before(exp) {
		s.store.Dispatch(domain.Event{Type: domain.EventRefreshFail})
		return
	}

	refresh, err := s.tokens.Get(ctx, domain.TokenKeyRefresh)
	if err != nil {
		s.log.Warn().Err(err).Msg("token store read failed")
	}

	pair, err := s.auth.RefreshToken(ctx, refresh)
	if err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventRefreshFail})
		return
	}

	s.storeTokens(ctx, pair)
	s.store.Dispatch(domain.Event{Type: domain.EventRefreshSuccess})
}

// LoadUser fetches the current-user profile with the stored access token.
func (s *SessionService) LoadUser(ctx context.Context) {
	s.store.Dispatch(domain.Event{Type: domain.EventLoading})

	access := s.accessToken(ctx)
	if access == "" {
		s.store.Dispatch(domain.Event{Type: domain.EventUserLoadedFail})
		return
	}

	user, err := s.auth.CurrentUser(ctx, access)
	if err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventUserLoadedFail})
		return
	}
	s.store.Dispatch(domain.Event{Type: domain.EventUserLoadedSuccess, User: user})
}

// Login exchanges credentials for a token pair, then loads the user.
func (s *SessionService) Login(ctx context.Context, phoneNumber, password string) {
	pair, err := s.auth.CreateToken(ctx, phoneNumber, password)
	if err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventLoginFail})
		s.notifier.Publish("Login failed", domain.SeverityDanger)
		return
	}

	s.storeTokens(ctx, pair)
	s.store.Dispatch(domain.Event{Type: domain.EventLoginSuccess})
	s.notifier.Publish("Login successful", domain.SeveritySuccess)
	s.LoadUser(ctx)
}

// CreateUser registers an account and auto-logs in with the same
// credentials. Server-side field validation failures surface as one danger
// notification per reported field.
func (s *SessionService) CreateUser(ctx context.Context, input domain.SignupInput) {
	if err := s.auth.CreateUser(ctx, input); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventSignupFail})
		s.notifyFieldErrors(err)
		return
	}

	s.log.Debug().Str("username", input.Username).Msg("signup accepted")

	s.store.Dispatch(domain.Event{Type: domain.EventSignupSuccess})
	s.notifier.Publish("Sign up successful.", domain.SeveritySuccess)
	s.Login(ctx, input.PhoneNumber, input.Password)
}

// Verify submits the account activation codes.
func (s *SessionService) Verify(ctx context.Context, uid, token string) {
	if err := s.auth.Activate(ctx, uid, token); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventActivationFail})
		return
	}
	s.store.Dispatch(domain.Event{Type: domain.EventActivationSuccess})
}

// ResetPassword requests a password reset email.
func (s *SessionService) ResetPassword(ctx context.Context, email string) {
	if err := s.auth.ResetPassword(ctx, email); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventPasswordResetFail})
		return
	}
	s.store.Dispatch(domain.Event{Type: domain.EventPasswordResetSuccess})
}

// ResetPasswordConfirm submits the new password with its reset codes.
func (s *SessionService) ResetPasswordConfirm(ctx context.Context, uid, token, newPassword, reNewPassword string) {
	if err := s.auth.ResetPasswordConfirm(ctx, uid, token, newPassword, reNewPassword); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventPasswordResetConfirmFail})
		return
	}
	s.store.Dispatch(domain.Event{Type: domain.EventPasswordResetConfirmSuccess})
}

// Logout clears both stored tokens and resets the session. It never fails.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.Dispatch(domain.Event{Type: domain.EventLoading})

	for _, name := range []string{domain.TokenKeyAccess, domain.TokenKeyRefresh} {
		if err := s.tokens.Clear(ctx, name); err != nil {
			s.log.Warn().Err(err).Str("token", name).Msg("token clear failed")
		}
	}

	s.store.Dispatch(domain.Event{Type: domain.EventLogout})
	s.notifier.Publish("Logout successful", domain.SeverityWarning)
}

// UpdateProfile PUTs the profile fields, then always reloads the user so
// the session reflects whatever the server accepted. With no access token
// present it fails immediately without a network call.
func (s *SessionService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) {
	s.store.Dispatch(domain.Event{Type: domain.EventLoading})

	access := s.accessToken(ctx)
	if access == "" {
		s.store.Dispatch(domain.Event{Type: domain.EventProfileUpdateFail})
	} else if err := s.accounts.UpdateProfile(ctx, access, update); err != nil {
		s.store.Dispatch(domain.Event{Type: domain.EventProfileUpdateFail})
	} else {
		s.store.Dispatch(domain.Event{Type: domain.EventProfileUpdateSuccess})
	}

	s.LoadUser(ctx)
}

func (s *SessionService) accessToken(ctx context.Context) string {
	access, err := s.tokens.Get(ctx, domain.TokenKeyAccess)
	if err != nil {
		s.log.Warn().Err(err).Msg("token store read failed")
		return ""
	}
	return access
}

func (s *SessionService) storeTokens(ctx context.Context, pair domain.TokenPair) {
	if pair.Access != "" {
		if err := s.tokens.Set(ctx, domain.TokenKeyAccess, pair.Access); err != nil {
			s.log.Warn().Err(err).Msg("access token write failed")
		}
	}
	// The refresh endpoint may not rotate the refresh token; keep the old
	// one in that case.
	if pair.Refresh != "" {
		if err := s.tokens.Set(ctx, domain.TokenKeyRefresh, pair.Refresh); err != nil {
			s.log.Warn().Err(err).Msg("refresh token write failed")
		}
	}
}

func (s *SessionService) notifyFieldErrors(err error) {
	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		return
	}
	for _, msgs := range fe {
		s.notifier.Publish(strings.Join(msgs, " "), domain.SeverityDanger)
	}
}
