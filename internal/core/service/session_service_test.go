package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

type stubTokenStore struct {
	values map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{values: make(map[string]string)}
}

func (s *stubTokenStore) Get(_ context.Context, name string) (string, error) {
	return s.values[name], nil
}

func (s *stubTokenStore) Set(_ context.Context, name, value string) error {
	s.values[name] = value
	return nil
}

func (s *stubTokenStore) Clear(_ context.Context, name string) error {
	delete(s.values, name)
	return nil
}

type stubAuthAPI struct {
	verifyFn       func(ctx context.Context, token string) error
	refreshFn      func(ctx context.Context, refresh string) (domain.TokenPair, error)
	createTokenFn  func(ctx context.Context, phone, password string) (domain.TokenPair, error)
	currentUserFn  func(ctx context.Context, access string) (*domain.User, error)
	createUserFn   func(ctx context.Context, input domain.SignupInput) error
	activateFn     func(ctx context.Context, uid, token string) error
	resetFn        func(ctx context.Context, email string) error
	resetConfirmFn func(ctx context.Context, uid, token, newPw, rePw string) error

	verifyCalls  int
	refreshCalls int
}

func (s *stubAuthAPI) VerifyToken(ctx context.Context, token string) error {
	s.verifyCalls++
	if s.verifyFn == nil {
		return domain.ErrTokenInvalid
	}
	return s.verifyFn(ctx, token)
}

func (s *stubAuthAPI) RefreshToken(ctx context.Context, refresh string) (domain.TokenPair, error) {
	s.refreshCalls++
	if s.refreshFn == nil {
		return domain.TokenPair{}, domain.ErrTokenInvalid
	}
	return s.refreshFn(ctx, refresh)
}

func (s *stubAuthAPI) CreateToken(ctx context.Context, phone, password string) (domain.TokenPair, error) {
	return s.createTokenFn(ctx, phone, password)
}

func (s *stubAuthAPI) CurrentUser(ctx context.Context, access string) (*domain.User, error) {
	if s.currentUserFn == nil {
		return nil, domain.ErrTokenInvalid
	}
	return s.currentUserFn(ctx, access)
}

func (s *stubAuthAPI) CreateUser(ctx context.Context, input domain.SignupInput) error {
	return s.createUserFn(ctx, input)
}

func (s *stubAuthAPI) Activate(ctx context.Context, uid, token string) error {
	return s.activateFn(ctx, uid, token)
}

func (s *stubAuthAPI) ResetPassword(ctx context.Context, email string) error {
	return s.resetFn(ctx, email)
}

func (s *stubAuthAPI) ResetPasswordConfirm(ctx context.Context, uid, token, newPw, rePw string) error {
	return s.resetConfirmFn(ctx, uid, token, newPw, rePw)
}

type stubAccountAPI struct {
	updateFn func(ctx context.Context, access string, update domain.ProfileUpdate) error
	calls    int
}

func (s *stubAccountAPI) UpdateProfile(ctx context.Context, access string, update domain.ProfileUpdate) error {
	s.calls++
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, access, update)
}

type recordingDispatcher struct {
	events []domain.Event
}

func (d *recordingDispatcher) Dispatch(ev domain.Event) {
	d.events = append(d.events, ev)
}

func (d *recordingDispatcher) count(t domain.EventType) int {
	n := 0
	for _, ev := range d.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type recordingNotifier struct {
	published []domain.Notification
}

func (n *recordingNotifier) Publish(message string, severity domain.Severity) {
	n.published = append(n.published, domain.Notification{Message: message, Severity: severity})
}

func (n *recordingNotifier) count(sev domain.Severity) int {
	c := 0
	for _, p := range n.published {
		if p.Severity == sev {
			c++
		}
	}
	return c
}

type fixture struct {
	tokens     *stubTokenStore
	auth       *stubAuthAPI
	accounts   *stubAccountAPI
	dispatcher *recordingDispatcher
	notifier   *recordingNotifier
	svc        *SessionService
}

func newFixture() *fixture {
	f := &fixture{
		tokens:     newStubTokenStore(),
		auth:       &stubAuthAPI{},
		accounts:   &stubAccountAPI{},
		dispatcher: &recordingDispatcher{},
		notifier:   &recordingNotifier{},
	}
	f.svc = NewSessionService(f.tokens, f.auth, f.accounts, f.dispatcher, f.notifier, zerolog.Nop())
	return f
}

// signedToken builds a decodable access token with the given expiry.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestCheckAuthenticated_NoToken_FailsWithoutNetwork(t *testing.T) {
	f := newFixture()

	f.svc.CheckAuthenticated(context.Background())

	if got := f.dispatcher.count(domain.EventAuthenticatedFail); got != 1 {
		t.Fatalf("expected exactly one AUTHENTICATED_FAIL, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventAuthenticatedSuccess); got != 0 {
		t.Fatalf("expected no AUTHENTICATED_SUCCESS, got %d", got)
	}
	if f.auth.verifyCalls != 0 {
		t.Fatalf("expected no verify call, got %d", f.auth.verifyCalls)
	}
}

func TestCheckAuthenticated_ValidToken(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = "tok"
	f.auth.verifyFn = func(_ context.Context, token string) error {
		if token != "tok" {
			t.Fatalf("unexpected token: %s", token)
		}
		return nil
	}

	f.svc.CheckAuthenticated(context.Background())

	if got := f.dispatcher.count(domain.EventAuthenticatedSuccess); got != 1 {
		t.Fatalf("expected exactly one AUTHENTICATED_SUCCESS, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventAuthenticatedFail); got != 0 {
		t.Fatalf("expected no AUTHENTICATED_FAIL, got %d", got)
	}
}

func TestRefreshToken_NoToken_FailsAndStillConverges(t *testing.T) {
	f := newFixture()

	f.svc.RefreshToken(context.Background())

	if got := f.dispatcher.count(domain.EventRefreshFail); got != 1 {
		t.Fatalf("expected exactly one REFRESH_FAIL, got %d", got)
	}
	if f.auth.refreshCalls != 0 {
		t.Fatalf("expected no refresh call, got %d", f.auth.refreshCalls)
	}
	// The follow-up check and load still run.
	if got := f.dispatcher.count(domain.EventAuthenticatedFail); got != 1 {
		t.Fatalf("expected follow-up AUTHENTICATED_FAIL, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventUserLoadedFail); got != 1 {
		t.Fatalf("expected follow-up USER_LOADED_FAIL, got %d", got)
	}
}

func TestRefreshToken_NotYetExpired_FailsWithoutNetwork(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = signedToken(t, time.Now().Add(time.Hour))
	f.tokens.values[domain.TokenKeyRefresh] = "refresh"

	f.svc.RefreshToken(context.Background())

	if got := f.dispatcher.count(domain.EventRefreshFail); got != 1 {
		t.Fatalf("expected exactly one REFRESH_FAIL, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventRefreshSuccess); got != 0 {
		t.Fatalf("expected no REFRESH_SUCCESS, got %d", got)
	}
	if f.auth.refreshCalls != 0 {
		t.Fatalf("refresh endpoint must not be called for a live token, got %d calls", f.auth.refreshCalls)
	}
}

func TestRefreshToken_Expired_ExchangesAndPersists(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = signedToken(t, time.Now().Add(-time.Hour))
	f.tokens.values[domain.TokenKeyRefresh] = "old-refresh"
	f.auth.refreshFn = func(_ context.Context, refresh string) (domain.TokenPair, error) {
		if refresh != "old-refresh" {
			t.Fatalf("unexpected refresh token: %s", refresh)
		}
		return domain.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil
	}
	f.auth.verifyFn = func(context.Context, string) error { return nil }
	f.auth.currentUserFn = func(context.Context, string) (*domain.User, error) {
		return &domain.User{Username: "alice"}, nil
	}

	f.svc.RefreshToken(context.Background())

	if got := f.dispatcher.count(domain.EventRefreshSuccess); got != 1 {
		t.Fatalf("expected exactly one REFRESH_SUCCESS, got %d", got)
	}
	if f.tokens.values[domain.TokenKeyAccess] != "new-access" {
		t.Fatalf("access token not persisted: %q", f.tokens.values[domain.TokenKeyAccess])
	}
	if f.tokens.values[domain.TokenKeyRefresh] != "new-refresh" {
		t.Fatalf("refresh token not persisted: %q", f.tokens.values[domain.TokenKeyRefresh])
	}
	if got := f.dispatcher.count(domain.EventAuthenticatedSuccess); got != 1 {
		t.Fatalf("expected follow-up AUTHENTICATED_SUCCESS, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventUserLoadedSuccess); got != 1 {
		t.Fatalf("expected follow-up USER_LOADED_SUCCESS, got %d", got)
	}
}

func TestRefreshToken_UndecodableToken_Fails(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = "not-a-jwt"

	f.svc.RefreshToken(context.Background())

	if got := f.dispatcher.count(domain.EventRefreshFail); got != 1 {
		t.Fatalf("expected exactly one REFRESH_FAIL, got %d", got)
	}
	if f.auth.refreshCalls != 0 {
		t.Fatalf("expected no refresh call, got %d", f.auth.refreshCalls)
	}
}

func TestLoadUser_Success(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = "tok"
	f.auth.currentUserFn = func(_ context.Context, access string) (*domain.User, error) {
		if access != "tok" {
			t.Fatalf("unexpected access token: %s", access)
		}
		return &domain.User{Username: "alice"}, nil
	}

	f.svc.LoadUser(context.Background())

	if got := f.dispatcher.count(domain.EventUserLoadedSuccess); got != 1 {
		t.Fatalf("expected exactly one USER_LOADED_SUCCESS, got %d", got)
	}
	last := f.dispatcher.events[len(f.dispatcher.events)-1]
	if last.User == nil || last.User.Username != "alice" {
		t.Fatalf("expected user payload, got %+v", last.User)
	}
}

func TestLogin_Success_StoresTokensAndLoadsUser(t *testing.T) {
	f := newFixture()
	f.auth.createTokenFn = func(_ context.Context, phone, password string) (domain.TokenPair, error) {
		if phone != "09171234567" || password != "s3cret" {
			t.Fatalf("unexpected credentials: %s %s", phone, password)
		}
		return domain.TokenPair{Access: "acc", Refresh: "ref"}, nil
	}
	f.auth.currentUserFn = func(context.Context, string) (*domain.User, error) {
		return &domain.User{Username: "alice"}, nil
	}

	f.svc.Login(context.Background(), "09171234567", "s3cret")

	if got := f.dispatcher.count(domain.EventLoginSuccess); got != 1 {
		t.Fatalf("expected exactly one LOGIN_SUCCESS, got %d", got)
	}
	if f.tokens.values[domain.TokenKeyAccess] != "acc" || f.tokens.values[domain.TokenKeyRefresh] != "ref" {
		t.Fatalf("token pair not persisted: %+v", f.tokens.values)
	}
	if got := f.notifier.count(domain.SeveritySuccess); got != 1 {
		t.Fatalf("expected one success notification, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventUserLoadedSuccess); got != 1 {
		t.Fatalf("expected chained USER_LOADED_SUCCESS, got %d", got)
	}
}

func TestLogin_Failure_NotifiesDanger(t *testing.T) {
	f := newFixture()
	f.auth.createTokenFn = func(context.Context, string, string) (domain.TokenPair, error) {
		return domain.TokenPair{}, domain.ErrTokenInvalid
	}

	f.svc.Login(context.Background(), "0917", "wrong")

	if got := f.dispatcher.count(domain.EventLoginFail); got != 1 {
		t.Fatalf("expected exactly one LOGIN_FAIL, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventLoginSuccess); got != 0 {
		t.Fatalf("expected no LOGIN_SUCCESS, got %d", got)
	}
	if got := f.notifier.count(domain.SeverityDanger); got != 1 {
		t.Fatalf("expected one danger notification, got %d", got)
	}
}

func TestCreateUser_FieldErrors_OneNotificationPerField(t *testing.T) {
	f := newFixture()
	f.auth.createUserFn = func(context.Context, domain.SignupInput) error {
		return domain.FieldErrors{
			"phone_number": {"user with this phone number already exists."},
			"username":     {"A user with that username already exists."},
		}
	}

	f.svc.CreateUser(context.Background(), domain.SignupInput{Username: "bob"})

	if got := f.dispatcher.count(domain.EventSignupFail); got != 1 {
		t.Fatalf("expected exactly one SIGNUP_FAIL, got %d", got)
	}
	if got := f.notifier.count(domain.SeverityDanger); got != 2 {
		t.Fatalf("expected one danger notification per field, got %d", got)
	}
}

func TestCreateUser_Success_AutoLogsIn(t *testing.T) {
	f := newFixture()
	f.auth.createUserFn = func(context.Context, domain.SignupInput) error { return nil }
	f.auth.createTokenFn = func(_ context.Context, phone, password string) (domain.TokenPair, error) {
		if phone != "0917" || password != "pw123456" {
			t.Fatalf("auto-login with unexpected credentials: %s %s", phone, password)
		}
		return domain.TokenPair{Access: "acc", Refresh: "ref"}, nil
	}
	f.auth.currentUserFn = func(context.Context, string) (*domain.User, error) {
		return &domain.User{Username: "bob"}, nil
	}

	f.svc.CreateUser(context.Background(), domain.SignupInput{
		PhoneNumber: "0917",
		Username:    "bob",
		Password:    "pw123456",
		RePassword:  "pw123456",
	})

	if got := f.dispatcher.count(domain.EventSignupSuccess); got != 1 {
		t.Fatalf("expected exactly one SIGNUP_SUCCESS, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventLoginSuccess); got != 1 {
		t.Fatalf("expected chained LOGIN_SUCCESS, got %d", got)
	}
}

func TestLogout_ClearsTokensAndWarns(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = "acc"
	f.tokens.values[domain.TokenKeyRefresh] = "ref"

	f.svc.Logout(context.Background())

	if got := f.dispatcher.count(domain.EventLogout); got != 1 {
		t.Fatalf("expected exactly one LOGOUT, got %d", got)
	}
	if len(f.tokens.values) != 0 {
		t.Fatalf("expected tokens cleared wholesale, got %+v", f.tokens.values)
	}
	if got := f.notifier.count(domain.SeverityWarning); got != 1 {
		t.Fatalf("expected one warning notification, got %d", got)
	}
}

func TestUpdateProfile_NoToken_FailsImmediatelyThenReloads(t *testing.T) {
	f := newFixture()

	f.svc.UpdateProfile(context.Background(), domain.ProfileUpdate{Slug: "alice-profile"})

	if got := f.dispatcher.count(domain.EventProfileUpdateFail); got != 1 {
		t.Fatalf("expected exactly one PROFILE_UPDATE_FAIL, got %d", got)
	}
	if f.accounts.calls != 0 {
		t.Fatalf("expected no profile call, got %d", f.accounts.calls)
	}
	// loadUser still runs and fails on the missing token.
	if got := f.dispatcher.count(domain.EventUserLoadedFail); got != 1 {
		t.Fatalf("expected follow-up USER_LOADED_FAIL, got %d", got)
	}
}

func TestUpdateProfile_Success_Reloads(t *testing.T) {
	f := newFixture()
	f.tokens.values[domain.TokenKeyAccess] = "tok"
	f.auth.currentUserFn = func(context.Context, string) (*domain.User, error) {
		return &domain.User{Username: "alice"}, nil
	}

	f.svc.UpdateProfile(context.Background(), domain.ProfileUpdate{Slug: "alice-profile", Bio: "hello"})

	if got := f.dispatcher.count(domain.EventProfileUpdateSuccess); got != 1 {
		t.Fatalf("expected exactly one PROFILE_UPDATE_SUCCESS, got %d", got)
	}
	if f.accounts.calls != 1 {
		t.Fatalf("expected one profile call, got %d", f.accounts.calls)
	}
	if got := f.dispatcher.count(domain.EventUserLoadedSuccess); got != 1 {
		t.Fatalf("expected follow-up USER_LOADED_SUCCESS, got %d", got)
	}
}

func TestVerify_Outcomes(t *testing.T) {
	f := newFixture()
	f.auth.activateFn = func(_ context.Context, uid, token string) error {
		if uid == "good" {
			return nil
		}
		return domain.ErrTokenInvalid
	}

	f.svc.Verify(context.Background(), "good", "code")
	f.svc.Verify(context.Background(), "bad", "code")

	if got := f.dispatcher.count(domain.EventActivationSuccess); got != 1 {
		t.Fatalf("expected one ACTIVATION_SUCCESS, got %d", got)
	}
	if got := f.dispatcher.count(domain.EventActivationFail); got != 1 {
		t.Fatalf("expected one ACTIVATION_FAIL, got %d", got)
	}
}

func TestResetPassword_Outcomes(t *testing.T) {
	f := newFixture()
	f.auth.resetFn = func(_ context.Context, email string) error {
		if email == "known@example.com" {
			return nil
		}
		return domain.ErrTokenInvalid
	}

	f.svc.ResetPassword(context.Background(), "known@example.com")
	if got := f.dispatcher.count(domain.EventPasswordResetSuccess); got != 1 {
		t.Fatalf("expected one PASSWORD_RESET_SUCCESS, got %d", got)
	}

	f.svc.ResetPassword(context.Background(), "unknown@example.com")
	if got := f.dispatcher.count(domain.EventPasswordResetFail); got != 1 {
		t.Fatalf("expected one PASSWORD_RESET_FAIL, got %d", got)
	}
}

func TestResetPasswordConfirm_Outcomes(t *testing.T) {
	f := newFixture()
	f.auth.resetConfirmFn = func(_ context.Context, uid, token, newPw, rePw string) error {
		if newPw != rePw {
			return domain.ErrTokenInvalid
		}
		return nil
	}

	f.svc.ResetPasswordConfirm(context.Background(), "uid", "tok", "newpw123", "newpw123")
	if got := f.dispatcher.count(domain.EventPasswordResetConfirmSuccess); got != 1 {
		t.Fatalf("expected one PASSWORD_RESET_CONFIRM_SUCCESS, got %d", got)
	}

	f.svc.ResetPasswordConfirm(context.Background(), "uid", "tok", "newpw123", "different")
	if got := f.dispatcher.count(domain.EventPasswordResetConfirmFail); got != 1 {
		t.Fatalf("expected one PASSWORD_RESET_CONFIRM_FAIL, got %d", got)
	}
}
