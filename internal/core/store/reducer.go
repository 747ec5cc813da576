package store

import "github.com/cccc-2705/Mercado/internal/core/domain"

// Reduce folds one event into the session. It is a pure function, total over
// the named event types; unrecognized events leave the session untouched.
// Token persistence is a session-action side effect and never happens here.
func Reduce(s domain.Session, ev domain.Event) domain.Session {
	switch ev.Type {
	case domain.EventLoading:
		s.IsLoading = true

	case domain.EventAuthenticatedSuccess:
		s.IsLoading = false
		s.IsAuthenticated = true

	case domain.EventAuthenticatedFail:
		s.IsLoading = false
		s.IsAuthenticated = false

	case domain.EventLoginSuccess:
		s.IsLoading = false
		s.IsAuthenticated = true

	case domain.EventLoginFail:
		s.IsLoading = false
		s.IsAuthenticated = false
		s.User = nil

	case domain.EventUserLoadedSuccess:
		s.IsLoading = false
		s.User = ev.User

	case domain.EventUserLoadedFail:
		s.IsLoading = false
		s.User = nil

	case domain.EventSignupSuccess, domain.EventSignupFail:
		// Signup never authenticates by itself; the chained login does.
		s.IsLoading = false
		s.IsAuthenticated = false

	case domain.EventRefreshSuccess, domain.EventRefreshFail,
		domain.EventActivationSuccess, domain.EventActivationFail,
		domain.EventPasswordResetSuccess, domain.EventPasswordResetFail,
		domain.EventPasswordResetConfirmSuccess, domain.EventPasswordResetConfirmFail,
		domain.EventProfileUpdateSuccess, domain.EventProfileUpdateFail:
		s.IsLoading = false

	case domain.EventLogout:
		s = domain.Session{}
	}

	return s
}
