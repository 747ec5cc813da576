package domain

import "strings"

// Session is the client-held summary of authentication status and the
// current user. It is owned by the central store and mutated only through
// outcome events.
type Session struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	User            *User `json:"user,omitempty"`
	IsLoading       bool  `json:"is_loading"`
}

// Token store key names. Cleared wholesale on logout.
const (
	TokenKeyAccess  = "access"
	TokenKeyRefresh = "refresh"
)

// TokenPair is the bearer credential pair issued by the auth API.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// EventType names an outcome event a session action emits to the store.
type EventType string

const (
	EventLoading EventType = "LOADING"

	EventAuthenticatedSuccess EventType = "AUTHENTICATED_SUCCESS"
	EventAuthenticatedFail    EventType = "AUTHENTICATED_FAIL"

	EventRefreshSuccess EventType = "REFRESH_SUCCESS"
	EventRefreshFail    EventType = "REFRESH_FAIL"

	EventUserLoadedSuccess EventType = "USER_LOADED_SUCCESS"
	EventUserLoadedFail    EventType = "USER_LOADED_FAIL"

	EventLoginSuccess EventType = "LOGIN_SUCCESS"
	EventLoginFail    EventType = "LOGIN_FAIL"

	EventSignupSuccess EventType = "SIGNUP_SUCCESS"
	EventSignupFail    EventType = "SIGNUP_FAIL"

	EventActivationSuccess EventType = "ACTIVATION_SUCCESS"
	EventActivationFail    EventType = "ACTIVATION_FAIL"

	EventPasswordResetSuccess EventType = "PASSWORD_RESET_SUCCESS"
	EventPasswordResetFail    EventType = "PASSWORD_RESET_FAIL"

	EventPasswordResetConfirmSuccess EventType = "PASSWORD_RESET_CONFIRM_SUCCESS"
	EventPasswordResetConfirmFail    EventType = "PASSWORD_RESET_CONFIRM_FAIL"

	EventProfileUpdateSuccess EventType = "PROFILE_UPDATE_SUCCESS"
	EventProfileUpdateFail    EventType = "PROFILE_UPDATE_FAIL"

	EventLogout EventType = "LOGOUT"
)

// Event is a signal dispatched to the central store. User carries the
// payload for USER_LOADED_SUCCESS and is nil otherwise.
type Event struct {
	Type EventType
	User *User
}

// Outcome splits a terminal event name into its action and result labels,
// e.g. AUTHENTICATED_SUCCESS -> ("AUTHENTICATED", "success"). ok is false
// for non-terminal events such as LOADING.
func (t EventType) Outcome() (action, result string, ok bool) {
	s := string(t)
	switch {
	case t == EventLogout:
		return "LOGOUT", "success", true
	case strings.HasSuffix(s, "_SUCCESS"):
		return strings.TrimSuffix(s, "_SUCCESS"), "success", true
	case strings.HasSuffix(s, "_FAIL"):
		return strings.TrimSuffix(s, "_FAIL"), "fail", true
	}
	return "", "", false
}
