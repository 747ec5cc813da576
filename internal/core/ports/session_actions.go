package ports

import (
	"context"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// SessionActions is the set of session operations the view layer may invoke.
// Each action emits exactly one terminal outcome event to the central store
// per invocation; none of them return errors because every failure path is
// already expressed as a *_FAIL event.
type SessionActions interface {
	CheckAuthenticated(ctx context.Context)
	RefreshToken(ctx context.Context)
	LoadUser(ctx context.Context)
	Login(ctx context.Context, phoneNumber, password string)
	CreateUser(ctx context.Context, input domain.SignupInput)
	Verify(ctx context.Context, uid, token string)
	ResetPassword(ctx context.Context, email string)
	ResetPasswordConfirm(ctx context.Context, uid, token, newPassword, reNewPassword string)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate)
}

// SessionDispatcher receives outcome events from session actions.
type SessionDispatcher interface {
	Dispatch(ev domain.Event)
}

// Notifier emits user-visible transient messages.
type Notifier interface {
	Publish(message string, severity domain.Severity)
}
