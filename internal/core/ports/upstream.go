package ports

import (
	"context"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// AuthAPI is the remote JWT-issuing auth surface the client proxies.
type AuthAPI interface {
	// VerifyToken checks an access token remotely. A nil error means the
	// token is valid; domain.ErrTokenInvalid or any transport error means
	// it is not.
	VerifyToken(ctx context.Context, token string) error

	// RefreshToken exchanges a refresh token for a new pair. The returned
	// pair may carry an empty Refresh when the server does not rotate it.
	RefreshToken(ctx context.Context, refresh string) (domain.TokenPair, error)

	// CreateToken exchanges credentials for a token pair.
	CreateToken(ctx context.Context, phoneNumber, password string) (domain.TokenPair, error)

	// CurrentUser fetches the profile of the token's owner.
	CurrentUser(ctx context.Context, access string) (*domain.User, error)

	// CreateUser registers an account. Server-side validation failures are
	// returned as domain.FieldErrors.
	CreateUser(ctx context.Context, input domain.SignupInput) error

	// Activate submits the account activation codes.
	Activate(ctx context.Context, uid, token string) error

	// ResetPassword requests a password reset email.
	ResetPassword(ctx context.Context, email string) error

	// ResetPasswordConfirm submits a new password with its reset codes.
	ResetPasswordConfirm(ctx context.Context, uid, token, newPassword, reNewPassword string) error
}

// AccountAPI is the remote accounts surface.
type AccountAPI interface {
	UpdateProfile(ctx context.Context, access string, update domain.ProfileUpdate) error
}

// CatalogAPI is the remote store surface for product browsing.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
}
