package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// VerifyToken checks an access token via POST /auth/jwt/verify/.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	var resp struct {
		Code string `json:"code"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/jwt/verify/", "jwt_verify", "",
		map[string]string{"token": token}, &resp); err != nil {
		return err
	}
	// Some deployments answer 200 with an error code in the body.
	if resp.Code == "token_not_valid" {
		return domain.ErrTokenInvalid
	}
	return nil
}

// RefreshToken exchanges a refresh token via POST /auth/jwt/refresh/.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (domain.TokenPair, error) {
	var pair domain.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/jwt/refresh/", "jwt_refresh", "",
		map[string]string{"refresh": refresh}, &pair)
	return pair, err
}

// CreateToken exchanges credentials for a token pair via POST /auth/jwt/create/.
func (c *Client) CreateToken(ctx context.Context, phoneNumber, password string) (domain.TokenPair, error) {
	var pair domain.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/jwt/create/", "jwt_create", "",
		map[string]string{"phone_number": phoneNumber, "password": password}, &pair)
	return pair, err
}

// CurrentUser fetches the token owner's profile via GET /auth/users/me/.
func (c *Client) CurrentUser(ctx context.Context, access string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/users/me/", "users_me", access, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers an account via POST /auth/users/. A 400 response body
// of the form {"field": ["message", ...]} is returned as domain.FieldErrors.
func (c *Client) CreateUser(ctx context.Context, input domain.SignupInput) error {
	err := c.do(ctx, http.MethodPost, "/auth/users/", "users_create", "", input, nil)
	if err == nil {
		return nil
	}

	var se *statusError
	if errors.As(err, &se) && se.Status == http.StatusBadRequest {
		if fe := parseFieldErrors(se.Body); len(fe) > 0 {
			return fe
		}
	}
	return err
}

// Activate submits activation codes via POST /auth/users/activation/.
func (c *Client) Activate(ctx context.Context, uid, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/users/activation/", "users_activation", "",
		map[string]string{"uid": uid, "token": token}, nil)
}

// ResetPassword requests a reset email via POST /auth/users/reset_password/.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/users/reset_password/", "users_reset_password", "",
		map[string]string{"email": email}, nil)
}

// ResetPasswordConfirm submits the new password via
// POST /auth/users/reset_password_confirm/.
func (c *Client) ResetPasswordConfirm(ctx context.Context, uid, token, newPassword, reNewPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/users/reset_password_confirm/", "users_reset_password_confirm", "",
		map[string]string{
			"uid":             uid,
			"token":           token,
			"new_password":    newPassword,
			"re_new_password": reNewPassword,
		}, nil)
}

// parseFieldErrors normalizes a validation payload whose values may be a
// single string or an array of strings.
func parseFieldErrors(raw []byte) domain.FieldErrors {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	fe := make(domain.FieldErrors, len(payload))
	for field, value := range payload {
		switch v := value.(type) {
		case string:
			fe[field] = []string{v}
		case []any:
			msgs := make([]string, 0, len(v))
			for _, m := range v {
				if s, ok := m.(string); ok {
					msgs = append(msgs, s)
				}
			}
			if len(msgs) > 0 {
				fe[field] = msgs
			}
		}
	}
	return fe
}
