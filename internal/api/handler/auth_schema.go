package handler

import "github.com/cccc-2705/Mercado/internal/core/domain"

type loginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password"     validate:"required"`
}

type signupRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Username    string `json:"username"     validate:"required"`
	Password    string `json:"password"     validate:"required,min=8"`
	RePassword  string `json:"re_password"  validate:"required,eqfield=Password"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordConfirmRequest struct {
	NewPassword   string `json:"new_password"    validate:"required,min=8"`
	ReNewPassword string `json:"re_new_password" validate:"required,eqfield=NewPassword"`
}

type profileUpdateRequest struct {
	Slug      string `json:"slug" validate:"required"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Image     string `json:"image,omitempty"`
}

// sessionResponse is the session snapshot rendered after every session
// action and on every authenticated view.
type sessionResponse struct {
	IsAuthenticated bool         `json:"is_authenticated"`
	IsLoading       bool         `json:"is_loading"`
	User            *domain.User `json:"user,omitempty"`
}

func newSessionResponse(sess domain.Session) sessionResponse {
	return sessionResponse{
		IsAuthenticated: sess.IsAuthenticated,
		IsLoading:       sess.IsLoading,
		User:            sess.User,
	}
}

// viewResponse wraps a named presentational view with the session snapshot
// the page renders from.
type viewResponse struct {
	View    string          `json:"view"`
	Session sessionResponse `json:"session"`
	Data    any             `json:"data,omitempty"`
}
