package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/api/middleware"
	"github.com/cccc-2705/Mercado/internal/core/domain"
	"github.com/cccc-2705/Mercado/internal/core/ports"
)

// AuthHandler exposes the session actions behind the auth-facing routes.
// Action endpoints always answer with the resulting session snapshot; the
// outcome itself travels through the central store and the notification
// stream, never as an HTTP error.
type AuthHandler struct {
	actions ports.SessionActions
	store   middleware.SessionReader
}

func NewAuthHandler(actions ports.SessionActions, store middleware.SessionReader) *AuthHandler {
	return &AuthHandler{actions: actions, store: store}
}

func (h *AuthHandler) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, newSessionResponse(h.store.State()))
}

// LoginView renders the login page.
func (h *AuthHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "login", Session: newSessionResponse(middleware.SessionFromContext(c))})
}

// Login exchanges credentials for a session.
//
// @Summary      Log in with phone number and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.actions.Login(c.Request().Context(), req.PhoneNumber, req.Password)
	return h.snapshot(c)
}

// Logout clears the session and sends the user home.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.actions.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, "/")
}

// SignupPhoneView renders the phone number entry step.
func (h *AuthHandler) SignupPhoneView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "signup_phone", Session: newSessionResponse(middleware.SessionFromContext(c))})
}

// SignupVerifyView renders the phone verification step.
func (h *AuthHandler) SignupVerifyView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "signup_phone_verification", Session: newSessionResponse(middleware.SessionFromContext(c))})
}

// SignupFinishView renders the final account details step.
func (h *AuthHandler) SignupFinishView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "signup_finishing_up", Session: newSessionResponse(middleware.SessionFromContext(c))})
}

// Signup registers an account and auto-logs in.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /signup_finishing-up [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.actions.CreateUser(c.Request().Context(), domain.SignupInput{
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Password:    req.Password,
		RePassword:  req.RePassword,
	})
	return h.snapshot(c)
}

// ActivateView renders the activation page for the emailed codes.
func (h *AuthHandler) ActivateView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{
		View:    "activate",
		Session: newSessionResponse(middleware.SessionFromContext(c)),
		Data: map[string]string{
			"uid":   c.Param("uid"),
			"token": c.Param("token"),
		},
	})
}

// Activate submits the activation codes from the route parameters.
func (h *AuthHandler) Activate(c echo.Context) error {
	h.actions.Verify(c.Request().Context(), c.Param("uid"), c.Param("token"))
	return h.snapshot(c)
}

// ResetPasswordView renders the reset request page.
func (h *AuthHandler) ResetPasswordView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: "password_reset", Session: newSessionResponse(middleware.SessionFromContext(c))})
}

// ResetPassword requests a password reset email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.actions.ResetPassword(c.Request().Context(), req.Email)
	return h.snapshot(c)
}

// ResetPasswordConfirmView renders the new-password page.
func (h *AuthHandler) ResetPasswordConfirmView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{
		View:    "password_reset_confirm",
		Session: newSessionResponse(middleware.SessionFromContext(c)),
		Data: map[string]string{
			"uid":   c.Param("uid"),
			"token": c.Param("token"),
		},
	})
}

// ResetPasswordConfirm submits the new password with its reset codes.
func (h *AuthHandler) ResetPasswordConfirm(c echo.Context) error {
	var req resetPasswordConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.actions.ResetPasswordConfirm(c.Request().Context(),
		c.Param("uid"), c.Param("token"), req.NewPassword, req.ReNewPassword)
	return h.snapshot(c)
}

// UpdateProfile PUTs the profile fields and reloads the user.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.actions.UpdateProfile(c.Request().Context(), domain.ProfileUpdate{
		Slug:      req.Slug,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Image:     req.Image,
	})
	return h.snapshot(c)
}
