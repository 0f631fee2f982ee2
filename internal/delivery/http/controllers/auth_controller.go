package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/delivery/http/middleware"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/session"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(l.Email) {
		errs = append(errs, "invalid email format")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
	Year       string `json:"year,omitempty"`
}

// Validate implements Validator. Role checks are left to the campus API.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(r.Email) {
		errs = append(errs, "invalid email format")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// GoogleLoginRequest is the request body for POST /auth/google: the
// identity provider's token, confirmed entirely outside this gateway.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// Validate implements Validator.
func (g GoogleLoginRequest) Validate() []string {
	if g.IDToken == "" {
		return []string{"idToken is required"}
	}
	return nil
}

// SessionResponse is the success payload of the auth endpoints.
type SessionResponse struct {
	User domain.User `json:"user"`
}

// AuthController handles login, registration, identity check, and logout.
type AuthController struct {
	Logger   *slog.Logger
	Sessions *session.Manager
}

// NewAuthController returns an AuthController backed by the session manager.
func NewAuthController(logger *slog.Logger, sessions *session.Manager) *AuthController {
	return &AuthController{Logger: logger, Sessions: sessions}
}

// Login godoc
// @Summary Log in with email and password
// @Description Exchanges credentials for a session. The bearer token is persisted in a cookie for 7 days, capped at the token's own expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} http.APIResponse "data contains the user"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 401 {object} http.APIResponse "error.code: unauthorized, message from the campus API"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Login failed")
		return
	}
	c.open(w, sess)
	h.WriteJSONSuccess(w, http.StatusOK, SessionResponse{User: sess.User})
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param data body RegisterRequest true "Registration data"
// @Success 201 {object} http.APIResponse "data contains the user"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Sessions.Register(r.Context(), domain.RegisterData{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		Department: req.Department,
		StudentID:  req.StudentID,
		Year:       req.Year,
	})
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Registration failed")
		return
	}
	c.open(w, sess)
	h.WriteJSONSuccess(w, http.StatusCreated, SessionResponse{User: sess.User})
}

// Google godoc
// @Summary Log in with a confirmed third-party identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param data body GoogleLoginRequest true "Identity token"
// @Success 200 {object} http.APIResponse "data contains the user"
// @Failure 401 {object} http.APIResponse "error.code: unauthorized"
// @Router /auth/google [post]
func (c *AuthController) Google(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Sessions.GoogleLogin(r.Context(), req.IDToken)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Google sign-in failed")
		return
	}
	c.open(w, sess)
	h.WriteJSONSuccess(w, http.StatusOK, SessionResponse{User: sess.User})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} http.APIResponse "data contains the user"
// @Failure 401 {object} http.APIResponse "error.code: unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, SessionResponse{User: sess.User})
}

// Logout godoc
// @Summary End the session
// @Description Clears the token cookie, drops the session, and closes its push connection.
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} http.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return
	}
	session.ClearCookie(w)
	c.Sessions.Logout(sess)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (c *AuthController) open(w http.ResponseWriter, sess *session.Session) {
	session.SetCookie(w, sess.Token, c.Sessions.TokenTTL(sess.Token, time.Now()))
}
