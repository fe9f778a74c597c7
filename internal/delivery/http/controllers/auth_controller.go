package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAuthController(logger *slog.Logger, svc domain.AdminService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponseData is the data payload for a successful login.
type LoginResponseData struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Log in as the directory admin
// @Description Verifies the single configured admin credential and returns a bearer token for the admin routes.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Admin credentials"
// @Success 200 {object} helpers.APIResponse "data.token is the bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponseData{Token: token})
}
