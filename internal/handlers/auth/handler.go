package auth

import (
	"carehub/infras/otel"
	"carehub/internal/domains/auth/model/dto"
	"carehub/internal/domains/auth/service"
	"carehub/shared/constant"
	"carehub/shared/validator"
	"carehub/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.Put("/password", handler.ChangePassword)
	})
}

const MsgPasswordChanged = "Password changed successfully"

func withStatus[Res any](status int) func(http.ResponseWriter, Res) {
	return func(w http.ResponseWriter, res Res) {
		response.WithJSON(w, status, res)
	}
}

// serve decodes and validates a Req body, hands it to call and writes the result.
// Every auth endpoint has this shape.
func serve[Req, Res any](
	handler *Handler, w http.ResponseWriter, r *http.Request,
	action string, call func(context.Context, Req) (Res, error), write func(http.ResponseWriter, Res),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+action)
	defer scope.End()

	var req Req

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", action).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := call(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", action).Msg("auth request failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(action + " succeeded")

	write(w, res)
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a parent or nanny account and sign it in. Nanny accounts start with a starter profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.LoginResponse] "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	serve(handler, w, r, "Register", handler.service.Register, withStatus[dto.LoginResponse](http.StatusCreated))
}

// Login handles user login
// @Summary Login a user
// @Description Login a user with the provided credentials.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	serve(handler, w, r, "Login", handler.service.Login, withStatus[dto.LoginResponse](http.StatusOK))
}

// RefreshToken handles token refresh
// @Summary Refresh user token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse] "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	serve(handler, w, r, "RefreshToken", handler.service.RefreshToken, withStatus[dto.RefreshTokenResponse](http.StatusOK))
}

// ChangePassword changes the authenticated user's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	changePassword := func(ctx context.Context, req dto.ChangePasswordRequest) (struct{}, error) {
		return struct{}{}, handler.service.ChangePassword(ctx, req)
	}

	serve(handler, w, r, "ChangePassword", changePassword, func(w http.ResponseWriter, _ struct{}) {
		response.WithMessage(w, http.StatusOK, MsgPasswordChanged)
	})
}
