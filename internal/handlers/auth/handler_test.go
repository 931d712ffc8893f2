package auth_test

import (
	"carehub/infras/otel/mocks"
	"carehub/internal/domains/auth/model/dto"
	serviceMocks "carehub/internal/domains/auth/service/mocks"
	"carehub/internal/handlers/auth"
	"carehub/shared/constant"
	"carehub/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func setup(t *testing.T) (*serviceMocks.MockAuth, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *serviceMocks.MockAuth)
		wantStatus int
		wantError  string
	}{
		{
			name: "registered",
			body: `{"name":"Mary","email":"mary@example.com","password":"secret1","role":"nanny"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{
					Name: "Mary", Email: "mary@example.com", Password: "secret1", Role: constant.RoleNanny,
				}).Return(dto.LoginResponse{AccessToken: "access"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "short password",
			body:       `{"name":"Mary","email":"mary@example.com","password":"abc"}`,
			setupMock:  func(_ *serviceMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "password must be greater than or equal to 6",
		},
		{
			name:       "admin role rejected",
			body:       `{"name":"Mary","email":"mary@example.com","password":"secret1","role":"admin"}`,
			setupMock:  func(_ *serviceMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "role must be one of parent nanny",
		},
		{
			name: "email taken",
			body: `{"name":"Mary","email":"mary@example.com","password":"secret1"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Conflict("Email already in use"))
			},
			wantStatus: http.StatusConflict,
			wantError:  "Email already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec, env := serve(router, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, env.Error)

				return
			}

			var res dto.LoginResponse
			require.NoError(t, json.Unmarshal(env.Data, &res))
			assert.Equal(t, "access", res.AccessToken)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "jane@example.com", Password: "password"}).
		Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh"}, nil)

	rec, env := serve(router, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"password"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "refresh", res.RefreshToken)
}

func TestHandler_RefreshToken(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "expired"}).
		Return(dto.RefreshTokenResponse{}, failure.Unauthorized("Invalid refresh token"))

	rec, env := serve(router, http.MethodPost, "/auth/refresh-token", `{"refreshToken":"expired"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid refresh token", env.Error)
}

func TestHandler_ChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *serviceMocks.MockAuth)
		wantStatus int
	}{
		{
			name: "changed",
			body: `{"currentPassword":"password","newPassword":"new-secret"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "same password",
			body:       `{"currentPassword":"password","newPassword":"password"}`,
			setupMock:  func(_ *serviceMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec, _ := serve(router, http.MethodPut, "/auth/password", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
