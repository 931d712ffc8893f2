package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"carehub/infras/jwt"
	"carehub/internal/domains/auth/model/dto"
	"carehub/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.RegisterRequest
		wantRole string
	}{
		{
			name:     "role defaults to parent",
			req:      dto.RegisterRequest{Name: " Jane Doe ", Email: "Jane@Example.COM ", Password: "secret"},
			wantRole: constant.RoleParent,
		},
		{
			name:     "nanny role is kept",
			req:      dto.RegisterRequest{Name: "Mary", Email: "mary@example.com", Password: "secret", Role: constant.RoleNanny},
			wantRole: constant.RoleNanny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToUserModel("hashed")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, dto.NormalizeEmail(tt.req.Email), user.Email)
			assert.Equal(t, strings.TrimSpace(tt.req.Name), user.Name)
			assert.True(t, user.Active)
			assert.Equal(t, constant.ContextGuest, user.CreatedBy)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", dto.NormalizeEmail("  Jane@Example.COM"))
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
