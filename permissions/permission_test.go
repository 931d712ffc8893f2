package permissions_test

import (
	"carehub/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "public nanny search with trailing slash",
			path:     "/v1/nannies/",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:      "profile creation is nanny only",
			path:      "/v1/nannies",
			method:    http.MethodPost,
			wantRoles: []string{"nanny"},
		},
		{
			name:      "booking transitions reach the service for every role",
			path:      "/v1/bookings/{id}/cancel",
			method:    http.MethodPut,
			wantRoles: []string{"parent", "nanny", "admin"},
		},
		{
			name:   "unknown route",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "valid table",
			data: `{"endpoints":[{"path":"/v1/bookings","method":"POST","permissions":["parent"]}]}`,
		},
		{
			name:    "duplicate route ignoring trailing slash",
			data:    `{"endpoints":[{"path":"/v1/nannies","method":"GET","skip":true},{"path":"/v1/nannies/","method":"get","skip":true}]}`,
			wantErr: permissions.ErrDuplicateRoute,
		},
		{
			name:    "unknown role",
			data:    `{"endpoints":[{"path":"/v1/bookings","method":"POST","permissions":["babysitter"]}]}`,
			wantErr: permissions.ErrUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := permissions.Load([]byte(tt.data))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{"parent"}, data.FindPermissions("/v1/bookings", http.MethodPost).Permissions)
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := permissions.Load([]byte(`{"endpoints":`))

	assert.Error(t, err)
}
