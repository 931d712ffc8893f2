package permissions

import (
	"carehub/shared/constant"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var (
	ErrDuplicateRoute = errors.New("duplicate route permission")
	ErrUnknownRole    = errors.New("unknown role in route permission")
)

var knownRoles = []string{constant.RoleParent, constant.RoleNanny, constant.RoleAdmin}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData is the route table. Skip at the top level disables RBAC entirely.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions looks up a chi route pattern. A trailing slash is ignored and a miss returns the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	key := routeKey(method, path)

	if r.index != nil {
		if idx, ok := r.index[key]; ok {
			return r.Endpoints[idx]
		}

		return Permission{}
	}

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return routeKey(rp.Method, rp.Path) == key
	})
	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]int, len(r.Endpoints))

	for i, endpoint := range r.Endpoints {
		r.index[routeKey(endpoint.Method, endpoint.Path)] = i
	}
}

func (r *PermissionData) validate() error {
	seen := make(map[string]struct{}, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}

		seen[key] = struct{}{}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("%w: %s on %s", ErrUnknownRole, role, key)
			}
		}
	}

	return nil
}

// Load decodes and validates a route table.
func Load(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	if err := permissions.validate(); err != nil {
		return nil, err
	}

	permissions.buildIndex()

	return &permissions, nil
}

// Get loads the embedded table. A nil result makes RBAC refuse every protected route.
func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
