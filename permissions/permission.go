package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission maps a route pattern to the resource action it needs. An entry without a resource
// only requires a valid session. Roles, when set, narrow access further regardless of the
// role_permissions table.
type Permission struct {
	Path     string   `json:"path"`
	Method   string   `json:"method"`
	Skip     bool     `json:"skip"`
	Resource string   `json:"resource"`
	Action   string   `json:"action"`
	Roles    []string `json:"roles"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for a route pattern. A trailing slash is not significant, so
// a mounted group root matches with or without it. The bool is false for unlisted routes.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	path = normalizePath(path)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Method == method && normalizePath(rp.Path) == path
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

func normalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

// RoleAllowed reports whether the role passes the optional allow-list.
func (p Permission) RoleAllowed(role string) bool {
	return len(p.Roles) == 0 || slices.Contains(p.Roles, role)
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
