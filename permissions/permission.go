// Package permissions holds the role table the RBAC middleware enforces, keyed by chi route pattern.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"careerday/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleAttendee, constant.RoleCompany, constant.RoleOrganizer}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. Skipped routes and routes without a role list admit anyone.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Parse decodes a permission table and rejects duplicate routes and unknown roles.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "decode permissions")
	}

	data.index = make(map[string]int, len(data.Endpoints))

	for i, endpoint := range data.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := data.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %s", role, key)
			}
		}

		data.index[key] = i
	}

	return &data, nil
}

// FindPermissions returns the entry for a route pattern, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
			return rp.Path == path && rp.Method == method
		})
		if idx == -1 {
			return Permission{}
		}

		return r.Endpoints[idx]
	}

	idx, ok := r.index[routeKey(method, path)]
	if !ok {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Get loads the embedded table. A broken table yields nil, which the RBAC middleware treats as deny all.
func Get() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
}
