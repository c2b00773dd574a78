package authz

import (
	"strings"

	"github.com/nomipay/nomi/internal/domain"
)

// routePolicy is the single source of truth for which roles may enter each
// API surface. Routes outside these prefixes are not role-gated.
var routePolicy = map[string][]domain.Role{
	"/api/employee": {domain.RoleEmployee},
	"/api/hr":       {domain.RoleHR, domain.RoleAdmin},
	"/api/admin":    {domain.RoleAdmin},
}

// Allowed reports whether the role may access the given request path.
func Allowed(path string, role domain.Role) bool {
	for prefix, roles := range routePolicy {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			for _, r := range roles {
				if r == role {
					return true
				}
			}
			return false
		}
	}
	return true
}
