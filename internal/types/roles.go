// Package types provides type definitions for structured data used throughout the project-estimator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role identifies a delivery role that hours and costs are tracked against.
type Role string

// The closed set of roles. Build roles accumulate hours directly from levers;
// pm and qa are overhead roles derived as percentages of the build subtotal.
const (
	RoleDesign   Role = "design"
	RoleFrontend Role = "frontend"
	RoleBackend  Role = "backend"
	RolePM       Role = "pm"
	RoleQA       Role = "qa"
	RoleDevOps   Role = "devops"
	RoleSEO      Role = "seo"
	RoleContent  Role = "content"
)

// Roles lists every role in stable output order.
var Roles = []Role{
	RoleDesign,
	RoleFrontend,
	RoleBackend,
	RolePM,
	RoleQA,
	RoleDevOps,
	RoleSEO,
	RoleContent,
}

// BuildRoles lists the roles whose hours are accumulated from levers and
// contribute to the billable subtotal.
var BuildRoles = []Role{
	RoleDesign,
	RoleFrontend,
	RoleBackend,
	RoleDevOps,
	RoleSEO,
	RoleContent,
}

// EffectAll is the pseudo-role accepted in multiplier effects to scale every role.
const EffectAll = "all"

// IsBuildRole reports whether r accumulates hours directly from levers.
func IsBuildRole(r Role) bool {
	return r != RolePM && r != RoleQA && IsRole(r)
}

// IsOverheadRole reports whether r is derived from overhead percentages.
func IsOverheadRole(r Role) bool {
	return r == RolePM || r == RoleQA
}

// IsRole reports whether r is a member of the closed role set.
func IsRole(r Role) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}
