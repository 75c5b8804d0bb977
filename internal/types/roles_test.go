package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_BuildAndOverheadPartition(t *testing.T) {
	assert.Len(t, Roles, 8)
	assert.Len(t, BuildRoles, 6)

	for _, role := range BuildRoles {
		assert.True(t, IsBuildRole(role), role)
		assert.False(t, IsOverheadRole(role), role)
	}
	assert.True(t, IsOverheadRole(RolePM))
	assert.True(t, IsOverheadRole(RoleQA))
	assert.False(t, IsBuildRole(RolePM))
	assert.False(t, IsBuildRole(RoleQA))
}

func TestIsRole_RejectsUnknown(t *testing.T) {
	assert.True(t, IsRole(RoleDesign))
	assert.False(t, IsRole(Role("wizard")))
	assert.False(t, IsRole(Role("all")), "all is an effect key, not a role")
}

func TestIsBuildRole_UnknownRoleIsNotBuild(t *testing.T) {
	assert.False(t, IsBuildRole(Role("wizard")))
}
