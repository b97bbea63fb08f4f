package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethehero/adopt_backend/internal/core/authz"
	"github.com/bethehero/adopt_backend/internal/core/domain"
)

func member(workspaceID string, role domain.MemberRole) *domain.Principal {
	return &domain.Principal{
		UserID: "user-1",
		Role:   domain.RolePartnerMember,
		Memberships: []domain.PrincipalMembership{
			{WorkspaceID: workspaceID, Role: role},
		},
	}
}

func admin(cities ...string) *domain.Principal {
	return &domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin, AdminCities: cities}
}

func superAdmin() *domain.Principal {
	return &domain.Principal{UserID: "root-1", Role: domain.RoleSuperAdmin}
}

func TestIsWorkspaceEditor(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		want      bool
	}{
		{"nil principal", nil, false},
		{"owner", member("ws-1", domain.MemberOwner), true},
		{"editor", member("ws-1", domain.MemberEditor), true},
		{"financial", member("ws-1", domain.MemberFinancial), false},
		{"member of another workspace", member("ws-2", domain.MemberOwner), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.IsWorkspaceEditor(tt.principal, "ws-1"))
		})
	}
}

func TestIsWorkspaceOwner(t *testing.T) {
	assert.True(t, authz.IsWorkspaceOwner(member("ws-1", domain.MemberOwner), "ws-1"))
	assert.False(t, authz.IsWorkspaceOwner(member("ws-1", domain.MemberEditor), "ws-1"))
	assert.False(t, authz.IsWorkspaceOwner(nil, "ws-1"))
}

func TestIsWorkspaceMember(t *testing.T) {
	assert.True(t, authz.IsWorkspaceMember(member("ws-1", domain.MemberFinancial), "ws-1"))
	assert.False(t, authz.IsWorkspaceMember(member("ws-2", domain.MemberFinancial), "ws-1"))
	assert.False(t, authz.IsWorkspaceMember(nil, "ws-1"))
}

func TestHasAdminCoverage(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		cities    []string
		want      bool
	}{
		{"nil principal", nil, []string{"city-1"}, false},
		{"covering admin", admin("city-1"), []string{"city-1", "city-2"}, true},
		{"non-covering admin", admin("city-9"), []string{"city-1"}, false},
		{"admin with empty scope never passes", admin(), []string{"city-1"}, false},
		{"admin with empty scope and empty workspace", admin(), nil, false},
		{"super admin is not geo-scoped here", superAdmin(), []string{"city-1"}, false},
		{"guardian never covers", &domain.Principal{Role: domain.RoleGuardian}, []string{"city-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.HasAdminCoverage(tt.principal, tt.cities))
		})
	}
}

func TestCanModerate(t *testing.T) {
	assert.True(t, authz.CanModerate(superAdmin(), nil))
	assert.True(t, authz.CanModerate(admin("city-1"), []string{"city-1"}))
	assert.False(t, authz.CanModerate(admin("city-1"), []string{"city-2"}))
	assert.False(t, authz.CanModerate(member("ws-1", domain.MemberOwner), []string{"city-1"}))
	assert.False(t, authz.CanModerate(nil, []string{"city-1"}))
}

func TestCanManageWorkspace(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		want      bool
	}{
		{"super admin", superAdmin(), true},
		{"owner", member("ws-1", domain.MemberOwner), true},
		{"editor", member("ws-1", domain.MemberEditor), true},
		{"financial member cannot manage", member("ws-1", domain.MemberFinancial), false},
		{"covering admin", admin("city-1"), true},
		{"non-covering admin", admin("city-9"), false},
		{"nil principal", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanManageWorkspace(tt.principal, "ws-1", []string{"city-1"}))
		})
	}
}

func TestCanViewWorkspace(t *testing.T) {
	// Viewing is wider than managing: any membership role suffices.
	assert.True(t, authz.CanViewWorkspace(member("ws-1", domain.MemberFinancial), "ws-1", nil))
	assert.True(t, authz.CanViewWorkspace(admin("city-1"), "ws-1", []string{"city-1"}))
	assert.True(t, authz.CanViewWorkspace(superAdmin(), "ws-1", nil))
	assert.False(t, authz.CanViewWorkspace(&domain.Principal{Role: domain.RoleGuardian}, "ws-1", []string{"city-1"}))
}

func TestCanViewAdoption(t *testing.T) {
	access := &domain.AdoptionForAccess{
		AdoptionID:       "adoption-1",
		GuardianUserID:   "guardian-1",
		WorkspaceID:      "ws-1",
		WorkspaceCityIDs: []string{"city-1"},
	}

	guardian := &domain.Principal{UserID: "guardian-1", Role: domain.RoleGuardian}
	otherGuardian := &domain.Principal{UserID: "guardian-2", Role: domain.RoleGuardian}

	assert.True(t, authz.CanViewAdoption(guardian, access))
	assert.False(t, authz.CanViewAdoption(otherGuardian, access))
	assert.True(t, authz.CanViewAdoption(member("ws-1", domain.MemberEditor), access))
	assert.False(t, authz.CanViewAdoption(member("ws-1", domain.MemberFinancial), access))
	assert.True(t, authz.CanViewAdoption(admin("city-1"), access))
	assert.False(t, authz.CanViewAdoption(admin("city-9"), access))
	assert.True(t, authz.CanViewAdoption(superAdmin(), access))
	assert.False(t, authz.CanViewAdoption(nil, access))
	assert.False(t, authz.CanViewAdoption(guardian, nil))
}
