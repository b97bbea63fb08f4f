// Package authz holds the capability predicates gating every mutation in the
// use-case layer. Each predicate is a pure function of the principal and an
// entity snapshot: no I/O, deterministic, order-independent (checks are not
// mutually exclusive; the first rule that grants wins).
package authz

import "github.com/bethehero/adopt_backend/internal/core/domain"

// IsWorkspaceEditor reports whether the principal holds an OWNER or EDITOR
// membership on the workspace. Gates pet create/update, image management and
// submit-for-review.
func IsWorkspaceEditor(p *domain.Principal, workspaceID string) bool {
	if p == nil {
		return false
	}
	m := p.MembershipFor(workspaceID)
	return m != nil && (m.Role == domain.MemberOwner || m.Role == domain.MemberEditor)
}

// IsWorkspaceOwner reports whether the principal holds an OWNER membership
// on the workspace. Gates member add/remove.
func IsWorkspaceOwner(p *domain.Principal, workspaceID string) bool {
	if p == nil {
		return false
	}
	m := p.MembershipFor(workspaceID)
	return m != nil && m.Role == domain.MemberOwner
}

// IsWorkspaceMember reports any active membership, regardless of role.
func IsWorkspaceMember(p *domain.Principal, workspaceID string) bool {
	return p != nil && p.MembershipFor(workspaceID) != nil
}

// HasAdminCoverage reports whether an ADMIN principal's city scope
// intersects the workspace's city set. An ADMIN with an empty scope never
// passes, whatever the workspace.
func HasAdminCoverage(p *domain.Principal, workspaceCityIDs []string) bool {
	if p == nil || p.Role != domain.RoleAdmin || len(p.AdminCities) == 0 {
		return false
	}
	covered := make(map[string]struct{}, len(p.AdminCities))
	for _, id := range p.AdminCities {
		covered[id] = struct{}{}
	}
	for _, id := range workspaceCityIDs {
		if _, ok := covered[id]; ok {
			return true
		}
	}
	return false
}

// CanModerate grants moderation actions (pet approve/reject): SUPER_ADMIN
// unconditionally, ADMIN by geographic coverage.
func CanModerate(p *domain.Principal, workspaceCityIDs []string) bool {
	if p == nil {
		return false
	}
	if p.Role == domain.RoleSuperAdmin {
		return true
	}
	return HasAdminCoverage(p, workspaceCityIDs)
}

// CanManageWorkspace grants workspace-scoped mutations and privileged reads:
// editor membership, admin-geo coverage, or SUPER_ADMIN. Gates workspace
// update, interest listing and adoption registration.
func CanManageWorkspace(p *domain.Principal, workspaceID string, workspaceCityIDs []string) bool {
	if p == nil {
		return false
	}
	if p.Role == domain.RoleSuperAdmin {
		return true
	}
	if IsWorkspaceEditor(p, workspaceID) {
		return true
	}
	return HasAdminCoverage(p, workspaceCityIDs)
}

// CanViewWorkspace grants workspace reads: any membership, admin-geo
// coverage, or SUPER_ADMIN.
func CanViewWorkspace(p *domain.Principal, workspaceID string, workspaceCityIDs []string) bool {
	if p == nil {
		return false
	}
	if p.Role == domain.RoleSuperAdmin {
		return true
	}
	if IsWorkspaceMember(p, workspaceID) {
		return true
	}
	return HasAdminCoverage(p, workspaceCityIDs)
}

// CanViewAdoption grants adoption reads: the adoption's guardian, an editor
// of its workspace, a covering ADMIN, or SUPER_ADMIN.
func CanViewAdoption(p *domain.Principal, adoption *domain.AdoptionForAccess) bool {
	if p == nil || adoption == nil {
		return false
	}
	if p.UserID == adoption.GuardianUserID {
		return true
	}
	return CanManageWorkspace(p, adoption.WorkspaceID, adoption.WorkspaceCityIDs)
}
