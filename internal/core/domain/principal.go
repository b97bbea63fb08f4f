package domain

// PrincipalMembership is the slice of a workspace membership the
// authorization predicates need.
type PrincipalMembership struct {
	WorkspaceID string     `json:"workspaceID"`
	Role        MemberRole `json:"role"`
}

// Principal is the resolved identity of the current request: the user, their
// platform role, their active workspace memberships and, for ADMINs, the set
// of city place ids they may moderate. It is rebuilt per request from the
// access token plus a live membership/coverage lookup and never persisted.
type Principal struct {
	UserID      string                `json:"userID"`
	Role        UserRole              `json:"role"`
	Memberships []PrincipalMembership `json:"memberships"`
	AdminCities []string              `json:"adminCities"`
}

// MembershipFor returns the principal's membership on the given workspace,
// or nil when they are not a member.
func (p *Principal) MembershipFor(workspaceID string) *PrincipalMembership {
	for i := range p.Memberships {
		if p.Memberships[i].WorkspaceID == workspaceID {
			return &p.Memberships[i]
		}
	}
	return nil
}
