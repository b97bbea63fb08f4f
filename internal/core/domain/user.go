package domain

import "time"

// UserRole is the platform-wide role of a user account.
type UserRole string

const (
	RoleGuardian      UserRole = "GUARDIAN"
	RolePartnerMember UserRole = "PARTNER_MEMBER"
	RoleAdmin         UserRole = "ADMIN"
	RoleSuperAdmin    UserRole = "SUPER_ADMIN"
)

// PublicRegistrableRoles are the roles a user may self-register with.
// ADMIN and SUPER_ADMIN accounts are provisioned out of band.
var PublicRegistrableRoles = []UserRole{RoleGuardian, RolePartnerMember}

// IsPublicRegistrable reports whether the role can be chosen at signup.
func (r UserRole) IsPublicRegistrable() bool {
	for _, allowed := range PublicRegistrableRoles {
		if r == allowed {
			return true
		}
	}
	return false
}

// User represents a platform account.
type User struct {
	UserID        string   `json:"userID" db:"user_id"`
	FullName      string   `json:"fullName" db:"full_name"`
	Email         string   `json:"email" db:"email"`
	PasswordHash  string   `json:"-" db:"password_hash"`
	Role          UserRole `json:"role" db:"role"`
	EmailVerified bool     `json:"emailVerified" db:"email_verified"`
	IsActive      bool     `json:"isActive" db:"is_active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Soft delete
}

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
