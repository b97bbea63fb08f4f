package domain

import "time"

// AdoptionStatus tracks a completed placement. ACTIVE unless later reversed
// by an operator.
type AdoptionStatus string

const (
	AdoptionActive   AdoptionStatus = "ACTIVE"
	AdoptionReversed AdoptionStatus = "REVERSED"
)

// FollowUpType is the schedule slot of a post-adoption check-in.
type FollowUpType string

const (
	FollowUpDays30  FollowUpType = "DAYS_30"
	FollowUpMonths6 FollowUpType = "MONTHS_6"
	FollowUpYear1   FollowUpType = "YEAR_1"
)

// FollowUpStatus is PENDING until a submission is recorded.
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "PENDING"
	FollowUpSubmitted FollowUpStatus = "SUBMITTED"
)

// Adoption records a completed placement of a pet with a guardian.
type Adoption struct {
	AdoptionID      string         `json:"adoptionID" db:"adoption_id"`
	PetID           string         `json:"petID" db:"pet_id"`
	WorkspaceID     string         `json:"workspaceID" db:"workspace_id"`
	GuardianUserID  string         `json:"guardianUserID" db:"guardian_user_id"`
	AdoptedAt       time.Time      `json:"adoptedAt" db:"adopted_at"`
	Notes           *string        `json:"notes,omitempty" db:"notes"`
	Status          AdoptionStatus `json:"status" db:"status"`
	CreatedByUserID string         `json:"createdByUserID" db:"created_by_user_id"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}

// AdoptionFollowUp is a scheduled post-adoption check-in.
type AdoptionFollowUp struct {
	FollowUpID  string         `json:"followUpID" db:"follow_up_id"`
	AdoptionID  string         `json:"adoptionID" db:"adoption_id"`
	Type        FollowUpType   `json:"type" db:"type"`
	Status      FollowUpStatus `json:"status" db:"status"`
	ScheduledAt time.Time      `json:"scheduledAt" db:"scheduled_at"`
}

// FollowUpSlot pairs a follow-up type with its scheduled time.
type FollowUpSlot struct {
	Type        FollowUpType
	ScheduledAt time.Time
}

// FollowUpSchedule computes the three check-in times for an adoption.
// Offsets use UTC calendar arithmetic: +30 days, +6 months, +1 year, so a
// Jan 31 adoption schedules its 6-month check-in on Jul 31 rather than 30*6
// days later. Month overflow normalizes forward (Go AddDate semantics).
func FollowUpSchedule(adoptedAt time.Time) []FollowUpSlot {
	at := adoptedAt.UTC()
	return []FollowUpSlot{
		{Type: FollowUpDays30, ScheduledAt: at.AddDate(0, 0, 30)},
		{Type: FollowUpMonths6, ScheduledAt: at.AddDate(0, 6, 0)},
		{Type: FollowUpYear1, ScheduledAt: at.AddDate(1, 0, 0)},
	}
}

// AdoptionInterest is a guardian's expressed interest in an approved pet.
// Immutable once created.
type AdoptionInterest struct {
	InterestID  string    `json:"interestID" db:"interest_id"`
	PetID       string    `json:"petID" db:"pet_id"`
	UserID      string    `json:"userID" db:"user_id"`
	WorkspaceID string    `json:"workspaceID" db:"workspace_id"`
	Message     *string   `json:"message,omitempty" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// AdoptionForAccess is the snapshot the adoption-read predicate inspects.
type AdoptionForAccess struct {
	AdoptionID       string   `json:"adoptionID"`
	GuardianUserID   string   `json:"guardianUserID"`
	WorkspaceID      string   `json:"workspaceID"`
	WorkspaceCityIDs []string `json:"workspaceCityIDs"`
}

// AdoptionDetails is the full read model for a single adoption.
type AdoptionDetails struct {
	Adoption
	Pet       Pet                `json:"pet"`
	Guardian  User               `json:"guardian"`
	Workspace Workspace          `json:"workspace"`
	FollowUps []AdoptionFollowUp `json:"followUps"`
}
