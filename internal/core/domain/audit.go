package domain

import "time"

// AuditAction is the verb recorded for a mutation.
type AuditAction string

const (
	AuditCreate          AuditAction = "CREATE"
	AuditUpdate          AuditAction = "UPDATE"
	AuditSubmitForReview AuditAction = "SUBMIT_FOR_REVIEW"
	AuditApprove         AuditAction = "APPROVE"
	AuditReject          AuditAction = "REJECT"
	AuditStatusChange    AuditAction = "STATUS_CHANGE"
)

// AuditEntityType names the entity a log entry documents.
type AuditEntityType string

const (
	AuditEntityWorkspace        AuditEntityType = "PARTNER_WORKSPACE"
	AuditEntityPet              AuditEntityType = "PET"
	AuditEntityPetImage         AuditEntityType = "PET_IMAGE"
	AuditEntityAdoption         AuditEntityType = "ADOPTION"
	AuditEntityAdoptionInterest AuditEntityType = "ADOPTION_INTEREST"
	AuditEntityUser             AuditEntityType = "USER"
)

// AuditLog is an append-only record of a mutation, written synchronously in
// the same transaction as the mutation it documents.
type AuditLog struct {
	LogID       string          `json:"logID" db:"log_id"`
	ActorUserID string          `json:"actorUserID" db:"actor_user_id"`
	Action      AuditAction     `json:"action" db:"action"`
	EntityType  AuditEntityType `json:"entityType" db:"entity_type"`
	EntityID    string          `json:"entityID" db:"entity_id"`
	Metadata    map[string]any  `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// NewAuditLog builds an unsaved audit entry.
func NewAuditLog(actorUserID string, action AuditAction, entityType AuditEntityType, entityID string, metadata map[string]any) AuditLog {
	return AuditLog{
		ActorUserID: actorUserID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Metadata:    metadata,
	}
}
