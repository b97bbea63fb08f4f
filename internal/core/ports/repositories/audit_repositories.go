package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// AuditRepositoryFacade appends to the audit log. Multi-write mutations
// carry their audit rows inside their own repository transactions; this
// interface serves single-write mutations.
type AuditRepositoryFacade interface {
	CreateLog(ctx context.Context, log domain.AuditLog) error
}
