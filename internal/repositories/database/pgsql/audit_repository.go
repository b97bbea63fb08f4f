package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so audit rows can be
// appended standalone or inside another repository's transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// CreateLog appends one audit entry using the pool directly.
func (r *PgxAuditRepository) CreateLog(ctx context.Context, log domain.AuditLog) error {
	return insertAuditLog(ctx, r.Pool, log)
}

// insertAuditLog writes one audit row via the given executor.
func insertAuditLog(ctx context.Context, exec execer, log domain.AuditLog) error {
	if log.LogID == "" {
		log.LogID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	var metadata []byte
	if log.Metadata != nil {
		var err error
		metadata, err = json.Marshal(log.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	query := `
		INSERT INTO audit_logs (log_id, actor_user_id, action, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := exec.Exec(ctx, query,
		log.LogID,
		log.ActorUserID,
		log.Action,
		log.EntityType,
		log.EntityID,
		metadata,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}
