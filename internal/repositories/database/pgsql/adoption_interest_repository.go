package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	"github.com/bethehero/adopt_backend/internal/utils/pagination"
)

type PgxAdoptionInterestRepository struct {
	BaseRepository
}

func newPgxAdoptionInterestRepository(db *pgxpool.Pool) portsrepo.AdoptionInterestRepositoryFacade {
	return &PgxAdoptionInterestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AdoptionInterestRepositoryFacade = (*PgxAdoptionInterestRepository)(nil)

const interestColumns = `interest_id, pet_id, user_id, workspace_id, message, created_at`

func (r *PgxAdoptionInterestRepository) CreateInterest(ctx context.Context, interest domain.AdoptionInterest) (*domain.AdoptionInterest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO adoption_interests (` + interestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		interest.InterestID, interest.PetID, interest.UserID,
		interest.WorkspaceID, interest.Message, interest.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert adoption interest: %w", err)
	}

	audit := domain.NewAuditLog(interest.UserID, domain.AuditCreate, domain.AuditEntityAdoptionInterest, interest.InterestID, map[string]any{
		"petId":       interest.PetID,
		"workspaceId": interest.WorkspaceID,
	})
	if err := insertAuditLog(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &interest, nil
}

func (r *PgxAdoptionInterestRepository) ListByWorkspace(ctx context.Context, workspaceID string, page, perPage int) ([]domain.AdoptionInterest, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM adoption_interests WHERE workspace_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, workspaceID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count interests: %w", err)
	}

	query := `
		SELECT ` + interestColumns + `
		FROM adoption_interests
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, perPage, pagination.Offset(page, perPage))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interests: %w", err)
	}
	interests, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AdoptionInterest])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect interests: %w", err)
	}
	return interests, total, nil
}
