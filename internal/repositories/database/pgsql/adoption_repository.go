package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

type PgxAdoptionRepository struct {
	BaseRepository
}

func newPgxAdoptionRepository(db *pgxpool.Pool) portsrepo.AdoptionRepositoryFacade {
	return &PgxAdoptionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AdoptionRepositoryFacade = (*PgxAdoptionRepository)(nil)

const adoptionColumns = `adoption_id, pet_id, workspace_id, guardian_user_id, adopted_at, notes, status, created_by_user_id, created_at`

const followUpColumns = `follow_up_id, adoption_id, type, status, scheduled_at`

// CreateAdoption inserts the adoption, marks the pet ADOPTED, schedules the
// three follow-ups and writes both audit entries in one transaction. A
// duplicate pet_id surfaces as ErrPetAlreadyAdopted.
func (r *PgxAdoptionRepository) CreateAdoption(ctx context.Context, adoption domain.Adoption) (*domain.Adoption, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO adoptions (` + adoptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		adoption.AdoptionID, adoption.PetID, adoption.WorkspaceID, adoption.GuardianUserID,
		adoption.AdoptedAt, adoption.Notes, adoption.Status, adoption.CreatedByUserID, adoption.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on pet_id
			return nil, apperrors.ErrPetAlreadyAdopted
		}
		return nil, fmt.Errorf("failed to insert adoption: %w", err)
	}

	petQuery := `
		UPDATE pets
		SET status = 'ADOPTED', last_updated_at = $2, last_updated_by = $3
		WHERE pet_id = $1 AND status = 'APPROVED';
	`
	tag, err := tx.Exec(ctx, petQuery, adoption.PetID, adoption.CreatedAt, adoption.CreatedByUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark pet adopted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrPetNotApproved
	}

	followUpQuery := `
		INSERT INTO adoption_follow_ups (` + followUpColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, slot := range domain.FollowUpSchedule(adoption.AdoptedAt) {
		_, err = tx.Exec(ctx, followUpQuery,
			uuid.NewString(), adoption.AdoptionID, slot.Type, domain.FollowUpPending, slot.ScheduledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to schedule follow-up %s: %w", slot.Type, err)
		}
	}

	adoptionAudit := domain.NewAuditLog(adoption.CreatedByUserID, domain.AuditCreate, domain.AuditEntityAdoption, adoption.AdoptionID, map[string]any{
		"petId":          adoption.PetID,
		"guardianUserId": adoption.GuardianUserID,
		"adoptedAt":      adoption.AdoptedAt.UTC().Format(time.RFC3339),
	})
	if err := insertAuditLog(ctx, tx, adoptionAudit); err != nil {
		return nil, err
	}

	statusAudit := domain.NewAuditLog(adoption.CreatedByUserID, domain.AuditStatusChange, domain.AuditEntityPet, adoption.PetID, map[string]any{
		"from":       string(domain.PetApproved),
		"to":         string(domain.PetAdopted),
		"adoptionId": adoption.AdoptionID,
	})
	if err := insertAuditLog(ctx, tx, statusAudit); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &adoption, nil
}

func (r *PgxAdoptionRepository) FindAdoptionForAccess(ctx context.Context, adoptionID string) (*domain.AdoptionForAccess, error) {
	query := `SELECT adoption_id, guardian_user_id, workspace_id FROM adoptions WHERE adoption_id = $1;`
	var access domain.AdoptionForAccess
	err := r.Pool.QueryRow(ctx, query, adoptionID).Scan(&access.AdoptionID, &access.GuardianUserID, &access.WorkspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find adoption %s: %w", adoptionID, err)
	}

	cityQuery := `
		SELECT DISTINCT city_place_id FROM (
			SELECT city_place_id FROM workspace_locations WHERE workspace_id = $1 AND is_primary
			UNION
			SELECT city_place_id FROM city_coverages WHERE workspace_id = $1
		) cities;
	`
	rows, err := r.Pool.Query(ctx, cityQuery, access.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace cities: %w", err)
	}
	access.WorkspaceCityIDs, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect workspace cities: %w", err)
	}
	return &access, nil
}

func (r *PgxAdoptionRepository) FindAdoptionDetails(ctx context.Context, adoptionID string) (*domain.AdoptionDetails, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoptions WHERE adoption_id = $1;`
	rows, err := r.Pool.Query(ctx, query, adoptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adoption %s: %w", adoptionID, err)
	}
	adoption, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Adoption])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find adoption %s: %w", adoptionID, err)
	}

	details := domain.AdoptionDetails{Adoption: adoption}

	petQuery := `SELECT ` + petColumns + ` FROM pets WHERE pet_id = $1;`
	rows, err = r.Pool.Query(ctx, petQuery, adoption.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adopted pet: %w", err)
	}
	details.Pet, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Pet])
	if err != nil {
		return nil, fmt.Errorf("failed to find adopted pet: %w", err)
	}

	guardianQuery := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	rows, err = r.Pool.Query(ctx, guardianQuery, adoption.GuardianUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guardian: %w", err)
	}
	details.Guardian, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, fmt.Errorf("failed to find guardian: %w", err)
	}

	workspaceQuery := `SELECT ` + workspaceColumns + ` FROM partner_workspaces WHERE workspace_id = $1;`
	rows, err = r.Pool.Query(ctx, workspaceQuery, adoption.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace: %w", err)
	}
	details.Workspace, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Workspace])
	if err != nil {
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}

	followUpQuery := `SELECT ` + followUpColumns + ` FROM adoption_follow_ups WHERE adoption_id = $1 ORDER BY scheduled_at;`
	rows, err = r.Pool.Query(ctx, followUpQuery, adoptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow-ups: %w", err)
	}
	details.FollowUps, err = pgx.CollectRows(rows, pgx.RowToStructByName[domain.AdoptionFollowUp])
	if err != nil {
		return nil, fmt.Errorf("failed to collect follow-ups: %w", err)
	}

	return &details, nil
}
