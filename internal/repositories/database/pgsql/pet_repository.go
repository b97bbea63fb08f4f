package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

type PgxPetRepository struct {
	BaseRepository
}

func newPgxPetRepository(db *pgxpool.Pool) portsrepo.PetRepositoryFacade {
	return &PgxPetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PetRepositoryFacade = (*PgxPetRepository)(nil)

const petColumns = `pet_id, workspace_id, name, description, species, sex, size, age_category, energy_level, independence_level, environment, adoption_requirements, status, review_note, is_active, approved_at, approved_by_user_id, created_at, created_by, last_updated_at, last_updated_by`

const petImageColumns = `image_id, pet_id, url, storage_path, position, is_cover, created_at`

func (r *PgxPetRepository) SavePet(ctx context.Context, pet domain.Pet) error {
	query := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		pet.PetID, pet.WorkspaceID, pet.Name, pet.Description,
		pet.Species, pet.Sex, pet.Size, pet.AgeCategory,
		pet.EnergyLevel, pet.IndependenceLevel, pet.Environment, pet.AdoptionRequirements,
		pet.Status, pet.ReviewNote, pet.IsActive, pet.ApprovedAt, pet.ApprovedByUserID,
		pet.CreatedAt, pet.CreatedBy, pet.LastUpdatedAt, pet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pet: %w", err)
	}
	return nil
}

func (r *PgxPetRepository) UpdatePet(ctx context.Context, pet domain.Pet) error {
	query := `
		UPDATE pets
		SET name = $2, description = $3, species = $4, sex = $5, size = $6, age_category = $7,
			energy_level = $8, independence_level = $9, environment = $10, adoption_requirements = $11,
			is_active = $12, last_updated_at = $13, last_updated_by = $14
		WHERE pet_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		pet.PetID, pet.Name, pet.Description, pet.Species, pet.Sex, pet.Size, pet.AgeCategory,
		pet.EnergyLevel, pet.IndependenceLevel, pet.Environment, pet.AdoptionRequirements,
		pet.IsActive, pet.LastUpdatedAt, pet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetRepository) findPet(ctx context.Context, petID string) (*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE pet_id = $1;`
	rows, err := r.Pool.Query(ctx, query, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pet %s: %w", petID, err)
	}
	pet, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Pet])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet %s: %w", petID, err)
	}
	return &pet, nil
}

func (r *PgxPetRepository) findWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM partner_workspaces WHERE workspace_id = $1;`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace %s: %w", workspaceID, err)
	}
	workspace, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Workspace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workspace %s: %w", workspaceID, err)
	}
	return &workspace, nil
}

func (r *PgxPetRepository) FindPetWithWorkspace(ctx context.Context, petID string) (*domain.PetWithWorkspace, error) {
	pet, err := r.findPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	workspace, err := r.findWorkspace(ctx, pet.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return &domain.PetWithWorkspace{Pet: *pet, Workspace: *workspace}, nil
}

func (r *PgxPetRepository) FindPetForReview(ctx context.Context, petID string) (*domain.PetForModeration, error) {
	pet, err := r.findPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	workspace, err := r.findWorkspace(ctx, pet.WorkspaceID)
	if err != nil {
		return nil, err
	}

	imagesQuery := `SELECT ` + petImageColumns + ` FROM pet_images WHERE pet_id = $1 ORDER BY position;`
	rows, err := r.Pool.Query(ctx, imagesQuery, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pet images: %w", err)
	}
	images, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PetImage])
	if err != nil {
		return nil, fmt.Errorf("failed to collect pet images: %w", err)
	}

	cityQuery := `
		SELECT DISTINCT city_place_id FROM (
			SELECT city_place_id FROM workspace_locations WHERE workspace_id = $1 AND is_primary
			UNION
			SELECT city_place_id FROM city_coverages WHERE workspace_id = $1
		) cities;
	`
	rows, err = r.Pool.Query(ctx, cityQuery, pet.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace cities: %w", err)
	}
	cityIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect workspace cities: %w", err)
	}

	return &domain.PetForModeration{
		Pet:              *pet,
		Images:           images,
		Workspace:        *workspace,
		WorkspaceCityIDs: cityIDs,
	}, nil
}

func (r *PgxPetRepository) FindPetForAdoption(ctx context.Context, petID string) (*domain.PetForAdoption, error) {
	pet, err := r.findPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	workspace, err := r.findWorkspace(ctx, pet.WorkspaceID)
	if err != nil {
		return nil, err
	}

	var hasAdoption bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM adoptions WHERE pet_id = $1);`, petID).Scan(&hasAdoption); err != nil {
		return nil, fmt.Errorf("failed to check existing adoption: %w", err)
	}

	return &domain.PetForAdoption{
		Pet:         *pet,
		Workspace:   *workspace,
		HasAdoption: hasAdoption,
	}, nil
}

func (r *PgxPetRepository) FindPetImage(ctx context.Context, petID, imageID string) (*domain.PetImage, error) {
	query := `SELECT ` + petImageColumns + ` FROM pet_images WHERE pet_id = $1 AND image_id = $2;`
	rows, err := r.Pool.Query(ctx, query, petID, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pet image: %w", err)
	}
	image, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.PetImage])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet image: %w", err)
	}
	return &image, nil
}

func (r *PgxPetRepository) CountPetImages(ctx context.Context, petID string) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pet_images WHERE pet_id = $1;`, petID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pet images: %w", err)
	}
	return count, nil
}

func (r *PgxPetRepository) ListPublicPets(ctx context.Context, filter portsrepo.PetListFilter) ([]domain.PublicPetListItem, int64, error) {
	where := `
		p.status = 'APPROVED' AND p.is_active
		AND w.is_active AND w.verification_status = 'APPROVED'
	`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Species != "" {
		where += ` AND p.species = ` + arg(filter.Species)
	}
	if filter.Size != "" {
		where += ` AND p.size = ` + arg(filter.Size)
	}
	if filter.AgeCategory != "" {
		where += ` AND p.age_category = ` + arg(filter.AgeCategory)
	}
	if filter.CityPlaceID != "" {
		where += ` AND l.city_place_id = ` + arg(filter.CityPlaceID)
	}

	fromClause := `
		FROM pets p
		JOIN partner_workspaces w ON w.workspace_id = p.workspace_id
		LEFT JOIN workspace_locations l ON l.workspace_id = w.workspace_id AND l.is_primary
	`

	var total int64
	countQuery := `SELECT COUNT(*) ` + fromClause + ` WHERE ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count public pets: %w", err)
	}

	listQuery := `
		SELECT p.pet_id, p.workspace_id, p.name, p.description, p.species, p.sex, p.size, p.age_category,
			p.energy_level, p.independence_level, p.environment, p.adoption_requirements,
			p.status, p.review_note, p.is_active, p.approved_at, p.approved_by_user_id,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
			c.url AS cover_url, w.name AS workspace_name, l.city_place_id
		` + fromClause + `
		LEFT JOIN pet_images c ON c.pet_id = p.pet_id AND c.is_cover
		WHERE ` + where + `
		ORDER BY p.approved_at DESC NULLS LAST
		LIMIT ` + arg(filter.PerPage) + ` OFFSET ` + arg((filter.Page-1)*filter.PerPage) + `;
	`
	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list public pets: %w", err)
	}
	defer rows.Close()

	var items []domain.PublicPetListItem
	for rows.Next() {
		var it domain.PublicPetListItem
		if err := rows.Scan(
			&it.PetID, &it.WorkspaceID, &it.Name, &it.Description, &it.Species, &it.Sex, &it.Size, &it.AgeCategory,
			&it.EnergyLevel, &it.IndependenceLevel, &it.Environment, &it.AdoptionRequirements,
			&it.Status, &it.ReviewNote, &it.IsActive, &it.ApprovedAt, &it.ApprovedByUserID,
			&it.CreatedAt, &it.CreatedBy, &it.LastUpdatedAt, &it.LastUpdatedBy,
			&it.CoverURL, &it.WorkspaceName, &it.CityPlaceID,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan public pet row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate public pets: %w", err)
	}
	return items, total, nil
}

// MarkPetPendingReview flips DRAFT (or REJECTED when resubmission is on) to
// PENDING_REVIEW and writes the submission audit row in one transaction.
func (r *PgxPetRepository) MarkPetPendingReview(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
	return r.transition(ctx, petID, actorUserID, at, `
		UPDATE pets
		SET status = 'PENDING_REVIEW', review_note = NULL, last_updated_at = $2, last_updated_by = $3
		WHERE pet_id = $1 AND status IN ('DRAFT', 'REJECTED')
		RETURNING `+petColumns+`;
	`, nil, domain.NewAuditLog(actorUserID, domain.AuditSubmitForReview, domain.AuditEntityPet, petID, nil))
}

// ApprovePet flips PENDING_REVIEW to APPROVED, stamps the approval and
// writes the audit row in one transaction.
func (r *PgxPetRepository) ApprovePet(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
	return r.transition(ctx, petID, actorUserID, at, `
		UPDATE pets
		SET status = 'APPROVED', approved_at = $4, approved_by_user_id = $3, review_note = NULL,
			last_updated_at = $2, last_updated_by = $3
		WHERE pet_id = $1 AND status = 'PENDING_REVIEW'
		RETURNING `+petColumns+`;
	`, &at, domain.NewAuditLog(actorUserID, domain.AuditApprove, domain.AuditEntityPet, petID, nil))
}

// RejectPet flips PENDING_REVIEW to REJECTED with the review note and writes
// the audit row in one transaction.
func (r *PgxPetRepository) RejectPet(ctx context.Context, petID, actorUserID, reviewNote string, at time.Time) (*domain.Pet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE pets
		SET status = 'REJECTED', review_note = $4, last_updated_at = $2, last_updated_by = $3
		WHERE pet_id = $1 AND status = 'PENDING_REVIEW'
		RETURNING ` + petColumns + `;
	`
	rows, err := tx.Query(ctx, query, petID, at, actorUserID, reviewNote)
	if err != nil {
		return nil, fmt.Errorf("failed to reject pet: %w", err)
	}
	pet, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Pet])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidStatus
		}
		return nil, fmt.Errorf("failed to reject pet: %w", err)
	}

	audit := domain.NewAuditLog(actorUserID, domain.AuditReject, domain.AuditEntityPet, petID, map[string]any{
		"reviewNote": reviewNote,
	})
	if err := insertAuditLog(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &pet, nil
}

// transition runs a guarded status UPDATE ... RETURNING plus its audit row
// in one transaction. A zero-row update means the status guard failed.
func (r *PgxPetRepository) transition(ctx context.Context, petID, actorUserID string, at time.Time, query string, approvedAt *time.Time, audit domain.AuditLog) (*domain.Pet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	args := []any{petID, at, actorUserID}
	if approvedAt != nil {
		args = append(args, *approvedAt)
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to transition pet: %w", err)
	}
	pet, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Pet])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidStatus
		}
		return nil, fmt.Errorf("failed to transition pet: %w", err)
	}

	if err := insertAuditLog(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *PgxPetRepository) AddPetImage(ctx context.Context, image domain.PetImage) (*domain.PetImage, error) {
	query := `
		INSERT INTO pet_images (` + petImageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		image.ImageID, image.PetID, image.URL, image.StoragePath,
		image.Position, image.IsCover, image.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (pet_id, position)
			return nil, apperrors.ErrPositionAlreadyTaken
		}
		return nil, fmt.Errorf("failed to add pet image: %w", err)
	}
	return &image, nil
}

// UpdatePetImage applies a position and/or cover change in one transaction.
// A new cover demotes the old one; moving onto an occupied position swaps
// the occupant into the vacated slot.
func (r *PgxPetRepository) UpdatePetImage(ctx context.Context, petID, imageID string, position *int, isCover *bool) (*domain.PetImage, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT `+petImageColumns+` FROM pet_images WHERE pet_id = $1 AND image_id = $2 FOR UPDATE;`, petID, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock pet image: %w", err)
	}
	current, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.PetImage])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch pet image: %w", err)
	}

	if position != nil && *position != current.Position {
		// Park the image on a temporary negative slot, move any occupant of
		// the target into the vacated position, then land on the target.
		if _, err := tx.Exec(ctx, `UPDATE pet_images SET position = -1 WHERE image_id = $1;`, imageID); err != nil {
			return nil, fmt.Errorf("failed to park image position: %w", err)
		}
		if _, err := tx.Exec(ctx, `UPDATE pet_images SET position = $3 WHERE pet_id = $1 AND position = $2;`, petID, *position, current.Position); err != nil {
			return nil, fmt.Errorf("failed to swap image position: %w", err)
		}
		if _, err := tx.Exec(ctx, `UPDATE pet_images SET position = $2 WHERE image_id = $1;`, imageID, *position); err != nil {
			return nil, fmt.Errorf("failed to set image position: %w", err)
		}
		current.Position = *position
	}

	if isCover != nil && *isCover != current.IsCover {
		if *isCover {
			if _, err := tx.Exec(ctx, `UPDATE pet_images SET is_cover = FALSE WHERE pet_id = $1 AND is_cover;`, petID); err != nil {
				return nil, fmt.Errorf("failed to demote current cover: %w", err)
			}
		}
		if _, err := tx.Exec(ctx, `UPDATE pet_images SET is_cover = $2 WHERE image_id = $1;`, imageID, *isCover); err != nil {
			return nil, fmt.Errorf("failed to set cover flag: %w", err)
		}
		current.IsCover = *isCover
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &current, nil
}

// DeletePetImage removes an image and promotes the lowest-position survivor
// to cover when the cover was deleted.
func (r *PgxPetRepository) DeletePetImage(ctx context.Context, petID, imageID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var wasCover bool
	err = tx.QueryRow(ctx, `DELETE FROM pet_images WHERE pet_id = $1 AND image_id = $2 RETURNING is_cover;`, petID, imageID).Scan(&wasCover)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete pet image: %w", err)
	}

	if wasCover {
		promote := `
			UPDATE pet_images SET is_cover = TRUE
			WHERE image_id = (
				SELECT image_id FROM pet_images WHERE pet_id = $1 ORDER BY position LIMIT 1
			);
		`
		if _, err := tx.Exec(ctx, promote, petID); err != nil {
			return fmt.Errorf("failed to promote replacement cover: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
