package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

func newPgxWorkspaceRepository(db *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `workspace_id, name, type, description, phone, whatsapp, email_public, verification_status, is_active, created_at, created_by, last_updated_at, last_updated_by`

const locationColumns = `location_id, workspace_id, city_place_id, lat, lng, address_line, neighborhood, zip_code, is_primary, created_at`

// CreateWorkspace persists the workspace with its primary location, one
// coverage row and the creator's OWNER membership in a single transaction.
func (r *PgxWorkspaceRepository) CreateWorkspace(ctx context.Context, workspace domain.Workspace, location domain.WorkspaceLocation, coverage domain.CityCoverage, owner domain.WorkspaceMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	workspaceQuery := `
		INSERT INTO partner_workspaces (` + workspaceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err := tx.Exec(ctx, workspaceQuery,
		workspace.WorkspaceID, workspace.Name, workspace.Type, workspace.Description,
		workspace.Phone, workspace.Whatsapp, workspace.EmailPublic,
		workspace.VerificationStatus, workspace.IsActive,
		workspace.CreatedAt, workspace.CreatedBy, workspace.LastUpdatedAt, workspace.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert workspace: %w", err)
	}

	locationQuery := `
		INSERT INTO workspace_locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, locationQuery,
		location.LocationID, location.WorkspaceID, location.CityPlaceID,
		location.Lat, location.Lng, location.AddressLine, location.Neighborhood,
		location.ZipCode, location.IsPrimary, location.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert primary location: %w", err)
	}

	coverageQuery := `
		INSERT INTO city_coverages (coverage_id, workspace_id, city_place_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, coverageQuery,
		coverage.CoverageID, coverage.WorkspaceID, coverage.CityPlaceID, coverage.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert city coverage: %w", err)
	}

	memberQuery := `
		INSERT INTO partner_members (member_id, workspace_id, user_id, role, is_active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, memberQuery,
		owner.MemberID, owner.WorkspaceID, owner.UserID, owner.Role, owner.IsActive, owner.JoinedAt,
	); err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkspaceRepository) FindWorkspaceDetails(ctx context.Context, workspaceID string) (*domain.WorkspaceDetails, error) {
	workspaceQuery := `SELECT ` + workspaceColumns + ` FROM partner_workspaces WHERE workspace_id = $1;`

	rows, err := r.Pool.Query(ctx, workspaceQuery, workspaceID)
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

	details := &domain.WorkspaceDetails{Workspace: workspace}

	locationQuery := `SELECT ` + locationColumns + ` FROM workspace_locations WHERE workspace_id = $1 AND is_primary;`
	rows, err = r.Pool.Query(ctx, locationQuery, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary location: %w", err)
	}
	location, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WorkspaceLocation])
	if err == nil {
		details.PrimaryLocation = &location
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find primary location: %w", err)
	}

	coverageQuery := `
		SELECT p.place_id, p.name, p.slug, p.type, p.parent_id
		FROM city_coverages c
		JOIN geo_places p ON p.place_id = c.city_place_id
		WHERE c.workspace_id = $1;
	`
	rows, err = r.Pool.Query(ctx, coverageQuery, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query city coverage: %w", err)
	}
	coverage, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.GeoPlace])
	if err != nil {
		return nil, fmt.Errorf("failed to collect city coverage: %w", err)
	}
	details.CityCoverage = coverage

	return details, nil
}

func (r *PgxWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string, page, perPage int) ([]domain.WorkspaceMember, error) {
	query := `
		SELECT member_id, workspace_id, user_id, role, is_active, joined_at
		FROM partner_members
		WHERE workspace_id = $1 AND is_active
		ORDER BY joined_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.WorkspaceMember])
	if err != nil {
		return nil, fmt.Errorf("failed to collect members: %w", err)
	}
	return members, nil
}

func (r *PgxWorkspaceRepository) FindActiveMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMember, error) {
	query := `
		SELECT member_id, workspace_id, user_id, role, is_active, joined_at
		FROM partner_members
		WHERE user_id = $1 AND is_active;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.WorkspaceMember])
	if err != nil {
		return nil, fmt.Errorf("failed to collect memberships: %w", err)
	}
	return members, nil
}

// ListMembershipsByUserID hydrates each active membership with its workspace
// and satellite records. Membership counts per user are small, so the
// N+1 reads stay cheap.
func (r *PgxWorkspaceRepository) ListMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMembership, error) {
	members, err := r.FindActiveMembershipsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships := make([]domain.WorkspaceMembership, 0, len(members))
	for _, m := range members {
		details, err := r.FindWorkspaceDetails(ctx, m.WorkspaceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		memberships = append(memberships, domain.WorkspaceMembership{
			Member:          m,
			Workspace:       details.Workspace,
			PrimaryLocation: details.PrimaryLocation,
			CityCoverage:    details.CityCoverage,
		})
	}
	return memberships, nil
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		UPDATE partner_workspaces
		SET name = $2, type = $3, description = $4, phone = $5, whatsapp = $6, email_public = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID, workspace.Name, workspace.Type, workspace.Description,
		workspace.Phone, workspace.Whatsapp, workspace.EmailPublic,
		workspace.LastUpdatedAt, workspace.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePrimaryLocation demotes the current primary location, inserts the
// new one and upserts a coverage row for its city, all in one transaction.
func (r *PgxWorkspaceRepository) UpdatePrimaryLocation(ctx context.Context, workspaceID string, location domain.WorkspaceLocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE workspace_locations SET is_primary = FALSE WHERE workspace_id = $1 AND is_primary;`, workspaceID); err != nil {
		return fmt.Errorf("failed to demote primary location: %w", err)
	}

	insertQuery := `
		INSERT INTO workspace_locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		location.LocationID, location.WorkspaceID, location.CityPlaceID,
		location.Lat, location.Lng, location.AddressLine, location.Neighborhood,
		location.ZipCode, location.IsPrimary, location.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert primary location: %w", err)
	}

	coverageQuery := `
		INSERT INTO city_coverages (coverage_id, workspace_id, city_place_id, created_at)
		VALUES (gen_random_uuid(), $1, $2, now())
		ON CONFLICT (workspace_id, city_place_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, coverageQuery, workspaceID, location.CityPlaceID); err != nil {
		return fmt.Errorf("failed to upsert city coverage: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) (*domain.WorkspaceMember, error) {
	query := `
		INSERT INTO partner_members (member_id, workspace_id, user_id, role, is_active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID, member.WorkspaceID, member.UserID, member.Role, member.IsActive, member.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return &member, nil
}

func (r *PgxWorkspaceRepository) FindMember(ctx context.Context, workspaceID, memberID string) (*domain.WorkspaceMember, error) {
	query := `
		SELECT member_id, workspace_id, user_id, role, is_active, joined_at
		FROM partner_members
		WHERE workspace_id = $1 AND member_id = $2 AND is_active;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member: %w", err)
	}
	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WorkspaceMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return &member, nil
}

func (r *PgxWorkspaceRepository) CountActiveOwners(ctx context.Context, workspaceID string) (int, error) {
	query := `SELECT COUNT(*) FROM partner_members WHERE workspace_id = $1 AND role = 'OWNER' AND is_active;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, workspaceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return count, nil
}

func (r *PgxWorkspaceRepository) DeactivateMember(ctx context.Context, workspaceID, memberID string) error {
	query := `UPDATE partner_members SET is_active = FALSE WHERE workspace_id = $1 AND member_id = $2 AND is_active;`
	tag, err := r.Pool.Exec(ctx, query, workspaceID, memberID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
