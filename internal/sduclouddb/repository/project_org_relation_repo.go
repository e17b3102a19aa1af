package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// ProjectOrgRelationRepository provides persistence operations for
// project/org relations
type ProjectOrgRelationRepository struct {
	base[domain.ProjectOrgRelation]
	orgs base[domain.Org]
}

// NewProjectOrgRelationRepository creates a new relation repository
func NewProjectOrgRelationRepository(db *sqlx.DB) *ProjectOrgRelationRepository {
	return &ProjectOrgRelationRepository{
		base: base[domain.ProjectOrgRelation]{db: db, t: projectOrgRelationTable},
		orgs: base[domain.Org]{db: db, t: orgTable},
	}
}

// Create inserts rel. An unset OrgRefID is sent as NULL and rejected by the
// store with domain.ErrNotNullViolation.
func (r *ProjectOrgRelationRepository) Create(ctx context.Context, rel *domain.ProjectOrgRelation) error {
	const q = `
INSERT INTO project_org_relation (projectrefid, orgrefid, active, markedfordelete)
VALUES ($1, $2, $3, $4)
RETURNING id, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, rel.ProjectRefID, nullableID(rel.OrgRefID), rel.Active, rel.MarkedForDelete).
		Scan(&rel.ID, &rel.CreatedTs, &rel.ModifiedTs)
	return translate(r.t.name, err)
}

// Update writes the mutable columns of rel and refreshes its timestamps. The
// soft-delete flag is left to SoftDelete and Restore and read back.
func (r *ProjectOrgRelationRepository) Update(ctx context.Context, rel *domain.ProjectOrgRelation) error {
	const q = `
UPDATE project_org_relation
SET projectrefid = $2, orgrefid = $3, active = $4, modified_ts = clock_timestamp()
WHERE id = $1
RETURNING markedfordelete, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, rel.ID, rel.ProjectRefID, nullableID(rel.OrgRefID), rel.Active).
		Scan(&rel.MarkedForDelete, &rel.CreatedTs, &rel.ModifiedTs)
	return translate(r.t.name, err)
}

func (r *ProjectOrgRelationRepository) FindByProjectRefID(ctx context.Context, projectRefID int64, opts domain.ListOptions) ([]domain.ProjectOrgRelation, error) {
	return r.FindBy(ctx, "projectrefid", projectRefID, opts)
}

func (r *ProjectOrgRelationRepository) FindByOrgRefID(ctx context.Context, orgRefID int64, opts domain.ListOptions) ([]domain.ProjectOrgRelation, error) {
	return r.FindBy(ctx, "orgrefid", orgRefID, opts)
}

// Org resolves the org rel refers to.
func (r *ProjectOrgRelationRepository) Org(ctx context.Context, rel *domain.ProjectOrgRelation) (*domain.Org, error) {
	if rel.OrgRefID == 0 {
		return nil, domain.ErrNotFound
	}
	return r.orgs.GetByID(ctx, rel.OrgRefID)
}
