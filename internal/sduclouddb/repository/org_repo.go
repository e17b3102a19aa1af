package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// OrgRepository provides persistence operations for orgs
type OrgRepository struct {
	base[domain.Org]
	relations base[domain.ProjectOrgRelation]
}

// NewOrgRepository creates a new org repository
func NewOrgRepository(db *sqlx.DB) *OrgRepository {
	return &OrgRepository{
		base:      base[domain.Org]{db: db, t: orgTable},
		relations: base[domain.ProjectOrgRelation]{db: db, t: projectOrgRelationTable},
	}
}

// Create inserts o and fills in the store-assigned id and timestamps.
func (r *OrgRepository) Create(ctx context.Context, o *domain.Org) error {
	const q = `
INSERT INTO org (orgfullname, orgshortname, active, markedfordelete)
VALUES ($1, $2, $3, $4)
RETURNING id, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, o.OrgFullName, o.OrgShortName, o.Active, o.MarkedForDelete).
		Scan(&o.ID, &o.CreatedTs, &o.ModifiedTs)
	return translate(r.t.name, err)
}

// Update writes the mutable columns of o and refreshes its timestamps. The
// soft-delete flag is left to SoftDelete and Restore and read back.
func (r *OrgRepository) Update(ctx context.Context, o *domain.Org) error {
	const q = `
UPDATE org
SET orgfullname = $2, orgshortname = $3, active = $4, modified_ts = clock_timestamp()
WHERE id = $1
RETURNING markedfordelete, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, o.ID, o.OrgFullName, o.OrgShortName, o.Active).
		Scan(&o.MarkedForDelete, &o.CreatedTs, &o.ModifiedTs)
	return translate(r.t.name, err)
}

// LoadProjectOrgRelations populates o.ProjectOrgRelations with every relation
// referencing o, soft-deleted ones included.
func (r *OrgRepository) LoadProjectOrgRelations(ctx context.Context, o *domain.Org) error {
	if !o.HasID() {
		o.ProjectOrgRelations = nil
		return nil
	}
	rels, err := r.relations.FindBy(ctx, "orgrefid", o.ID, domain.ListOptions{IncludeDeleted: true})
	if err != nil {
		return err
	}
	o.ProjectOrgRelations = rels
	return nil
}
