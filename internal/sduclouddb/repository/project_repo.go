package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	base[domain.Project]
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{base: base[domain.Project]{db: db, t: projectTable}}
}

// Create inserts p and fills in the store-assigned id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO project (projectname, projectshortname, active, markedfordelete)
VALUES ($1, $2, $3, $4)
RETURNING id, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, p.ProjectName, p.ProjectShortName, p.Active, p.MarkedForDelete).
		Scan(&p.ID, &p.CreatedTs, &p.ModifiedTs)
	return translate(r.t.name, err)
}

// Update writes the mutable columns of p and refreshes its timestamps. The
// soft-delete flag is left to SoftDelete and Restore and read back.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE project
SET projectname = $2, projectshortname = $3, active = $4, modified_ts = clock_timestamp()
WHERE id = $1
RETURNING markedfordelete, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, p.ID, p.ProjectName, p.ProjectShortName, p.Active).
		Scan(&p.MarkedForDelete, &p.CreatedTs, &p.ModifiedTs)
	return translate(r.t.name, err)
}
