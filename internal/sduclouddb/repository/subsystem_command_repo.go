package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type SubsystemCommandRepository struct {
	base[domain.SubsystemCommand]
}

func NewSubsystemCommandRepository(db *sqlx.DB) *SubsystemCommandRepository {
	return &SubsystemCommandRepository{base: base[domain.SubsystemCommand]{db: db, t: subsystemCommandTable}}
}

func (r *SubsystemCommandRepository) Create(ctx context.Context, c *domain.SubsystemCommand) error {
	const q = `
INSERT INTO subsystem_command (subsystemcommandtext, subsystemcommandcategoryrefid, markedfordelete)
VALUES ($1, $2, $3)
RETURNING id, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, c.Text, c.SubsystemCommandCategoryRefID, c.MarkedForDelete).
		Scan(&c.ID, &c.CreatedTs, &c.ModifiedTs)
	return translate(r.t.name, err)
}

func (r *SubsystemCommandRepository) Update(ctx context.Context, c *domain.SubsystemCommand) error {
	const q = `
UPDATE subsystem_command
SET subsystemcommandtext = $2, subsystemcommandcategoryrefid = $3, modified_ts = clock_timestamp()
WHERE id = $1
RETURNING markedfordelete, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, c.ID, c.Text, c.SubsystemCommandCategoryRefID).
		Scan(&c.MarkedForDelete, &c.CreatedTs, &c.ModifiedTs)
	return translate(r.t.name, err)
}

func (r *SubsystemCommandRepository) FindByCategoryID(ctx context.Context, categoryID int64, opts domain.ListOptions) ([]domain.SubsystemCommand, error) {
	return r.FindBy(ctx, "subsystemcommandcategoryrefid", categoryID, opts)
}
