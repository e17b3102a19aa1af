package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// SubsystemCommandCategoryRepository provides persistence operations for
// subsystem command categories
type SubsystemCommandCategoryRepository struct {
	base[domain.SubsystemCommandCategory]
	commands base[domain.SubsystemCommand]
}

func NewSubsystemCommandCategoryRepository(db *sqlx.DB) *SubsystemCommandCategoryRepository {
	return &SubsystemCommandCategoryRepository{
		base:     base[domain.SubsystemCommandCategory]{db: db, t: subsystemCommandCategoryTable},
		commands: base[domain.SubsystemCommand]{db: db, t: subsystemCommandTable},
	}
}

func (r *SubsystemCommandCategoryRepository) Create(ctx context.Context, c *domain.SubsystemCommandCategory) error {
	const q = `
INSERT INTO subsystem_command_category (subsystemcommandcategorytext, markedfordelete)
VALUES ($1, $2)
RETURNING id, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, c.Text, c.MarkedForDelete).
		Scan(&c.ID, &c.CreatedTs, &c.ModifiedTs)
	return translate(r.t.name, err)
}

func (r *SubsystemCommandCategoryRepository) Update(ctx context.Context, c *domain.SubsystemCommandCategory) error {
	const q = `
UPDATE subsystem_command_category
SET subsystemcommandcategorytext = $2, modified_ts = clock_timestamp()
WHERE id = $1
RETURNING markedfordelete, created_ts, modified_ts;
`
	err := r.db.QueryRowxContext(ctx, q, c.ID, c.Text).
		Scan(&c.MarkedForDelete, &c.CreatedTs, &c.ModifiedTs)
	return translate(r.t.name, err)
}

func (r *SubsystemCommandCategoryRepository) FindByText(ctx context.Context, text string, opts domain.ListOptions) ([]domain.SubsystemCommandCategory, error) {
	return r.FindBy(ctx, "subsystemcommandcategorytext", text, opts)
}

// LoadSubsystemCommands populates c.SubsystemCommands with every command in
// the category, soft-deleted ones included.
func (r *SubsystemCommandCategoryRepository) LoadSubsystemCommands(ctx context.Context, c *domain.SubsystemCommandCategory) error {
	if !c.HasID() {
		c.SubsystemCommands = nil
		return nil
	}
	cmds, err := r.commands.FindBy(ctx, "subsystemcommandcategoryrefid", c.ID, domain.ListOptions{IncludeDeleted: true})
	if err != nil {
		return err
	}
	c.SubsystemCommands = cmds
	return nil
}
