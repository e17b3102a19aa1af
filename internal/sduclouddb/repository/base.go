package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
	"github.com/sducloud/sduclouddb/internal/storage/postgres"
)

const notDeleted = "coalesce(markedfordelete, 0) = 0"

// base implements the operations that only depend on the table layout.
// Entity repositories embed it and add their own insert and update statements.
type base[T any] struct {
	db *sqlx.DB
	t  table
}

// Table returns the relation name.
func (b *base[T]) Table() string {
	return b.t.name
}

// ParseLookupValue converts a textual value for a FindBy lookup on column.
func (b *base[T]) ParseLookupValue(column, raw string) (any, error) {
	return b.t.ParseLookupValue(column, raw)
}

// LookupColumns lists the columns FindBy accepts.
func (b *base[T]) LookupColumns() []string {
	return b.t.LookupColumns()
}

// GetByID returns the row with the given identifier, soft-deleted or not.
func (b *base[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, b.t.selectList(), b.t.name)

	var out T
	if err := b.db.GetContext(ctx, &out, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %d: %w", b.t.name, id, err)
	}
	return &out, nil
}

// List returns all rows ordered by identifier.
func (b *base[T]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	return b.query(ctx, "", nil, opts)
}

// FindBy returns the rows whose column equals value. It replaces the
// per-column findBy queries; column must belong to the table.
func (b *base[T]) FindBy(ctx context.Context, column string, value any, opts domain.ListOptions) ([]T, error) {
	if _, err := b.t.kind(column); err != nil {
		return nil, err
	}
	if column == "markedfordelete" {
		opts.IncludeDeleted = true
	}
	return b.query(ctx, column+" = $1", []any{value}, opts)
}

func (b *base[T]) query(ctx context.Context, where string, args []any, opts domain.ListOptions) ([]T, error) {
	var conds []string
	if where != "" {
		conds = append(conds, where)
	}
	if !opts.IncludeDeleted {
		conds = append(conds, notDeleted)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", b.t.selectList(), b.t.name)
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY id")
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	out := make([]T, 0, 16)
	if err := b.db.SelectContext(ctx, &out, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", b.t.name, err)
	}
	return out, nil
}

// SoftDelete sets markedfordelete. It reports false when the row does not
// exist or is already marked. The row is never removed.
func (b *base[T]) SoftDelete(ctx context.Context, id int64) (bool, error) {
	q := fmt.Sprintf(`
UPDATE %s
SET markedfordelete = 1, modified_ts = clock_timestamp()
WHERE id = $1 AND %s;
`, b.t.name, notDeleted)
	return b.exec(ctx, q, id)
}

// Restore clears markedfordelete on a soft-deleted row.
func (b *base[T]) Restore(ctx context.Context, id int64) (bool, error) {
	q := fmt.Sprintf(`
UPDATE %s
SET markedfordelete = 0, modified_ts = clock_timestamp()
WHERE id = $1 AND NOT (%s);
`, b.t.name, notDeleted)
	return b.exec(ctx, q, id)
}

func (b *base[T]) exec(ctx context.Context, q string, args ...any) (bool, error) {
	result, err := b.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, translate(b.t.name, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Stats counts all rows and the soft-deleted ones.
func (b *base[T]) Stats(ctx context.Context) (domain.TableStats, error) {
	q := fmt.Sprintf(`
SELECT count(*) AS total, count(*) FILTER (WHERE NOT (%s)) AS marked
FROM %s;
`, notDeleted, b.t.name)

	var s domain.TableStats
	if err := b.db.GetContext(ctx, &s, q); err != nil {
		return domain.TableStats{}, fmt.Errorf("failed to count %s: %w", b.t.name, err)
	}
	s.Table = b.t.name
	return s, nil
}

// translate maps constraint violations onto the domain sentinels.
func translate(tableName string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var sentinel error
	switch postgres.SQLState(err) {
	case postgres.CodeNotNullViolation:
		sentinel = domain.ErrNotNullViolation
	case postgres.CodeForeignKeyViolation:
		sentinel = domain.ErrForeignKeyViolation
	case postgres.CodeUniqueViolation:
		sentinel = domain.ErrUniqueViolation
	default:
		return fmt.Errorf("%s: %w", tableName, err)
	}

	if name := postgres.ConstraintName(err); name != "" {
		return fmt.Errorf("%s (%s): %w", tableName, name, sentinel)
	}
	return fmt.Errorf("%s: %w", tableName, sentinel)
}

// nullableID sends an unset reference as NULL so the store's NOT NULL and
// foreign key constraints decide.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
