package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

// Repositories bundles one repository per table over a shared connection.
type Repositories struct {
	Orgs                       *OrgRepository
	Projects                   *ProjectRepository
	ProjectOrgRelations        *ProjectOrgRelationRepository
	SubsystemCommandCategories *SubsystemCommandCategoryRepository
	SubsystemCommands          *SubsystemCommandRepository
}

func New(db *sqlx.DB) *Repositories {
	return &Repositories{
		Orgs:                       NewOrgRepository(db),
		Projects:                   NewProjectRepository(db),
		ProjectOrgRelations:        NewProjectOrgRelationRepository(db),
		SubsystemCommandCategories: NewSubsystemCommandCategoryRepository(db),
		SubsystemCommands:          NewSubsystemCommandRepository(db),
	}
}

// Stats returns row counts for every table, in schema order.
func (r *Repositories) Stats(ctx context.Context) ([]domain.TableStats, error) {
	counters := []interface {
		Stats(context.Context) (domain.TableStats, error)
	}{r.Orgs, r.Projects, r.ProjectOrgRelations, r.SubsystemCommandCategories, r.SubsystemCommands}

	out := make([]domain.TableStats, 0, len(counters))
	for _, c := range counters {
		s, err := c.Stats(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
