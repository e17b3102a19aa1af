package service

import (
	"context"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type orgRelationLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.Org, error)
	LoadProjectOrgRelations(ctx context.Context, o *domain.Org) error
}

type categoryCommandLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.SubsystemCommandCategory, error)
	LoadSubsystemCommands(ctx context.Context, c *domain.SubsystemCommandCategory) error
}

type relationOrgResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.ProjectOrgRelation, error)
	Org(ctx context.Context, rel *domain.ProjectOrgRelation) (*domain.Org, error)
}

// RelationService navigates the associations between entities.
type RelationService struct {
	orgs       orgRelationLoader
	categories categoryCommandLoader
	relations  relationOrgResolver
}

func NewRelationService(orgs orgRelationLoader, categories categoryCommandLoader, relations relationOrgResolver) *RelationService {
	return &RelationService{orgs: orgs, categories: categories, relations: relations}
}

// OrgRelations returns the relations referencing the org, soft-deleted ones
// included.
func (s *RelationService) OrgRelations(ctx context.Context, orgID int64) ([]domain.ProjectOrgRelation, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.orgs.LoadProjectOrgRelations(ctx, org); err != nil {
		return nil, err
	}
	if org.ProjectOrgRelations == nil {
		return []domain.ProjectOrgRelation{}, nil
	}
	return org.ProjectOrgRelations, nil
}

// CategoryCommands returns the commands filed under the category.
func (s *RelationService) CategoryCommands(ctx context.Context, categoryID int64) ([]domain.SubsystemCommand, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.categories.LoadSubsystemCommands(ctx, cat); err != nil {
		return nil, err
	}
	if cat.SubsystemCommands == nil {
		return []domain.SubsystemCommand{}, nil
	}
	return cat.SubsystemCommands, nil
}

// RelationOrg resolves the org a relation points at.
func (s *RelationService) RelationOrg(ctx context.Context, relationID int64) (*domain.Org, error) {
	rel, err := s.relations.GetByID(ctx, relationID)
	if err != nil {
		return nil, err
	}
	return s.relations.Org(ctx, rel)
}
