package service

import (
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/events"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/repository"
)

type (
	OrgService                      = EntityService[domain.Org, *domain.Org]
	ProjectService                  = EntityService[domain.Project, *domain.Project]
	ProjectOrgRelationService       = EntityService[domain.ProjectOrgRelation, *domain.ProjectOrgRelation]
	SubsystemCommandCategoryService = EntityService[domain.SubsystemCommandCategory, *domain.SubsystemCommandCategory]
	SubsystemCommandService         = EntityService[domain.SubsystemCommand, *domain.SubsystemCommand]
)

// Services bundles one service per entity plus relation navigation.
type Services struct {
	Orgs                       *OrgService
	Projects                   *ProjectService
	ProjectOrgRelations        *ProjectOrgRelationService
	SubsystemCommandCategories *SubsystemCommandCategoryService
	SubsystemCommands          *SubsystemCommandService
	Relations                  *RelationService
}

func New(repos *repository.Repositories, publisher events.Publisher, logger *zap.Logger) *Services {
	return &Services{
		Orgs:                       NewEntityService[domain.Org, *domain.Org](repos.Orgs, publisher, logger),
		Projects:                   NewEntityService[domain.Project, *domain.Project](repos.Projects, publisher, logger),
		ProjectOrgRelations:        NewEntityService[domain.ProjectOrgRelation, *domain.ProjectOrgRelation](repos.ProjectOrgRelations, publisher, logger),
		SubsystemCommandCategories: NewEntityService[domain.SubsystemCommandCategory, *domain.SubsystemCommandCategory](repos.SubsystemCommandCategories, publisher, logger),
		SubsystemCommands:          NewEntityService[domain.SubsystemCommand, *domain.SubsystemCommand](repos.SubsystemCommands, publisher, logger),
		Relations:                  NewRelationService(repos.Orgs, repos.SubsystemCommandCategories, repos.ProjectOrgRelations),
	}
}
