package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/service"
)

// RegisterAll attaches every entity resource and the association routes.
func RegisterAll(api *gin.RouterGroup, svcs *service.Services, logger *zap.Logger) {
	NewResourceHandler[domain.Org, *domain.Org](svcs.Orgs, "org", "orgs", logger).
		Register(api.Group("/orgs"))
	NewResourceHandler[domain.Project, *domain.Project](svcs.Projects, "project", "projects", logger).
		Register(api.Group("/projects"))
	NewResourceHandler[domain.ProjectOrgRelation, *domain.ProjectOrgRelation](svcs.ProjectOrgRelations, "project_org_relation", "project_org_relations", logger).
		Register(api.Group("/project-org-relations"))
	NewResourceHandler[domain.SubsystemCommandCategory, *domain.SubsystemCommandCategory](svcs.SubsystemCommandCategories, "subsystem_command_category", "subsystem_command_categories", logger).
		Register(api.Group("/subsystem-command-categories"))
	NewResourceHandler[domain.SubsystemCommand, *domain.SubsystemCommand](svcs.SubsystemCommands, "subsystem_command", "subsystem_commands", logger).
		Register(api.Group("/subsystem-commands"))

	NewRelationHandler(svcs.Relations, logger).Register(api)
}
