package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type relationService interface {
	OrgRelations(ctx context.Context, orgID int64) ([]domain.ProjectOrgRelation, error)
	CategoryCommands(ctx context.Context, categoryID int64) ([]domain.SubsystemCommand, error)
	RelationOrg(ctx context.Context, relationID int64) (*domain.Org, error)
}

// RelationHandler serves the association routes.
type RelationHandler struct {
	svc    relationService
	logger *zap.Logger
}

func NewRelationHandler(svc relationService, logger *zap.Logger) *RelationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelationHandler{svc: svc, logger: logger}
}

// Register attaches the association routes to the API group.
func (h *RelationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/orgs/:id/project-org-relations", h.orgRelations)
	rg.GET("/subsystem-command-categories/:id/subsystem-commands", h.categoryCommands)
	rg.GET("/project-org-relations/:id/org", h.relationOrg)
}

func (h *RelationHandler) orgRelations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rels, err := h.svc.OrgRelations(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project_org_relations": rels})
}

func (h *RelationHandler) categoryCommands(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cmds, err := h.svc.CategoryCommands(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "subsystem_commands": cmds})
}

func (h *RelationHandler) relationOrg(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	org, err := h.svc.RelationOrg(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "org": org})
}
