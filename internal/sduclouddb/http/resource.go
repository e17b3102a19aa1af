package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

const maxLimit = 1000

type entityService[T any] interface {
	Create(ctx context.Context, e *T) error
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, opts domain.ListOptions) ([]T, error)
	FindBy(ctx context.Context, column, raw string, opts domain.ListOptions) ([]T, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	LookupColumns() []string
}

// ResourceHandler serves the CRUD routes of one entity type.
type ResourceHandler[T any, P interface {
	*T
	domain.Entity
}] struct {
	svc    entityService[T]
	one    string
	many   string
	logger *zap.Logger
}

// NewResourceHandler creates a handler; one and many are the response keys
// for a single row and a list.
func NewResourceHandler[T any, P interface {
	*T
	domain.Entity
}](svc entityService[T], one, many string, logger *zap.Logger) *ResourceHandler[T, P] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T, P]{svc: svc, one: one, many: many, logger: logger}
}

// Register attaches the resource routes to the given router group.
func (h *ResourceHandler[T, P]) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.POST("/:id/restore", h.restore)
}

func (h *ResourceHandler[T, P]) create(c *gin.Context) {
	e := new(T)
	if err := c.ShouldBindJSON(e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	P(e).Identity().ID = 0

	if err := h.svc.Create(c.Request.Context(), e); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, h.one: e})
}

func (h *ResourceHandler[T, P]) list(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	var (
		items []T
		err   error
	)
	if field := c.Query("field"); field != "" {
		items, err = h.svc.FindBy(c.Request.Context(), field, c.Query("value"), opts)
		if errors.Is(err, domain.ErrUnknownColumn) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error(), "columns": h.svc.LookupColumns()})
			return
		}
	} else {
		items, err = h.svc.List(c.Request.Context(), opts)
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, h.many: items})
}

func (h *ResourceHandler[T, P]) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, h.one: e})
}

func (h *ResourceHandler[T, P]) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e := new(T)
	if err := c.ShouldBindJSON(e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	P(e).Identity().ID = id

	if err := h.svc.Update(c.Request.Context(), e); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, h.one: e})
}

func (h *ResourceHandler[T, P]) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": h.one + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ResourceHandler[T, P]) restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	restored, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if !restored {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": h.one + " not found or not deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}

func listOptions(c *gin.Context) (domain.ListOptions, bool) {
	var opts domain.ListOptions

	if v := c.Query("include_deleted"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid include_deleted"})
			return opts, false
		}
		opts.IncludeDeleted = b
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid limit"})
			return opts, false
		}
		opts.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid offset"})
			return opts, false
		}
		opts.Offset = n
	}
	return opts, true
}
