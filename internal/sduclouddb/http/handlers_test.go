package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type fakeOrgService struct {
	rows   map[int64]*domain.Org
	nextID int64
	err    error

	lastOpts   domain.ListOptions
	lastColumn string
}

func newFakeOrgService() *fakeOrgService {
	return &fakeOrgService{rows: map[int64]*domain.Org{}, nextID: 1}
}

func (f *fakeOrgService) Create(_ context.Context, o *domain.Org) error {
	if f.err != nil {
		return f.err
	}
	o.ID = f.nextID
	f.nextID++
	f.rows[o.ID] = o
	return nil
}

func (f *fakeOrgService) Get(_ context.Context, id int64) (*domain.Org, error) {
	if o, ok := f.rows[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrgService) List(_ context.Context, opts domain.ListOptions) ([]domain.Org, error) {
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Org{}
	for i := int64(1); i < f.nextID; i++ {
		if o, ok := f.rows[i]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrgService) FindBy(_ context.Context, column, raw string, opts domain.ListOptions) ([]domain.Org, error) {
	f.lastOpts, f.lastColumn = opts, column
	if column != "orgfullname" {
		return nil, fmt.Errorf("%w: org.%s", domain.ErrUnknownColumn, column)
	}
	out := []domain.Org{}
	for _, o := range f.rows {
		if o.OrgFullName == raw {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrgService) LookupColumns() []string {
	return []string{"id", "orgfullname", "orgshortname"}
}

func (f *fakeOrgService) Update(_ context.Context, o *domain.Org) error {
	if _, ok := f.rows[o.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[o.ID] = o
	return nil
}

func (f *fakeOrgService) Delete(_ context.Context, id int64) (bool, error) {
	o, ok := f.rows[id]
	if !ok || o.MarkedForDelete.IsSet() {
		return false, nil
	}
	o.MarkedForDelete = domain.FlagOf(true)
	return true, nil
}

func (f *fakeOrgService) Restore(_ context.Context, id int64) (bool, error) {
	o, ok := f.rows[id]
	if !ok || !o.MarkedForDelete.IsSet() {
		return false, nil
	}
	o.MarkedForDelete = domain.FlagOf(false)
	return true, nil
}

func setupOrgRouter(svc *fakeOrgService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewResourceHandler[domain.Org, *domain.Org](svc, "org", "orgs", nil).Register(router.Group("/api/v1/orgs"))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestResourceHandler_CRUD(t *testing.T) {
	svc := newFakeOrgService()
	router := setupOrgRouter(svc)

	rr := doRequest(router, http.MethodPost, "/api/v1/orgs", `{"id": 55, "org_full_name": "Syddansk Universitet", "active": true}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, true, body["ok"])
	org := body["org"].(map[string]any)
	assert.EqualValues(t, 1, org["id"])
	assert.Equal(t, true, org["active"])
	assert.NotContains(t, org, "project_org_relations")

	rr = doRequest(router, http.MethodGet, "/api/v1/orgs/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, http.MethodPut, "/api/v1/orgs/1", `{"org_full_name": "SDU", "org_short_name": "sdu"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "SDU", svc.rows[1].OrgFullName)
	require.NotNil(t, svc.rows[1].OrgShortName)

	rr = doRequest(router, http.MethodDelete, "/api/v1/orgs/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, http.MethodDelete, "/api/v1/orgs/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(router, http.MethodPost, "/api/v1/orgs/1/restore", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, svc.rows[1].MarkedForDelete.IsSet())

	rr = doRequest(router, http.MethodPost, "/api/v1/orgs/1/restore", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourceHandler_List(t *testing.T) {
	svc := newFakeOrgService()
	router := setupOrgRouter(svc)
	svc.rows[1] = domain.OrgRef(1)
	svc.rows[1].OrgFullName = "DeiC"
	svc.nextID = 2

	rr := doRequest(router, http.MethodGet, "/api/v1/orgs?include_deleted=true&limit=10&offset=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ListOptions{IncludeDeleted: true, Limit: 10, Offset: 5}, svc.lastOpts)
	assert.Len(t, decode(t, rr)["orgs"], 1)

	rr = doRequest(router, http.MethodGet, "/api/v1/orgs?field=orgfullname&value=DeiC", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "orgfullname", svc.lastColumn)
	assert.Len(t, decode(t, rr)["orgs"], 1)

	rr = doRequest(router, http.MethodGet, "/api/v1/orgs?field=password&value=x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, []any{"id", "orgfullname", "orgshortname"}, body["columns"])

	for _, q := range []string{"limit=-1", "limit=5000", "offset=x", "include_deleted=maybe"} {
		rr = doRequest(router, http.MethodGet, "/api/v1/orgs?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestResourceHandler_Errors(t *testing.T) {
	svc := newFakeOrgService()
	router := setupOrgRouter(svc)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		want   int
	}{
		{"bad id", http.MethodGet, "/api/v1/orgs/abc", "", nil, http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/v1/orgs/0", "", nil, http.StatusBadRequest},
		{"missing", http.MethodGet, "/api/v1/orgs/7", "", nil, http.StatusNotFound},
		{"bad body", http.MethodPost, "/api/v1/orgs", "{", nil, http.StatusBadRequest},
		{"update missing", http.MethodPut, "/api/v1/orgs/7", `{"org_full_name":"x"}`, nil, http.StatusNotFound},
		{"unique", http.MethodPost, "/api/v1/orgs", `{"org_full_name":"x"}`, fmt.Errorf("org: %w", domain.ErrUniqueViolation), http.StatusConflict},
		{"not null", http.MethodPost, "/api/v1/orgs", `{}`, fmt.Errorf("org: %w", domain.ErrNotNullViolation), http.StatusUnprocessableEntity},
		{"internal", http.MethodPost, "/api/v1/orgs", `{"org_full_name":"x"}`, errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.err = tt.err
			rr := doRequest(router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rr.Code)
			body := decode(t, rr)
			assert.Equal(t, false, body["ok"])
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body["error"])
			}
		})
	}
}

type fakeRelationService struct{}

func (fakeRelationService) OrgRelations(_ context.Context, orgID int64) ([]domain.ProjectOrgRelation, error) {
	if orgID != 1 {
		return nil, domain.ErrNotFound
	}
	return []domain.ProjectOrgRelation{*domain.NewProjectOrgRelation(3, 1)}, nil
}

func (fakeRelationService) CategoryCommands(_ context.Context, _ int64) ([]domain.SubsystemCommand, error) {
	return []domain.SubsystemCommand{}, nil
}

func (fakeRelationService) RelationOrg(_ context.Context, relationID int64) (*domain.Org, error) {
	return domain.OrgRef(relationID * 10), nil
}

func TestRelationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewRelationHandler(fakeRelationService{}, nil).Register(router.Group("/api/v1"))

	rr := doRequest(router, http.MethodGet, "/api/v1/orgs/1/project-org-relations", "")
	require.Equal(t, http.StatusOK, rr.Code)
	rels := decode(t, rr)["project_org_relations"].([]any)
	require.Len(t, rels, 1)
	assert.EqualValues(t, 3, rels[0].(map[string]any)["project_ref_id"])

	rr = doRequest(router, http.MethodGet, "/api/v1/orgs/2/project-org-relations", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(router, http.MethodGet, "/api/v1/subsystem-command-categories/4/subsystem-commands", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, decode(t, rr)["subsystem_commands"])

	rr = doRequest(router, http.MethodGet, "/api/v1/project-org-relations/2/org", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 20, decode(t, rr)["org"].(map[string]any)["id"])
}
