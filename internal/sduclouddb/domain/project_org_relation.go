package domain

import "fmt"

// ProjectOrgRelation associates a project with exactly one Org.
//
// ProjectRefID is a bare project identifier without a foreign key. OrgRefID is
// a required reference to org.id; the store rejects rows where it is unset.
type ProjectOrgRelation struct {
	Record
	ProjectRefID int64 `db:"projectrefid" json:"project_ref_id"`
	OrgRefID     int64 `db:"orgrefid" json:"org_ref_id"`
	Active       Flag  `db:"active" json:"active"`
}

func NewProjectOrgRelation(projectRefID, orgRefID int64) *ProjectOrgRelation {
	return &ProjectOrgRelation{ProjectRefID: projectRefID, OrgRefID: orgRefID}
}

// ProjectOrgRelationRef returns a relation carrying only its identifier.
func ProjectOrgRelationRef(id int64) *ProjectOrgRelation {
	return &ProjectOrgRelation{Record: Record{ID: id}}
}

func (r *ProjectOrgRelation) Equal(other *ProjectOrgRelation) bool {
	if r == nil || other == nil {
		return r == other
	}
	return identical(&r.Record, &other.Record)
}

func (r *ProjectOrgRelation) String() string {
	if r == nil {
		return "ProjectOrgRelation[ <nil> ]"
	}
	return fmt.Sprintf("ProjectOrgRelation[ id=%d ]", r.ID)
}
