package domain

import "fmt"

// Org is a row of the org table.
type Org struct {
	Record
	OrgFullName  string  `db:"orgfullname" json:"org_full_name"`
	OrgShortName *string `db:"orgshortname" json:"org_short_name,omitempty"`
	Active       Flag    `db:"active" json:"active"`

	// ProjectOrgRelations is the inverse side of ProjectOrgRelation.OrgRefID.
	// It is only populated by an explicit load and never persisted.
	ProjectOrgRelations []ProjectOrgRelation `db:"-" json:"-"`
}

func NewOrg(fullName string) *Org {
	return &Org{OrgFullName: fullName}
}

// OrgRef returns an Org carrying only its identifier.
func OrgRef(id int64) *Org {
	return &Org{Record: Record{ID: id}}
}

func (o *Org) Equal(other *Org) bool {
	if o == nil || other == nil {
		return o == other
	}
	return identical(&o.Record, &other.Record)
}

func (o *Org) String() string {
	if o == nil {
		return "Org[ <nil> ]"
	}
	return fmt.Sprintf("Org[ id=%d ]", o.ID)
}
