package domain

import "fmt"

// Project is a row of the project table.
type Project struct {
	Record
	ProjectName      string  `db:"projectname" json:"project_name"`
	ProjectShortName *string `db:"projectshortname" json:"project_short_name,omitempty"`
	Active           Flag    `db:"active" json:"active"`
}

func NewProject(name string) *Project {
	return &Project{ProjectName: name}
}

// ProjectRef returns a Project carrying only its identifier.
func ProjectRef(id int64) *Project {
	return &Project{Record: Record{ID: id}}
}

func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return identical(&p.Record, &other.Record)
}

func (p *Project) String() string {
	if p == nil {
		return "Project[ <nil> ]"
	}
	return fmt.Sprintf("Project[ id=%d ]", p.ID)
}
