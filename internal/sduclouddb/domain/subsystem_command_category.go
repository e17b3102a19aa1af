package domain

import "fmt"

// SubsystemCommandCategory groups subsystem commands under a free-text label.
type SubsystemCommandCategory struct {
	Record
	Text *string `db:"subsystemcommandcategorytext" json:"subsystem_command_category_text"`

	// SubsystemCommands is the inverse side of
	// SubsystemCommand.SubsystemCommandCategoryRefID, populated on explicit load.
	SubsystemCommands []SubsystemCommand `db:"-" json:"-"`
}

func NewSubsystemCommandCategory(text string) *SubsystemCommandCategory {
	return &SubsystemCommandCategory{Text: &text}
}

// SubsystemCommandCategoryRef returns a category carrying only its identifier.
func SubsystemCommandCategoryRef(id int64) *SubsystemCommandCategory {
	return &SubsystemCommandCategory{Record: Record{ID: id}}
}

func (c *SubsystemCommandCategory) Equal(other *SubsystemCommandCategory) bool {
	if c == nil || other == nil {
		return c == other
	}
	return identical(&c.Record, &other.Record)
}

func (c *SubsystemCommandCategory) String() string {
	if c == nil {
		return "SubsystemCommandCategory[ <nil> ]"
	}
	return fmt.Sprintf("SubsystemCommandCategory[ id=%d ]", c.ID)
}
