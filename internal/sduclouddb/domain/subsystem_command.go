package domain

import "fmt"

// SubsystemCommand is a command exposed by a subsystem. Its category is an
// optional reference to subsystem_command_category.id.
type SubsystemCommand struct {
	Record
	Text                          *string `db:"subsystemcommandtext" json:"subsystem_command_text"`
	SubsystemCommandCategoryRefID *int64  `db:"subsystemcommandcategoryrefid" json:"subsystem_command_category_ref_id"`
}

func NewSubsystemCommand(text string, categoryID *int64) *SubsystemCommand {
	return &SubsystemCommand{Text: &text, SubsystemCommandCategoryRefID: categoryID}
}

// SubsystemCommandRef returns a command carrying only its identifier.
func SubsystemCommandRef(id int64) *SubsystemCommand {
	return &SubsystemCommand{Record: Record{ID: id}}
}

func (c *SubsystemCommand) Equal(other *SubsystemCommand) bool {
	if c == nil || other == nil {
		return c == other
	}
	return identical(&c.Record, &other.Record)
}

func (c *SubsystemCommand) String() string {
	if c == nil {
		return "SubsystemCommand[ <nil> ]"
	}
	return fmt.Sprintf("SubsystemCommand[ id=%d ]", c.ID)
}
