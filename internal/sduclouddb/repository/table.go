package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
)

type columnKind int

const (
	kindInt columnKind = iota
	kindText
	kindFlag
	kindTime
)

// table maps one entity onto its relation. columns is the select list; every
// column is also a valid lookup column.
type table struct {
	name    string
	columns []string
	kinds   map[string]columnKind
}

func newTable(name string, columns map[string]columnKind, order ...string) table {
	return table{name: name, columns: order, kinds: columns}
}

// recordColumns are shared by every table.
var recordColumns = map[string]columnKind{
	"id":              kindInt,
	"markedfordelete": kindFlag,
	"modified_ts":     kindTime,
	"created_ts":      kindTime,
}

func withRecord(extra map[string]columnKind) map[string]columnKind {
	out := make(map[string]columnKind, len(recordColumns)+len(extra))
	for k, v := range recordColumns {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var (
	orgTable = newTable("org",
		withRecord(map[string]columnKind{
			"orgfullname":  kindText,
			"orgshortname": kindText,
			"active":       kindFlag,
		}),
		"id", "orgfullname", "orgshortname", "active", "markedfordelete", "modified_ts", "created_ts",
	)

	projectTable = newTable("project",
		withRecord(map[string]columnKind{
			"projectname":      kindText,
			"projectshortname": kindText,
			"active":           kindFlag,
		}),
		"id", "projectname", "projectshortname", "active", "markedfordelete", "modified_ts", "created_ts",
	)

	projectOrgRelationTable = newTable("project_org_relation",
		withRecord(map[string]columnKind{
			"projectrefid": kindInt,
			"orgrefid":     kindInt,
			"active":       kindFlag,
		}),
		"id", "projectrefid", "orgrefid", "active", "markedfordelete", "modified_ts", "created_ts",
	)

	subsystemCommandCategoryTable = newTable("subsystem_command_category",
		withRecord(map[string]columnKind{
			"subsystemcommandcategorytext": kindText,
		}),
		"id", "subsystemcommandcategorytext", "markedfordelete", "modified_ts", "created_ts",
	)

	subsystemCommandTable = newTable("subsystem_command",
		withRecord(map[string]columnKind{
			"subsystemcommandtext":          kindText,
			"subsystemcommandcategoryrefid": kindInt,
		}),
		"id", "subsystemcommandtext", "subsystemcommandcategoryrefid", "markedfordelete", "modified_ts", "created_ts",
	)
)

func (t table) selectList() string {
	return strings.Join(t.columns, ", ")
}

// LookupColumns returns the columns accepted by FindBy.
func (t table) LookupColumns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t table) kind(column string) (columnKind, error) {
	k, ok := t.kinds[column]
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", domain.ErrUnknownColumn, t.name, column)
	}
	return k, nil
}

// ParseLookupValue converts a textual lookup value into the Go type of column.
// Flags accept true/false or 0/1; timestamps must be RFC 3339.
func (t table) ParseLookupValue(column, raw string) (any, error) {
	k, err := t.kind(column)
	if err != nil {
		return nil, err
	}

	switch k {
	case kindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an integer", domain.ErrInvalidLookupValue, column)
		}
		return n, nil
	case kindFlag:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1", "true":
			return domain.FlagOf(true), nil
		case "0", "false":
			return domain.FlagOf(false), nil
		}
		return nil, fmt.Errorf("%w: %s expects true/false or 1/0", domain.ErrInvalidLookupValue, column)
	case kindTime:
		ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an RFC 3339 timestamp", domain.ErrInvalidLookupValue, column)
		}
		return ts, nil
	default:
		return raw, nil
	}
}
