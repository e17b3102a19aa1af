package domain

// ListOptions controls list and lookup queries.
type ListOptions struct {
	// IncludeDeleted also returns rows whose markedfordelete flag is set.
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// TableStats summarises one table for reporting.
type TableStats struct {
	Table           string `json:"table" db:"-"`
	Total           int64  `json:"total" db:"total"`
	MarkedForDelete int64  `json:"marked_for_delete" db:"marked"`
}
