package domain

import "time"

// Record holds the columns every table shares: the store-generated surrogate
// key, the soft-delete flag and the audit timestamps.
type Record struct {
	ID              int64     `db:"id" json:"id"`
	MarkedForDelete Flag      `db:"markedfordelete" json:"marked_for_delete"`
	ModifiedTs      time.Time `db:"modified_ts" json:"modified_ts"`
	CreatedTs       time.Time `db:"created_ts" json:"created_ts"`
}

// Entity is implemented by every mapped type through its embedded Record.
type Entity interface {
	Identity() *Record
	String() string
}

func (r *Record) Identity() *Record { return r }

// HasID reports whether the store has assigned an identifier.
func (r *Record) HasID() bool { return r.ID != 0 }

// Key is the hash key of the entity; zero while the identifier is unset.
func (r *Record) Key() int64 { return r.ID }

// identical implements identifier equality. Records without an identifier
// only equal themselves.
func identical(a, b *Record) bool {
	if a == b {
		return true
	}
	return a.ID != 0 && a.ID == b.ID
}
