// Package records keeps the top-10 record table: an ordered list of
// (name, score) pairs, highest score first.
package records

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Limit is the number of entries a table keeps.
const Limit = 10

// ErrMalformed is returned by stores when persisted data cannot be parsed.
var ErrMalformed = errors.New("records: malformed record table")

// Record is a single row of the table.
type Record struct {
	Name  string
	Score int
}

// Store persists a record table.
type Store interface {
	Load() ([]Record, error)
	Save(entries []Record) error
}

// DefaultEntries returns the built-in table used when nothing can be loaded.
func DefaultEntries() []Record {
	return []Record{
		{Name: "Nick", Score: 5000},
		{Name: "John", Score: 4500},
		{Name: "Matthew", Score: 4000},
		{Name: "Mary", Score: 3500},
		{Name: "Mike", Score: 3250},
		{Name: "Alice", Score: 2500},
		{Name: "Jay", Score: 2300},
		{Name: "Anny", Score: 2100},
		{Name: "Clementine", Score: 1950},
		{Name: "WeakPlayer", Score: 100},
	}
}

// Table is an in-memory record table bound to an optional store.
type Table struct {
	entries []Record
	store   Store
	logger  *log.Logger
}

// New creates a table from the given entries. store and logger may be nil.
func New(entries []Record, store Store, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.Default()
	}
	t := &Table{
		entries: slices.Clone(entries),
		store:   store,
		logger:  logger,
	}
	t.normalize()
	return t
}

// Load reads the table from store, falling back to DefaultEntries when the
// store is nil or fails. Failures are logged, never returned.
func Load(store Store, logger *log.Logger) *Table {
	t := New(nil, store, logger)

	if store == nil {
		t.entries = DefaultEntries()
		return t
	}

	entries, err := store.Load()
	if err != nil {
		t.logger.Error("can not read record table", "error", err)
		entries = DefaultEntries()
	}
	t.entries = entries
	t.normalize()
	return t
}

// Entries returns a copy of the table, highest score first.
func (t *Table) Entries() []Record {
	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Insert adds a result, re-sorts by score descending and keeps the top Limit.
// Equal scores keep their insertion order, so a new result ranks below an
// existing one with the same score.
func (t *Table) Insert(name string, score int) {
	t.entries = append(t.entries, Record{Name: name, Score: score})
	t.normalize()
}

// Qualifies reports whether score would make it into the table.
func (t *Table) Qualifies(score int) bool {
	if len(t.entries) < Limit {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Save writes the table to its store. Write failures are logged and dropped;
// a table without a store is not persisted.
func (t *Table) Save() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.entries); err != nil {
		t.logger.Error("record table couldn't be saved", "error", err)
	}
}

// normalize sorts entries by score descending and truncates to Limit.
func (t *Table) normalize() {
	slices.SortStableFunc(t.entries, func(a, b Record) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(t.entries) > Limit {
		t.entries = t.entries[:Limit]
	}
}

var (
	sharedOnce  sync.Once
	sharedTable *Table
)

// Shared returns the process-wide table, loading it from store on the first
// call. Later calls return the same table and ignore their arguments.
func Shared(store Store, logger *log.Logger) *Table {
	sharedOnce.Do(func() {
		sharedTable = Load(store, logger)
	})
	return sharedTable
}
