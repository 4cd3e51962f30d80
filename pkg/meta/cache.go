package meta

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Column describes one column of a registered table
type Column struct {
	ID      int64  `json:"id"`
	TableID int64  `json:"table_id"`
	DB      string `json:"db"`
	Table   string `json:"table"`
	Name    string `json:"name"`
}

// CatalogSource supplies column definitions for a table. Implementations
// back the cache with whatever actually stores the catalog (see
// PebbleCatalog).
type CatalogSource interface {
	Columns(db, table string) ([]Column, error)
}

// Errors
var (
	ErrTableNotFound  = &MetaError{"table not found"}
	ErrColumnNotFound = &MetaError{"column not found"}
)

// MetaError represents a metadata catalog error
type MetaError struct {
	Message string
}

func (e *MetaError) Error() string {
	return e.Message
}

// Cache maps table and column names to their numeric identifiers. Lookups
// are case-insensitive and served from memory once Init has pulled a
// table's definition from the catalog source.
type Cache struct {
	source    CatalogSource
	mutex     sync.RWMutex
	columns   map[string][]Column // "db.table" -> columns
	tableIDs  map[string]int64    // "db.table" -> table id
	columnIDs map[string]int64    // "db.table.column" -> column id
}

// NewCache creates an empty cache backed by source.
func NewCache(source CatalogSource) *Cache {
	return &Cache{
		source:    source,
		columns:   make(map[string][]Column),
		tableIDs:  make(map[string]int64),
		columnIDs: make(map[string]int64),
	}
}

// Init loads the definition of table ("table" or "db.table") from the
// catalog source into the cache. Loading an unknown table is not an
// error; lookups for it simply keep failing.
func (c *Cache) Init(table string) error {
	db, tbl, err := ParseDBTable(table)
	if err != nil {
		return err
	}

	cols, err := c.source.Columns(db, tbl)
	if err != nil {
		return fmt.Errorf("failed to load columns for %s.%s: %w", db, tbl, err)
	}
	if len(cols) == 0 {
		return nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := strings.ToLower(db + "." + tbl)
	c.columns[key] = cols
	c.tableIDs[key] = cols[0].TableID
	for _, col := range cols {
		c.columnIDs[strings.ToLower(col.DB+"."+col.Table+"."+col.Name)] = col.ID
	}
	return nil
}

// Release drops everything from the cache.
func (c *Cache) Release() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.columns = make(map[string][]Column)
	c.tableIDs = make(map[string]int64)
	c.columnIDs = make(map[string]int64)
}

// ColumnNames returns the column names of a cached table, in the order
// the catalog source supplied them. Unknown tables yield an empty slice.
func (c *Cache) ColumnNames(table string) []string {
	db, tbl, err := ParseDBTable(table)
	if err != nil {
		return nil
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	cols := c.columns[strings.ToLower(db+"."+tbl)]
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name)
	}
	return names
}

// TableID returns the numeric identifier of a cached table.
func (c *Cache) TableID(table string) (int64, error) {
	db, tbl, err := ParseDBTable(table)
	if err != nil {
		return 0, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	id, ok := c.tableIDs[strings.ToLower(db+"."+tbl)]
	if !ok {
		return 0, ErrTableNotFound
	}
	return id, nil
}

// ColumnID returns the numeric identifier of a column given its
// fully-qualified "db.table.column" name.
func (c *Cache) ColumnID(qualified string) (int64, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	id, ok := c.columnIDs[strings.ToLower(qualified)]
	if !ok {
		return 0, ErrColumnNotFound
	}
	return id, nil
}

// Tables returns the cached table names, sorted.
func (c *Cache) Tables() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	tables := make([]string, 0, len(c.tableIDs))
	for name := range c.tableIDs {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables
}
