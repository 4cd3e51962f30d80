package meta

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"
)

// Key scheme:
//
//	seq                      -> uint64 identifier counter
//	tbl:<db>:<table>         -> uint64 table id
//	col:<db>:<table>:<name>  -> JSON-encoded Column
const (
	seqKey      = "seq"
	tablePrefix = "tbl:"
	colPrefix   = "col:"
)

// PebbleCatalog is a CatalogSource persisted in a pebble database.
// Identifiers are assigned from a monotonic sequence so they stay stable
// across restarts.
type PebbleCatalog struct {
	db *pebble.DB
}

// OpenPebbleCatalog opens (or creates) the catalog at path.
func OpenPebbleCatalog(path string) (*PebbleCatalog, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return &PebbleCatalog{db: db}, nil
}

// RegisterTable stores a table definition, assigning fresh identifiers to
// the table and each column, and returns the table id. Re-registering a
// table replaces its columns under a new table id.
func (c *PebbleCatalog) RegisterTable(db, table string, columns []string) (int64, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("table %s.%s has no columns", db, table)
	}
	db = strings.ToLower(db)
	table = strings.ToLower(table)

	tableID, err := c.nextID()
	if err != nil {
		return 0, err
	}

	batch := c.db.NewBatch()
	defer batch.Close()

	// Drop any previous definition so renamed columns don't linger.
	colLower := []byte(colPrefix + db + ":" + table + ":")
	colUpper := append(append([]byte{}, colLower...), 0xff)
	if err := batch.DeleteRange(colLower, colUpper, nil); err != nil {
		return 0, err
	}

	var idBytes [8]byte
	binary.LittleEndian.PutUint64(idBytes[:], uint64(tableID))
	if err := batch.Set([]byte(tablePrefix+db+":"+table), idBytes[:], nil); err != nil {
		return 0, err
	}

	for _, name := range columns {
		colID, err := c.nextID()
		if err != nil {
			return 0, err
		}
		col := Column{
			ID:      colID,
			TableID: tableID,
			DB:      db,
			Table:   table,
			Name:    strings.ToLower(name),
		}
		data, err := json.Marshal(col)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal column: %w", err)
		}
		if err := batch.Set([]byte(colPrefix+db+":"+table+":"+col.Name), data, nil); err != nil {
			return 0, err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, fmt.Errorf("failed to commit table registration: %w", err)
	}
	return tableID, nil
}

// Columns returns the stored definition of db.table in key order. An
// unregistered table yields an empty slice, not an error.
func (c *PebbleCatalog) Columns(db, table string) ([]Column, error) {
	prefix := []byte(colPrefix + strings.ToLower(db) + ":" + strings.ToLower(table) + ":")
	upper := append(append([]byte{}, prefix...), 0xff)

	iter, err := c.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upper,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}
	defer iter.Close()

	var cols []Column
	for iter.First(); iter.Valid(); iter.Next() {
		var col Column
		if err := json.Unmarshal(iter.Value(), &col); err != nil {
			return nil, fmt.Errorf("corrupt column entry %q: %w", iter.Key(), err)
		}
		cols = append(cols, col)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return cols, nil
}

// TableID returns the stored identifier of db.table.
func (c *PebbleCatalog) TableID(db, table string) (int64, error) {
	data, closer, err := c.db.Get([]byte(tablePrefix + strings.ToLower(db) + ":" + strings.ToLower(table)))
	if err == pebble.ErrNotFound {
		return 0, ErrTableNotFound
	}
	if err != nil {
		return 0, err
	}
	defer closer.Close()
	return int64(binary.LittleEndian.Uint64(data)), nil
}

// Close closes the underlying pebble database.
func (c *PebbleCatalog) Close() error {
	return c.db.Close()
}

// nextID advances the identifier sequence and returns the new value.
func (c *PebbleCatalog) nextID() (int64, error) {
	var next uint64 = 1

	data, closer, err := c.db.Get([]byte(seqKey))
	switch err {
	case nil:
		next = binary.LittleEndian.Uint64(data) + 1
		closer.Close()
	case pebble.ErrNotFound:
	default:
		return 0, err
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], next)
	if err := c.db.Set([]byte(seqKey), buf[:], pebble.Sync); err != nil {
		return 0, fmt.Errorf("failed to advance id sequence: %w", err)
	}
	return int64(next), nil
}
