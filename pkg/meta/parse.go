package meta

import (
	"fmt"
	"strings"
)

// DefaultDB is assumed when a table reference carries no database part.
const DefaultDB = "default"

// ParseDBTable splits a table reference into its database and table
// parts. "orders" resolves against DefaultDB; "shop.orders" is explicit.
func ParseDBTable(s string) (db, table string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fmt.Errorf("empty table reference")
	}

	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		return DefaultDB, parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("malformed table reference: %q", s)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("malformed table reference: %q", s)
	}
}

// ParseColumnRef splits a "db.table.column" reference; the database part
// is optional and resolves against DefaultDB.
func ParseColumnRef(s string) (db, table, column string, err error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	switch len(parts) {
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", "", fmt.Errorf("malformed column reference: %q", s)
		}
		return DefaultDB, parts[0], parts[1], nil
	case 3:
		if parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return "", "", "", fmt.Errorf("malformed column reference: %q", s)
		}
		return parts[0], parts[1], parts[2], nil
	default:
		return "", "", "", fmt.Errorf("malformed column reference: %q", s)
	}
}
