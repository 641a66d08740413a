// Package metadata is the key/value table of the client's local SQLite
// database. Keys are dotted, and callers work on one namespace at a time:
// the session store owns everything under "session.".
package metadata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/securenote/internal/dbx"
)

// Namespace reads and writes the keys that start with "<name>.".
type Namespace struct {
	db     dbx.DBTX
	prefix string
}

// NewNamespace binds name to a *sql.DB or, inside dbx.WithTx, to the
// transaction handle.
func NewNamespace(db dbx.DBTX, name string) *Namespace {
	return &Namespace{db: db, prefix: name + "."}
}

func (n *Namespace) key(name string) string {
	return n.prefix + name
}

// Put stores value under name, replacing any previous value.
func (n *Namespace) Put(ctx context.Context, name string, value []byte) error {
	_, err := n.db.ExecContext(ctx,
		`INSERT INTO metadata (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		n.key(name), value)
	if err != nil {
		return fmt.Errorf("put %s: %w", n.key(name), err)
	}
	return nil
}

// Entries returns every value in the namespace keyed by its short name. An
// empty namespace yields an empty map.
func (n *Namespace) Entries(ctx context.Context) (map[string][]byte, error) {
	// substr instead of LIKE: names may contain '_' and '%'.
	rows, err := n.db.QueryContext(ctx,
		`SELECT key, value FROM metadata WHERE substr(key, 1, ?) = ?`,
		len(n.prefix), n.prefix)
	if err != nil {
		return nil, fmt.Errorf("read %s*: %w", n.prefix, err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var k string
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan %s*: %w", n.prefix, err)
		}
		out[k[len(n.prefix):]] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s*: %w", n.prefix, err)
	}
	return out, nil
}

// Drop deletes the whole namespace and reports how many keys went with it.
func (n *Namespace) Drop(ctx context.Context) (int64, error) {
	res, err := n.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE substr(key, 1, ?) = ?`,
		len(n.prefix), n.prefix)
	if err != nil {
		return 0, fmt.Errorf("drop %s*: %w", n.prefix, err)
	}
	return res.RowsAffected()
}
