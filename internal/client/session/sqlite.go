package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/securenote/internal/client/models"
	"github.com/dmitrijs2005/securenote/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/securenote/internal/dbx"
)

const (
	namespace = "session"
	nameToken = "token"
	nameUser  = "user"
)

// SQLitePersister keeps the session under the "session." keys of the
// metadata table.
type SQLitePersister struct {
	db *sql.DB
}

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db}
}

// Save writes token and user in one transaction.
func (p *SQLitePersister) Save(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ns := metadata.NewNamespace(tx, namespace)
		if err := ns.Put(ctx, nameToken, []byte(token)); err != nil {
			return err
		}
		return ns.Put(ctx, nameUser, raw)
	})
}

// Load returns "" and nil when nothing is stored. A stored token without a
// user yields (token, nil, nil).
func (p *SQLitePersister) Load(ctx context.Context) (string, *models.User, error) {
	entries, err := metadata.NewNamespace(p.db, namespace).Entries(ctx)
	if err != nil {
		return "", nil, err
	}

	token := string(entries[nameToken])
	if token == "" {
		return "", nil, nil
	}
	raw := entries[nameUser]
	if len(raw) == 0 {
		return token, nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// An unreadable profile is refetched from the server.
		return token, nil, nil
	}
	return token, &user, nil
}

// Delete drops the whole session namespace, including keys written by older
// builds.
func (p *SQLitePersister) Delete(ctx context.Context) error {
	_, err := metadata.NewNamespace(p.db, namespace).Drop(ctx)
	return err
}
