// Package sqlite persists documents in a single sqlite table, one row per
// document path with a JSON body.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fintrack/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Push(ctx context.Context, p string, doc store.Document) (string, error) {
	key := store.NewKey()
	if err := s.write(ctx, p+"/"+key, doc); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) List(ctx context.Context, p string) (map[string]store.Document, error) {
	prefix := p + "/"
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, body FROM documents WHERE path LIKE ?`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("list documents under %s: %w", p, err)
	}
	defer rows.Close()

	var out map[string]store.Document
	for rows.Next() {
		var docPath, body string
		if err := rows.Scan(&docPath, &body); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		key := strings.TrimPrefix(docPath, prefix)
		if strings.Contains(key, "/") {
			// Deeper nesting does not belong to this subtree's children.
			continue
		}
		doc, err := decodeBody(docPath, body)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = make(map[string]store.Document)
		}
		out[key] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents under %s: %w", p, err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, p string) (store.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE path = ?`, p).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", p, err)
	}
	return decodeBody(p, body)
}

func (s *Store) Set(ctx context.Context, p string, doc store.Document) error {
	if len(doc) == 0 {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM documents WHERE path = ?`, p); err != nil {
			return fmt.Errorf("delete document %s: %w", p, err)
		}
		return nil
	}
	return s.write(ctx, p, doc)
}

func (s *Store) Update(ctx context.Context, p string, fields store.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update tx: %w", err)
	}
	defer tx.Rollback()

	doc := store.Document{}
	var body string
	err = tx.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE path = ?`, p).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Merge into an empty document, matching the store convention of
		// update-creates.
	case err != nil:
		return fmt.Errorf("read document %s: %w", p, err)
	default:
		if doc, err = decodeBody(p, body); err != nil {
			return err
		}
	}

	for k, v := range fields {
		doc[k] = v
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", p, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, body) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET body = excluded.body`,
		p, string(encoded)); err != nil {
		return fmt.Errorf("write document %s: %w", p, err)
	}
	return tx.Commit()
}

func (s *Store) write(ctx context.Context, docPath string, doc store.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", docPath, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (path, body) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET body = excluded.body`,
		docPath, string(body)); err != nil {
		return fmt.Errorf("write document %s: %w", docPath, err)
	}
	return nil
}

func decodeBody(docPath, body string) (store.Document, error) {
	var doc store.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", docPath, err)
	}
	return doc, nil
}
