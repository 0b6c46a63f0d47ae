package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// LoadSQL reads the question catalog from the questions table into an
// immutable in-memory store. The table is read once; the catalog never
// changes for the lifetime of the process.
//
// An empty table is seeded with the built-in aviation catalog so a fresh
// sqlite file is immediately servable.
func LoadSQL(ctx context.Context, db *sql.DB) (Store, error) {
	questions, err := readAll(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		if err := seed(ctx, db, defaultQuestions); err != nil {
			return nil, fmt.Errorf("catalog: seed: %w", err)
		}
		questions = append([]Question(nil), defaultQuestions...)
	}
	return NewStaticStore(questions)
}

func readAll(ctx context.Context, db *sql.DB) ([]Question, error) {
	rows, err := db.QueryContext(ctx, `SELECT doc FROM questions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var q Question
		if err := json.Unmarshal([]byte(doc), &q); err != nil {
			return nil, fmt.Errorf("catalog: bad question row: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func seed(ctx context.Context, db *sql.DB, questions []Question) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, q := range questions {
		doc, err := json.Marshal(q)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, position, doc) VALUES ($1,$2,$3)`,
			q.ID, i, string(doc)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
