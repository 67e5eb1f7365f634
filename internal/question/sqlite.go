package question

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// BankSchema is the layout a SQLite question bank must follow. Rows are
// ordered by position; option ids are scoped to their question.
const BankSchema = `
CREATE TABLE IF NOT EXISTS questions (
  id INTEGER PRIMARY KEY,
  position INTEGER NOT NULL,
  prompt TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS options (
  question_id INTEGER NOT NULL REFERENCES questions(id),
  position INTEGER NOT NULL,
  text TEXT NOT NULL,
  correct INTEGER NOT NULL DEFAULT 0
);
`

// LoadSQLite reads a question bank from the SQLite file at path. The file
// is opened read-only and closed before returning.
func LoadSQLite(ctx context.Context, path string) (*Set, error) {
	// Opening a missing file read-only gives an opaque driver error.
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()

	qs, err := readBank(ctx, db)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &Set{Source: path, Questions: qs}, nil
}

func readBank(ctx context.Context, db *sql.DB) ([]Question, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, prompt FROM questions ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	var ids []int64
	qs := []Question{}
	for rows.Next() {
		var id int64
		var q Question
		if err := rows.Scan(&id, &q.Prompt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan question: %w", err)
		}
		ids = append(ids, id)
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	rows.Close()

	for i, id := range ids {
		opts, err := readOptions(ctx, db, id)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", id, err)
		}
		qs[i].Options = opts
	}
	return qs, nil
}

func readOptions(ctx context.Context, db *sql.DB, questionID int64) ([]Option, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT text, correct FROM options WHERE question_id = ? ORDER BY position`,
		questionID)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	var opts []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Text, &o.Correct); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
