package dictstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// SQLiteSource reads dictionary rows from a local sqlite file, for
// deployments that ship the dictionary alongside the service instead
// of querying the hosted database.
type SQLiteSource struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS dictionary_words (
	id TEXT PRIMARY KEY,
	word TEXT NOT NULL,
	word_unicode TEXT,
	word_zawgyi TEXT,
	frequency INTEGER DEFAULT 0,
	is_valid INTEGER DEFAULT 1,
	alternatives TEXT
);
CREATE INDEX IF NOT EXISTS idx_dictionary_words_word ON dictionary_words(word);

CREATE TABLE IF NOT EXISTS common_mistakes (
	incorrect TEXT PRIMARY KEY,
	correct TEXT NOT NULL
);
`

// OpenSQLite opens (and if needed initializes) a dictionary database
// at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init dictionary schema: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Close() error { return s.db.Close() }

func (s *SQLiteSource) ValidWords(ctx context.Context) ([]document.DictionaryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, word, COALESCE(word_unicode, ''), COALESCE(word_zawgyi, ''),
		       frequency, is_valid, COALESCE(alternatives, '')
		FROM dictionary_words WHERE is_valid = 1`)
	if err != nil {
		return nil, fmt.Errorf("query dictionary words: %w", err)
	}
	defer rows.Close()

	var entries []document.DictionaryEntry
	for rows.Next() {
		var (
			e       document.DictionaryEntry
			valid   int
			altJSON string
		)
		if err := rows.Scan(&e.ID, &e.Word, &e.WordUnicode, &e.WordZawgyi,
			&e.Frequency, &valid, &altJSON); err != nil {
			return nil, fmt.Errorf("scan dictionary row: %w", err)
		}
		e.IsValid = valid != 0
		if altJSON != "" {
			// Alternatives are stored as a JSON array; a malformed cell
			// loses its alternatives, not the row.
			_ = json.Unmarshal([]byte(altJSON), &e.Alternatives)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteSource) Mistakes(ctx context.Context) ([]document.MistakePair, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT incorrect, correct FROM common_mistakes`)
	if err != nil {
		return nil, fmt.Errorf("query common mistakes: %w", err)
	}
	defer rows.Close()

	var pairs []document.MistakePair
	for rows.Next() {
		var p document.MistakePair
		if err := rows.Scan(&p.Incorrect, &p.Correct); err != nil {
			return nil, fmt.Errorf("scan mistake row: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

// AddWord inserts or replaces a dictionary row, for dictionary
// maintenance tooling.
func (s *SQLiteSource) AddWord(ctx context.Context, e document.DictionaryEntry) error {
	altJSON, err := json.Marshal(e.Alternatives)
	if err != nil {
		return fmt.Errorf("marshal alternatives: %w", err)
	}
	valid := 0
	if e.IsValid {
		valid = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO dictionary_words
			(id, word, word_unicode, word_zawgyi, frequency, is_valid, alternatives)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Word, e.WordUnicode, e.WordZawgyi, e.Frequency, valid, string(altJSON))
	if err != nil {
		return fmt.Errorf("insert dictionary word: %w", err)
	}
	return nil
}
