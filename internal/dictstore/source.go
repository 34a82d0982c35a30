// Package dictstore provides the dictionary data used by the spell
// checker. The engine only needs a narrow read contract; hosted-DB,
// sqlite, and in-memory implementations all satisfy it.
package dictstore

import (
	"context"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// Source is the read interface the spell engine initializes from.
// Both methods are called once per engine lifetime; failures degrade
// the engine to its builtin word list rather than aborting checks.
type Source interface {
	// ValidWords returns the dictionary rows.
	ValidWords(ctx context.Context) ([]document.DictionaryEntry, error)
	// Mistakes returns known incorrect→correct pairs.
	Mistakes(ctx context.Context) ([]document.MistakePair, error)
}

// Static is an in-memory Source, used for tests and for the builtin
// fallback.
type Static struct {
	Entries []document.DictionaryEntry
	Pairs   []document.MistakePair
}

func (s *Static) ValidWords(ctx context.Context) ([]document.DictionaryEntry, error) {
	return s.Entries, nil
}

func (s *Static) Mistakes(ctx context.Context) ([]document.MistakePair, error) {
	return s.Pairs, nil
}
