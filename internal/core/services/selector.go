package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// DefaultContextBudget caps the combined record text embedded in one
// symptom-search prompt. Whole documents are never split; records that
// would overflow the budget are dropped entirely, from the prompt and the
// reference list alike.
const DefaultContextBudget = 512 << 10

// Selector retrieves the minimal relevant set of records for a classified
// query: exact lookup for a named patient, substring scan for a symptom.
type Selector struct {
	store         driven.RecordStore
	symptoms      *domain.SymptomTable
	contextBudget int
}

// NewSelector creates a selector. A contextBudget of zero or less falls
// back to DefaultContextBudget.
func NewSelector(store driven.RecordStore, symptoms *domain.SymptomTable, contextBudget int) *Selector {
	if contextBudget <= 0 {
		contextBudget = DefaultContextBudget
	}
	return &Selector{
		store:         store,
		symptoms:      symptoms,
		contextBudget: contextBudget,
	}
}

// Patient looks up a single record by exact identifier.
// Returns domain.ErrRecordNotFound when the patient is absent, including
// when the record disappeared between classification and use.
func (s *Selector) Patient(ctx context.Context, patient string) (*domain.Record, error) {
	rec, err := s.store.Get(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", patient, err)
	}
	return rec, nil
}

// BySymptom expands the symptom label and scans every stored record.
// A record matches when any expanded substring occurs anywhere in its
// text; checking stops at the first hit so a patient never appears twice.
// Matching is case-sensitive substring containment. Results come back in
// name order, but callers must not depend on ranking.
//
// Zero matches is a valid outcome, not an error: the model is expected to
// report that no patient has the symptom.
func (s *Selector) BySymptom(ctx context.Context, label string) ([]domain.Record, error) {
	patterns := s.symptoms.Expand(label)
	logger.Debug("Symptom %q expands to %v", label, patterns)

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]domain.Record, 0, len(records))
	used := 0
	for _, rec := range records {
		for _, pattern := range patterns {
			if !strings.Contains(rec.Content, pattern) {
				continue
			}
			if used+len(rec.Content) > s.contextBudget && len(matched) > 0 {
				logger.Warn("Context budget reached, dropping record %q from symptom search", rec.Patient)
			} else {
				matched = append(matched, rec)
				used += len(rec.Content)
			}
			break
		}
	}

	logger.Debug("Symptom %q matched %d of %d records", label, len(matched), len(records))
	return matched, nil
}
