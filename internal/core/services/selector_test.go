package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
)

// mockStore is an in-memory test double for driven.RecordStore.
type mockStore struct {
	records map[string]domain.Record
}

var _ driven.RecordStore = (*mockStore)(nil)

func newMockStore(records ...domain.Record) *mockStore {
	s := &mockStore{records: make(map[string]domain.Record)}
	for _, rec := range records {
		s.records[rec.Patient] = rec
	}
	return s
}

func (s *mockStore) Get(_ context.Context, patient string) (*domain.Record, error) {
	rec, ok := s.records[patient]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (s *mockStore) Put(_ context.Context, rec *domain.Record) error {
	s.records[rec.Patient] = *rec
	return nil
}

func (s *mockStore) Remove(_ context.Context, patient string) error {
	if _, ok := s.records[patient]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.records, patient)
	return nil
}

func (s *mockStore) List(_ context.Context) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Patient < out[j].Patient })
	return out, nil
}

func TestSelectorPatient(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "张某某", Content: "主诉头晕三天"})
	selector := NewSelector(store, domain.NewSymptomTable(), 0)

	rec, err := selector.Patient(context.Background(), "张某某")
	require.NoError(t, err)
	assert.Equal(t, "主诉头晕三天", rec.Content)

	_, err = selector.Patient(context.Background(), "李某某")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestSelectorBySymptom(t *testing.T) {
	store := newMockStore(
		domain.Record{Patient: "张某某", Content: "入院时主诉头晕，伴恶心"},
		domain.Record{Patient: "李某某", Content: "突发眩晕，既往高血压"},
		domain.Record{Patient: "王某某", Content: "海鲜过敏史，皮疹"},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 0)

	matched, err := selector.BySymptom(context.Background(), "头晕")
	require.NoError(t, err)

	patients := make([]string, 0, len(matched))
	for _, rec := range matched {
		patients = append(patients, rec.Patient)
	}
	assert.Equal(t, []string{"张某某", "李某某"}, patients)
}

func TestSelectorBySymptomNoDuplicates(t *testing.T) {
	// A record hitting several synonyms must appear exactly once.
	store := newMockStore(
		domain.Record{Patient: "张某某", Content: "头晕伴眩晕，曾晕厥一次"},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 0)

	matched, err := selector.BySymptom(context.Background(), "头晕")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "张某某", matched[0].Patient)
}

func TestSelectorBySymptomNoMatches(t *testing.T) {
	store := newMockStore(
		domain.Record{Patient: "张某某", Content: "腹痛两天"},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 0)

	matched, err := selector.BySymptom(context.Background(), "头晕")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestSelectorBySymptomUnknownLabel(t *testing.T) {
	store := newMockStore(
		domain.Record{Patient: "张某某", Content: "持续发烧三天"},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 0)

	matched, err := selector.BySymptom(context.Background(), "发烧")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "张某某", matched[0].Patient)
}

func TestSelectorBySymptomContextBudget(t *testing.T) {
	store := newMockStore(
		domain.Record{Patient: "患者一", Content: "头晕" + string(make([]byte, 30))},
		domain.Record{Patient: "患者二", Content: "头晕" + string(make([]byte, 30))},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 40)

	matched, err := selector.BySymptom(context.Background(), "头晕")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "患者一", matched[0].Patient)
}

func TestSelectorBySymptomOversizeFirstRecordKept(t *testing.T) {
	// A single record over budget is still used; dropping it would leave
	// the model with nothing to ground on.
	store := newMockStore(
		domain.Record{Patient: "患者一", Content: "头晕" + string(make([]byte, 100))},
	)
	selector := NewSelector(store, domain.NewSymptomTable(), 40)

	matched, err := selector.BySymptom(context.Background(), "头晕")
	require.NoError(t, err)
	require.Len(t, matched, 1)
}
