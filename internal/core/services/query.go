package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driving"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// Default generation settings: a low temperature biases the model toward
// literal extraction from the records over creative elaboration.
const (
	DefaultTemperature float32 = 0.3
	DefaultMaxTokens           = 2000
)

// Fixed user-visible texts for locally recovered outcomes.
const (
	// msgGuidance is returned for unrecognized queries. It lists the
	// three supported query shapes.
	msgGuidance = "无法理解的查询类型，请使用以下格式提问：\n" +
		"1. 询问具体患者：'患者XXX的...'\n" +
		"2. 查询症状：'哪些患者有头晕症状'\n" +
		"3. 查询病情：'XXX得了什么病'"

	// msgNamePatient is returned when a diagnosis query names nobody.
	msgNamePatient = "请指定具体的患者姓名。"
)

// msgNotFound is the fixed reply for a named patient without a record.
func msgNotFound(patient string) string {
	return fmt.Sprintf("未找到%s的病历记录。", patient)
}

// msgGenerationFailed converts a generator error into the final reply.
func msgGenerationFailed(err error) string {
	return fmt.Sprintf("处理查询时出错：%v", err)
}

// QueryService runs the synchronous query pipeline:
// classify, select context, build prompt, call the model, assemble.
// Each query is independent and stateless apart from record store reads.
type QueryService struct {
	classifier *Classifier
	selector   *Selector
	builder    *PromptBuilder
	llm        driven.LLMService
	opts       driven.ChatOptions
}

// NewQueryService wires the pipeline. The generator client is an injected
// dependency so tests can substitute a double.
func NewQueryService(
	store driven.RecordStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
	contextBudget int,
	opts driven.ChatOptions,
) *QueryService {
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &QueryService{
		classifier: NewClassifier(),
		selector:   NewSelector(store, domain.NewSymptomTable(), contextBudget),
		builder:    NewPromptBuilder(prompts),
		llm:        llm,
		opts:       opts,
	}
}

// Ask answers one raw query. Recoverable outcomes (record not found,
// unrecognized query, generation failure) become displayable answers with
// empty references; only infrastructure faults surface as errors.
func (s *QueryService) Ask(ctx context.Context, query string) (*domain.Answer, error) {
	logger.Section("Query Pipeline")
	logger.Debug("Query: %q", query)

	cls := s.classifier.Classify(query)
	logger.Info("Intent: %s (patient=%q symptom=%q)", cls.Intent, cls.Patient, cls.Symptom)

	switch cls.Intent {
	case domain.IntentPatient:
		return s.askPatient(ctx, query, cls.Patient)
	case domain.IntentDiagnosis:
		return s.askDiagnosis(ctx, cls.Patient)
	case domain.IntentSymptom:
		return s.askSymptom(ctx, query, cls.Symptom)
	default:
		return fixedAnswer(msgGuidance), nil
	}
}

// askPatient answers a named-patient query from that patient's record.
func (s *QueryService) askPatient(ctx context.Context, query, patient string) (*domain.Answer, error) {
	rec, err := s.selector.Patient(ctx, patient)
	if errors.Is(err, domain.ErrRecordNotFound) {
		logger.Info("No record for %q, skipping generation", patient)
		return fixedAnswer(msgNotFound(patient)), nil
	}
	if err != nil {
		return nil, err
	}

	prompt := s.builder.Patient(query, patient, rec.Content)
	return s.generate(ctx, prompt, []domain.Record{*rec})
}

// askDiagnosis answers a "what disease does X have" query.
func (s *QueryService) askDiagnosis(ctx context.Context, patient string) (*domain.Answer, error) {
	if patient == "" {
		return fixedAnswer(msgNamePatient), nil
	}

	rec, err := s.selector.Patient(ctx, patient)
	if errors.Is(err, domain.ErrRecordNotFound) {
		logger.Info("No record for %q, skipping generation", patient)
		return fixedAnswer(msgNotFound(patient)), nil
	}
	if err != nil {
		return nil, err
	}

	prompt := s.builder.Diagnosis(patient, rec.Content)
	return s.generate(ctx, prompt, []domain.Record{*rec})
}

// askSymptom answers a cohort query over every record matching the
// symptom. Zero matches still reaches the model with an empty context
// block; "no one has this symptom" is a valid answer.
func (s *QueryService) askSymptom(ctx context.Context, query, symptom string) (*domain.Answer, error) {
	matched, err := s.selector.BySymptom(ctx, symptom)
	if err != nil {
		return nil, err
	}

	prompt := s.builder.Symptom(query, matched)
	return s.generate(ctx, prompt, matched)
}

// generate calls the model and assembles the final answer. The reference
// list is exactly the records embedded in the prompt, so disclosed
// evidence is always a subset of what the model saw.
func (s *QueryService) generate(ctx context.Context, prompt string, used []domain.Record) (*domain.Answer, error) {
	if s.llm == nil {
		return fixedAnswer(msgGenerationFailed(domain.ErrLLMUnavailable)), nil
	}

	messages := []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: s.builder.System()},
		{Role: driven.RoleUser, Content: prompt},
	}

	logger.Debug("Calling %s (%d prompt bytes, %d records)", s.llm.ModelName(), len(prompt), len(used))
	text, err := s.llm.Chat(ctx, messages, s.opts)
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return fixedAnswer(msgGenerationFailed(err)), nil
	}

	refs := make([]domain.Reference, 0, len(used))
	for _, rec := range used {
		refs = append(refs, domain.Reference{Patient: rec.Patient, Content: rec.Content})
	}
	return &domain.Answer{Text: text, References: refs}, nil
}

// fixedAnswer wraps a locally recovered outcome with empty references.
func fixedAnswer(text string) *domain.Answer {
	return &domain.Answer{Text: text, References: []domain.Reference{}}
}
