package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
)

// mockLLM records the messages it was called with and returns a canned
// reply or error.
type mockLLM struct {
	reply    string
	err      error
	calls    int
	messages []driven.ChatMessage
	opts     driven.ChatOptions
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.calls++
	m.messages = messages
	m.opts = opts
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockLLM) ModelName() string { return "mock" }

func newTestQueryService(store driven.RecordStore, llm driven.LLMService) *QueryService {
	return NewQueryService(store, llm, nil, 0, driven.ChatOptions{})
}

func TestAskNamedPatient(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "张某某", Content: "主诉头晕三天，诊断为良性位置性眩晕"})
	llm := &mockLLM{reply: "张某某因头晕入院。"}
	svc := newTestQueryService(store, llm)

	answer, err := svc.Ask(context.Background(), "患者张某某的情况如何")
	require.NoError(t, err)

	assert.Equal(t, "张某某因头晕入院。", answer.Text)
	require.Len(t, answer.References, 1)
	assert.Equal(t, "张某某", answer.References[0].Patient)
	assert.Equal(t, store.records["张某某"].Content, answer.References[0].Content)

	require.Equal(t, 1, llm.calls)
	require.Len(t, llm.messages, 2)
	assert.Equal(t, driven.RoleSystem, llm.messages[0].Role)
	assert.Contains(t, llm.messages[0].Content, "医疗文档分析助手")
	assert.Equal(t, driven.RoleUser, llm.messages[1].Role)
	assert.Contains(t, llm.messages[1].Content, store.records["张某某"].Content)
}

func TestAskNamedPatientNotFound(t *testing.T) {
	llm := &mockLLM{reply: "should not be called"}
	svc := newTestQueryService(newMockStore(), llm)

	answer, err := svc.Ask(context.Background(), "患者李某某的病情")
	require.NoError(t, err)

	assert.Equal(t, "未找到李某某的病历记录。", answer.Text)
	assert.Empty(t, answer.References)
	assert.Zero(t, llm.calls)
}

func TestAskUnrecognizedQuery(t *testing.T) {
	llm := &mockLLM{reply: "should not be called"}
	svc := newTestQueryService(newMockStore(), llm)

	answer, err := svc.Ask(context.Background(), "今天天气怎么样")
	require.NoError(t, err)

	assert.Contains(t, answer.Text, "无法理解的查询类型")
	assert.Contains(t, answer.Text, "哪些患者有头晕症状")
	assert.Empty(t, answer.References)
	assert.Zero(t, llm.calls)
}

func TestAskDiagnosis(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "李四", Content: "出院诊断：急性胃肠炎"})
	llm := &mockLLM{reply: "李四的主要诊断为急性胃肠炎。"}
	svc := newTestQueryService(store, llm)

	answer, err := svc.Ask(context.Background(), "李四得了什么病")
	require.NoError(t, err)

	assert.Equal(t, "李四的主要诊断为急性胃肠炎。", answer.Text)
	require.Len(t, answer.References, 1)
	assert.Equal(t, "李四", answer.References[0].Patient)
	require.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.messages[1].Content, "主要疾病和症状")
}

func TestAskDiagnosisWithoutPatient(t *testing.T) {
	llm := &mockLLM{}
	svc := newTestQueryService(newMockStore(), llm)

	answer, err := svc.Ask(context.Background(), "得了什么病")
	require.NoError(t, err)

	assert.Equal(t, "请指定具体的患者姓名。", answer.Text)
	assert.Empty(t, answer.References)
	assert.Zero(t, llm.calls)
}

func TestAskSymptomSearch(t *testing.T) {
	store := newMockStore(
		domain.Record{Patient: "张某某", Content: "入院时主诉头晕"},
		domain.Record{Patient: "李某某", Content: "突发眩晕入院"},
		domain.Record{Patient: "王某某", Content: "腹痛两天"},
	)
	llm := &mockLLM{reply: "张某某和李某某有头晕症状。"}
	svc := newTestQueryService(store, llm)

	answer, err := svc.Ask(context.Background(), "哪些患者有头晕症状")
	require.NoError(t, err)

	require.Len(t, answer.References, 2)
	for _, ref := range answer.References {
		// Every disclosed reference was embedded in the prompt.
		assert.Contains(t, llm.messages[1].Content, ref.Content)
	}
	assert.NotContains(t, llm.messages[1].Content, "腹痛两天")
}

func TestAskSymptomSearchEmptyStore(t *testing.T) {
	// Zero matches still reaches the model; "no one has this symptom" is
	// a valid generated answer.
	llm := &mockLLM{reply: "没有患者有头晕症状。"}
	svc := newTestQueryService(newMockStore(), llm)

	answer, err := svc.Ask(context.Background(), "哪些患者有头晕症状")
	require.NoError(t, err)

	assert.Equal(t, "没有患者有头晕症状。", answer.Text)
	assert.Empty(t, answer.References)
	require.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.messages[1].Content, "哪些患者有头晕症状")
}

func TestAskGenerationFailure(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "张某某", Content: "主诉头晕"})
	llm := &mockLLM{err: errors.New("connection refused")}
	svc := newTestQueryService(store, llm)

	answer, err := svc.Ask(context.Background(), "患者张某某的情况")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(answer.Text, "处理查询时出错："), answer.Text)
	assert.Contains(t, answer.Text, "connection refused")
	assert.Empty(t, answer.References)
}

func TestAskWithoutGenerator(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "张某某", Content: "主诉头晕"})
	svc := newTestQueryService(store, nil)

	answer, err := svc.Ask(context.Background(), "患者张某某的情况")
	require.NoError(t, err)

	assert.Contains(t, answer.Text, "处理查询时出错")
	assert.Empty(t, answer.References)
}

func TestAskDefaultsGenerationOptions(t *testing.T) {
	store := newMockStore(domain.Record{Patient: "张某某", Content: "主诉头晕"})
	llm := &mockLLM{reply: "好的"}
	svc := newTestQueryService(store, llm)

	_, err := svc.Ask(context.Background(), "患者张某某的情况")
	require.NoError(t, err)

	assert.InDelta(t, DefaultTemperature, llm.opts.Temperature, 0.001)
	assert.Equal(t, DefaultMaxTokens, llm.opts.MaxTokens)
}
