package services

import (
	"fmt"
	"strings"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// defaultPrompts contains the embedded default templates, used when no
// prompt store is configured or a named prompt cannot be loaded.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptSystem: `你是一个专业的医疗文档分析助手，请基于提供的病历内容进行分析和回答。`,

	driven.PromptPatientCourse: `请分析以下病历，总结%s住院期间的整体情况：
1. 入院时的主要症状和诊断
2. 住院期间的治疗过程
3. 出院时的情况和效果

病历内容：
%s`,

	driven.PromptPatientConcordance: `请分析以下病历，对比%s的入院诊断和出院诊断：
1. 列出入院诊断和出院诊断
2. 分析两者的符合程度
3. 给出具体的符合率数值

病历内容：
%s`,

	driven.PromptPatientDischarge: `请分析以下病历，详细说明%s出院时的情况：
1. 症状改善情况
2. 治疗效果
3. 是否有未解决的问题

病历内容：
%s`,

	driven.PromptPatientWBC: `请从以下病历中提取%s的白细胞检验结果：
1. 入院时的白细胞值
2. 复查时的白细胞值
3. 对比两次结果的变化

病历内容：
%s`,

	driven.PromptPatientGeneral: `请根据以下病历回答问题：
问题：%s
患者：%s

病历内容：
%s

请提供详细的分析和回答。`,

	driven.PromptDiagnosis: `请分析以下病历，总结%s的主要疾病和症状：
1. 主要诊断结果
2. 主要症状表现
3. 相关检查结果

病历内容：
%s`,

	driven.PromptSymptomSearch: `请分析以下患者的病历记录，回答问题：%s

找到的相关病历：
%s`,
}

// DefaultPrompts returns a copy of the embedded default templates, keyed
// by prompt name. Prompt stores use it to seed user-editable files.
func DefaultPrompts() map[string]string {
	out := make(map[string]string, len(defaultPrompts))
	for name, tmpl := range defaultPrompts {
		out[name] = tmpl
	}
	return out
}

// patientTemplate maps a trigger phrase in the raw query to the template
// used for a named-patient question. Checked in order, first match wins.
type patientTemplate struct {
	triggers []string
	prompt   string
}

var patientTemplates = []patientTemplate{
	{triggers: []string{"住院期间"}, prompt: driven.PromptPatientCourse},
	{triggers: []string{"诊断符合率"}, prompt: driven.PromptPatientConcordance},
	{triggers: []string{"出院时情况", "好转"}, prompt: driven.PromptPatientDischarge},
	{triggers: []string{"白细胞数值"}, prompt: driven.PromptPatientWBC},
}

// PromptBuilder renders the task-specific instruction templates.
// It is a pure function of (intent, entities, context); the full record
// text is always embedded untruncated.
type PromptBuilder struct {
	prompts driven.PromptStore
}

// NewPromptBuilder creates a prompt builder. The store may be nil, in
// which case the embedded defaults are used.
func NewPromptBuilder(prompts driven.PromptStore) *PromptBuilder {
	return &PromptBuilder{prompts: prompts}
}

// System returns the constant system instruction shared by all templates.
func (b *PromptBuilder) System() string {
	return b.load(driven.PromptSystem)
}

// Patient renders the prompt for a named-patient query, choosing the
// template by substring containment on the raw query.
func (b *PromptBuilder) Patient(query, patient, content string) string {
	for _, t := range patientTemplates {
		for _, trigger := range t.triggers {
			if strings.Contains(query, trigger) {
				logger.Debug("Patient template %q selected by trigger %q", t.prompt, trigger)
				return fmt.Sprintf(b.load(t.prompt), patient, content)
			}
		}
	}
	logger.Debug("Patient template %q selected (no trigger matched)", driven.PromptPatientGeneral)
	return fmt.Sprintf(b.load(driven.PromptPatientGeneral), query, patient, content)
}

// Diagnosis renders the prompt for a "what disease does X have" query.
func (b *PromptBuilder) Diagnosis(patient, content string) string {
	return fmt.Sprintf(b.load(driven.PromptDiagnosis), patient, content)
}

// Symptom renders the prompt for a symptom-search query, embedding every
// matched record with a per-patient delimiter. An empty match list renders
// an empty context block; the model reports "no matching patients".
func (b *PromptBuilder) Symptom(query string, records []domain.Record) string {
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, fmt.Sprintf("患者%s的记录：\n%s", rec.Patient, rec.Content))
	}
	return fmt.Sprintf(b.load(driven.PromptSymptomSearch), query, strings.Join(blocks, "\n\n"))
}

// load fetches a template by name, falling back to the embedded default.
func (b *PromptBuilder) load(name string) string {
	if b.prompts != nil {
		if tmpl, err := b.prompts.Load(name); err == nil && tmpl != "" {
			return tmpl
		}
	}
	return defaultPrompts[name]
}
