package services

import (
	"regexp"
	"strings"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// patientPattern matches a patient token: a short run of Han characters
// followed by the 某某 suffix, optionally preceded by 患者.
var patientPattern = regexp.MustCompile(`(?:患者)?([\p{Han}]{1,4}某某)`)

// diagnosisTrigger marks a "what disease does X have" query; the patient
// name is whatever precedes it.
const diagnosisTrigger = "得了什么病"

// symptomTrigger maps a trigger phrase to its canonical symptom label.
type symptomTrigger struct {
	phrase string
	label  string
}

// symptomTriggers are evaluated in order after the named-patient rule.
var symptomTriggers = []symptomTrigger{
	{phrase: "头晕症状", label: "头晕"},
	{phrase: "海鲜过敏", label: "过敏"},
	{phrase: "白细胞数值", label: "白细胞"},
}

// rule is one classification step: it either claims the query or passes.
type rule func(query string) (domain.Classification, bool)

// Classifier maps a raw query to exactly one intent. Rules are evaluated
// in priority order and the first match wins; ambiguity is resolved by
// ordering, not by scoring.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the classifier with the fixed rule order:
// named patient, symptom triggers, diagnosis trigger.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			matchPatient,
			matchSymptom,
			matchDiagnosis,
		},
	}
}

// Classify routes one raw query. Queries matching no rule come back as
// IntentUnknown; callers must not look anything up for those.
func (c *Classifier) Classify(query string) domain.Classification {
	for _, r := range c.rules {
		if cls, ok := r(query); ok {
			return cls
		}
	}
	return domain.Classification{Intent: domain.IntentUnknown}
}

func matchPatient(query string) (domain.Classification, bool) {
	m := patientPattern.FindStringSubmatch(query)
	if m == nil {
		return domain.Classification{}, false
	}
	return domain.Classification{
		Intent:  domain.IntentPatient,
		Patient: m[1],
	}, true
}

func matchSymptom(query string) (domain.Classification, bool) {
	for _, t := range symptomTriggers {
		if strings.Contains(query, t.phrase) {
			return domain.Classification{
				Intent:  domain.IntentSymptom,
				Symptom: t.label,
			}, true
		}
	}
	return domain.Classification{}, false
}

func matchDiagnosis(query string) (domain.Classification, bool) {
	idx := strings.Index(query, diagnosisTrigger)
	if idx < 0 {
		return domain.Classification{}, false
	}
	return domain.Classification{
		Intent:  domain.IntentDiagnosis,
		Patient: strings.TrimSpace(query[:idx]),
	}, true
}
