package domain

// Intent is the classified purpose of a raw query. Classification is
// mutually exclusive: a query maps to exactly one intent, decided by an
// ordered rule list where the first match wins.
type Intent int

const (
	// IntentUnknown means no rule matched. Terminal: no record lookup and
	// no model call are made.
	IntentUnknown Intent = iota

	// IntentPatient is a query naming a specific patient (患者X某某...).
	IntentPatient

	// IntentDiagnosis is a "X得了什么病" query. It names a patient but is
	// answered with its own template.
	IntentDiagnosis

	// IntentSymptom is a cohort query matching one of the fixed symptom
	// trigger phrases (头晕症状, 海鲜过敏, 白细胞数值).
	IntentSymptom
)

// String returns a short name for logging.
func (i Intent) String() string {
	switch i {
	case IntentPatient:
		return "patient"
	case IntentDiagnosis:
		return "diagnosis"
	case IntentSymptom:
		return "symptom"
	default:
		return "unknown"
	}
}

// Classification is the routing outcome for one raw query. It carries the
// entity the matched rule extracted: a patient identifier for
// IntentPatient/IntentDiagnosis, a canonical symptom label for IntentSymptom.
type Classification struct {
	Intent  Intent
	Patient string
	Symptom string
}
