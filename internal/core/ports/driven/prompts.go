package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from user-editable files or embed
// defaults in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used by the prompt builder.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptSystem is the constant system instruction: a professional
	// medical-document analysis assistant grounded in the supplied records.
	// No placeholders.
	PromptSystem = "system"

	// PromptPatientCourse summarises a hospital stay.
	// Placeholders: %s patient, %s record content.
	PromptPatientCourse = "patient_course"

	// PromptPatientConcordance compares admission and discharge diagnoses.
	// Placeholders: %s patient, %s record content.
	PromptPatientConcordance = "patient_concordance"

	// PromptPatientDischarge describes the discharge condition.
	// Placeholders: %s patient, %s record content.
	PromptPatientDischarge = "patient_discharge"

	// PromptPatientWBC extracts white blood cell values.
	// Placeholders: %s patient, %s record content.
	PromptPatientWBC = "patient_wbc"

	// PromptPatientGeneral answers any other named-patient question.
	// Placeholders: %s query, %s patient, %s record content.
	PromptPatientGeneral = "patient_general"

	// PromptDiagnosis summarises a patient's main disease and symptoms.
	// Placeholders: %s patient, %s record content.
	PromptDiagnosis = "diagnosis"

	// PromptSymptomSearch answers a cohort query over matched records.
	// Placeholders: %s query, %s per-patient context block.
	PromptSymptomSearch = "symptom_search"
)
