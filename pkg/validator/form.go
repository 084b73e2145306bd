package validator

// Outcome is the non-error form of a validation result.
// Message is empty when Passed is true.
type Outcome struct {
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// FormEntry is one field of a form submitted to ValidateForm.
type FormEntry struct {
	Text string `json:"value" yaml:"value"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// FormResult is the outcome for the FormEntry at the same position.
type FormResult struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (v *Validator) outcome(text string, kind Kind) Outcome {
	if err := v.Validate(text, kind); err != nil {
		return Outcome{Message: err.Error()}
	}
	return Outcome{Passed: true}
}

// IsEmailValid validates text as an email address.
func (v *Validator) IsEmailValid(text string) Outcome {
	return v.outcome(text, Email)
}

// IsNameValid validates text as a first name.
func (v *Validator) IsNameValid(text string) Outcome {
	return v.outcome(text, Name)
}

// IsSurnameValid validates text as a surname.
func (v *Validator) IsSurnameValid(text string) Outcome {
	return v.outcome(text, Surname)
}

// ValidateForm validates every entry and returns one result per entry in the
// same order. A failing entry does not stop the remaining ones.
func (v *Validator) ValidateForm(entries []FormEntry) []FormResult {
	results := make([]FormResult, 0, len(entries))
	for _, entry := range entries {
		o := v.outcome(entry.Text, entry.Kind)
		results = append(results, FormResult{
			Kind:    entry.Kind,
			Passed:  o.Passed,
			Message: o.Message,
		})
	}
	return results
}

// IsEmailValid validates text as an email address using the default Validator.
func IsEmailValid(text string) Outcome {
	return defaultValidator.IsEmailValid(text)
}

// IsNameValid validates text as a first name using the default Validator.
func IsNameValid(text string) Outcome {
	return defaultValidator.IsNameValid(text)
}

// IsSurnameValid validates text as a surname using the default Validator.
func IsSurnameValid(text string) Outcome {
	return defaultValidator.IsSurnameValid(text)
}

// ValidateForm validates entries using the default Validator.
func ValidateForm(entries []FormEntry) []FormResult {
	return defaultValidator.ValidateForm(entries)
}
