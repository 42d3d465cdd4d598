package requirements

// Document is the requirements record produced during the planning phase.
// Features are free-form identifiers, user stories are canonical sentences,
// and acceptance criteria map each feature to its completion conditions.
type Document struct {
	Features           []string            `json:"features" yaml:"features"`
	UserStories        []string            `json:"user_stories" yaml:"user_stories"`
	AcceptanceCriteria map[string][]string `json:"acceptance_criteria" yaml:"acceptance_criteria"`

	// Criteria is optional; when present it drives feature prioritization.
	Criteria *Criteria `json:"criteria,omitempty" yaml:"criteria,omitempty"`
}

// NewDocument returns an empty but valid document.
func NewDocument() *Document {
	return &Document{
		Features:           []string{},
		UserStories:        []string{},
		AcceptanceCriteria: map[string][]string{},
	}
}

// Validate reports whether a document is structurally sound: all three
// collections must be present (non-nil) and every feature must have an
// acceptance-criteria entry. It is a pure boolean gate and never fails;
// structural problems are signaled by the return value, not by an error.
func Validate(doc *Document) bool {
	if doc == nil {
		return false
	}
	if doc.Features == nil || doc.UserStories == nil || doc.AcceptanceCriteria == nil {
		return false
	}
	for _, feature := range doc.Features {
		if _, ok := doc.AcceptanceCriteria[feature]; !ok {
			return false
		}
	}
	return true
}

// Validate reports whether the document passes the structural gate.
func (d *Document) Validate() bool {
	return Validate(d)
}
