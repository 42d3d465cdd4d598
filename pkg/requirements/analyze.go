package requirements

// Analysis is the aggregate result of validating, prioritizing, and parsing
// a requirements document.
type Analysis struct {
	IsValid             bool              `json:"is_valid" yaml:"is_valid"`
	PrioritizedFeatures []FeaturePriority `json:"prioritized_features" yaml:"prioritized_features"`
	ParsedStories       []UserStory       `json:"parsed_stories" yaml:"parsed_stories"`
}

// Analyze runs the full pass over a document. Invalid documents degrade to
// empty results with IsValid false; the operation itself never fails.
// Prioritization runs only when the document carries criteria.
func Analyze(doc *Document) Analysis {
	result := Analysis{
		PrioritizedFeatures: []FeaturePriority{},
		ParsedStories:       []UserStory{},
	}

	if !Validate(doc) {
		return result
	}
	result.IsValid = true

	if doc.Criteria != nil {
		result.PrioritizedFeatures = Prioritize(doc.Features, *doc.Criteria)
	}

	for _, sentence := range doc.UserStories {
		result.ParsedStories = append(result.ParsedStories, ParseUserStory(sentence))
	}

	return result
}
