package requirements

import "testing"

func TestAnalyzeValidDocument(t *testing.T) {
	doc := &Document{
		Features: []string{"auth", "search"},
		UserStories: []string{
			"As a user, I want to log in, so that I can access my account",
			"not a story",
		},
		AcceptanceCriteria: map[string][]string{
			"auth":   {"Must support email/password"},
			"search": {"Must return results in under a second"},
		},
		Criteria: &Criteria{
			Impact: map[string]float64{"auth": 8, "search": 4},
			Effort: map[string]float64{"auth": 2, "search": 4},
		},
	}

	got := Analyze(doc)

	if !got.IsValid {
		t.Fatal("document should be valid")
	}
	if len(got.PrioritizedFeatures) != 2 || got.PrioritizedFeatures[0].Feature != "auth" {
		t.Errorf("prioritized features = %+v, want auth first", got.PrioritizedFeatures)
	}
	if len(got.ParsedStories) != 2 {
		t.Fatalf("expected 2 parsed stories, got %d", len(got.ParsedStories))
	}
	if got.ParsedStories[0].Role != "user" {
		t.Errorf("first story role = %q, want %q", got.ParsedStories[0].Role, "user")
	}
	if got.ParsedStories[1] != (UserStory{}) {
		t.Errorf("non-story sentence should parse to empty triple, got %+v", got.ParsedStories[1])
	}
}

func TestAnalyzeWithoutCriteria(t *testing.T) {
	doc := &Document{
		Features:           []string{"auth"},
		UserStories:        []string{"As a user, I want to log in, so that I can access my account"},
		AcceptanceCriteria: map[string][]string{"auth": {}},
	}

	got := Analyze(doc)
	if !got.IsValid {
		t.Fatal("document should be valid")
	}
	if len(got.PrioritizedFeatures) != 0 {
		t.Errorf("no criteria means no prioritization, got %+v", got.PrioritizedFeatures)
	}
	if len(got.ParsedStories) != 1 {
		t.Errorf("expected 1 parsed story, got %d", len(got.ParsedStories))
	}
}

func TestAnalyzeInvalidDocument(t *testing.T) {
	doc := &Document{
		Features:    []string{"auth"},
		UserStories: []string{"As a user, I want to log in, so that I can access my account"},
		// Acceptance criteria missing entirely.
		Criteria: &Criteria{
			Impact: map[string]float64{"auth": 8},
			Effort: map[string]float64{"auth": 2},
		},
	}

	got := Analyze(doc)
	if got.IsValid {
		t.Fatal("document should be invalid")
	}
	if len(got.PrioritizedFeatures) != 0 || len(got.ParsedStories) != 0 {
		t.Errorf("invalid document must yield empty results, got %+v", got)
	}
}
