package requirements

import (
	"fmt"
	"regexp"
)

// UserStory is the structured form of a canonical user-story sentence.
type UserStory struct {
	Role    string `json:"role" yaml:"role"`
	Action  string `json:"action" yaml:"action"`
	Benefit string `json:"benefit" yaml:"benefit"`
}

// storyPattern matches the canonical sentence. Role and action match lazily
// up to the next connector; benefit captures the remainder, including any
// further connector occurrences.
var storyPattern = regexp.MustCompile(`^As a (.*?), I want to (.*?), so that (.*)`)

// FormatUserStory renders the canonical sentence for a story triple.
// No escaping is performed: round-tripping through ParseUserStory requires
// that role and action do not contain the connector phrases themselves.
func FormatUserStory(role, action, benefit string) string {
	return fmt.Sprintf("As a %s, I want to %s, so that %s", role, action, benefit)
}

// String renders the story in its canonical sentence form.
func (s UserStory) String() string {
	return FormatUserStory(s.Role, s.Action, s.Benefit)
}

// ParseUserStory splits a canonical sentence into its components. Sentences
// that do not match the pattern yield a zero-value story rather than an
// error; callers treat the empty triple as "not a story".
func ParseUserStory(sentence string) UserStory {
	m := storyPattern.FindStringSubmatch(sentence)
	if m == nil {
		return UserStory{}
	}
	return UserStory{Role: m[1], Action: m[2], Benefit: m[3]}
}
