package llm

import (
	"fmt"
	"strings"

	"forge/pkg/requirements"
)

// ProductManagerInstructions is the system framing for the product manager
// role's requirements work.
const ProductManagerInstructions = `You are an experienced Product Manager with expertise in:
1. Analyzing project requirements
2. Creating detailed user stories
3. Defining project scope and features
4. Setting acceptance criteria
5. Prioritizing features based on business value

Always think about user experience, business value, technical feasibility,
and security requirements.`

// BuildRequirementsPrompt creates a prompt asking the model to produce a
// requirements document for a project.
func BuildRequirementsPrompt(name, description, projectType string, features []string) string {
	var b strings.Builder

	b.WriteString(ProductManagerInstructions)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Project: %s (%s)\nDescription: %s\n", name, projectType, description)

	if len(features) > 0 {
		fmt.Fprintf(&b, "Requested features: %s\n", strings.Join(features, ", "))
	}

	b.WriteString(`
Produce the requirements for this project. Every feature MUST have an
acceptance_criteria entry, and every user story MUST follow the exact form
"As a {role}, I want to {action}, so that {benefit}".

Return ONLY valid JSON with this exact structure:
{
  "features": ["string"],
  "user_stories": ["string"],
  "acceptance_criteria": {"feature": ["string"]}
}`)

	return b.String()
}

// BuildCriteriaPrompt creates a prompt asking the model for impact/effort
// scores for a feature list.
func BuildCriteriaPrompt(features []string) string {
	return fmt.Sprintf(`Score each of these features for prioritization:
%s

Impact is business value on a 1-10 scale. Effort is implementation cost on a
1-10 scale. Score every feature in both tables.

Return ONLY valid JSON with this exact structure:
{
  "impact": {"feature": number},
  "effort": {"feature": number}
}`, "- "+strings.Join(features, "\n- "))
}

// BuildArchitecturePrompt creates a prompt asking the model to design a
// system architecture for a validated requirements document.
func BuildArchitecturePrompt(projectName string, doc *requirements.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced System Architect. Design the architecture for %s.\n\n", projectName)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(doc.Features, ", "))

	if len(doc.UserStories) > 0 {
		b.WriteString("User stories:\n")
		for _, story := range doc.UserStories {
			fmt.Fprintf(&b, "- %s\n", story)
		}
	}

	b.WriteString(`
Return ONLY valid JSON with this exact structure:
{
  "components": ["string"],
  "stack": {"layer": "technology"},
  "dependencies": {"package": "version"}
}`)

	return b.String()
}
