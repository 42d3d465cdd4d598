package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"forge/internal/core"
	"forge/internal/llm"
	"forge/internal/project"
	"forge/pkg/requirements"
)

// Default impact/effort scores used when no criteria were gathered for a
// feature. Features outside the table get a middling score so prioritization
// still produces a full ranking.
var (
	defaultImpact = map[string]float64{
		"User authentication":  8,
		"Profile management":   6,
		"Data storage":         7,
		"Search functionality": 5,
	}
	defaultEffort = map[string]float64{
		"User authentication":  5,
		"Profile management":   3,
		"Data storage":         6,
		"Search functionality": 4,
	}
)

const (
	fallbackImpact = 5
	fallbackEffort = 3
)

// ProductManager gathers, validates, and prioritizes project requirements.
// With a nil client it runs fully offline from built-in templates; with a
// client it asks the model and falls back to the templates on failure.
type ProductManager struct {
	client   *llm.Client
	settings core.AgentSettings
	logger   core.Logger
}

// NewProductManager creates the product manager role.
func NewProductManager(client *llm.Client, settings core.AgentSettings, logger core.Logger) *ProductManager {
	return &ProductManager{client: client, settings: settings, logger: logger}
}

func (a *ProductManager) Name() string { return RoleProductManager }

func (a *ProductManager) Instructions() string {
	if a.settings.CustomInstructions != "" {
		return llm.ProductManagerInstructions + "\n\n" + a.settings.CustomInstructions
	}
	return llm.ProductManagerInstructions
}

func (a *ProductManager) opts() llm.GenerateOptions {
	return llm.GenerateOptions{
		Model:       a.settings.Model,
		Temperature: a.settings.Temperature,
	}
}

// GatherRequirements produces a validated requirements document for the
// project. Requested features from the config always end up in the document,
// whether the model mentioned them or not.
func (a *ProductManager) GatherRequirements(ctx context.Context, cfg *project.Config) (*requirements.Document, error) {
	if !cfg.Valid() {
		return nil, &core.ValidationError{Field: "project", Message: "name and description are required"}
	}

	if a.client == nil {
		a.logger.Debug("no LLM client configured, using template requirements", "project", cfg.Name)
		return a.templateRequirements(cfg), nil
	}

	prompt := llm.BuildRequirementsPrompt(cfg.Name, cfg.Description, cfg.Type, cfg.Features)
	doc, err := llm.GenerateStructured(a.client, ctx, a.opts(), prompt, func(d *requirements.Document) error {
		if !requirements.Validate(d) {
			return errors.New("document must include features, user_stories, and an acceptance_criteria entry for every feature")
		}
		return nil
	})
	if err != nil {
		a.logger.Warn("requirements generation failed, falling back to template",
			"project", cfg.Name,
			"error", err.Error(),
		)
		return a.templateRequirements(cfg), nil
	}

	a.mergeRequestedFeatures(doc, cfg.Features)
	return doc, nil
}

// ScoreFeatures gathers impact/effort criteria for a feature list, from the
// model when available and from the default table otherwise.
func (a *ProductManager) ScoreFeatures(ctx context.Context, features []string) (*requirements.Criteria, error) {
	if len(features) == 0 {
		return nil, &core.ValidationError{Field: "features", Message: "no features to score"}
	}

	if a.client == nil {
		criteria := defaultCriteriaFor(features)
		return &criteria, nil
	}

	criteria, err := llm.GenerateStructured(a.client, ctx, a.opts(), llm.BuildCriteriaPrompt(features), func(c *requirements.Criteria) error {
		for _, feature := range features {
			if _, ok := c.Impact[feature]; !ok {
				return fmt.Errorf("missing impact score for %q", feature)
			}
			if _, ok := c.Effort[feature]; !ok {
				return fmt.Errorf("missing effort score for %q", feature)
			}
		}
		return nil
	})
	if err != nil {
		a.logger.Warn("criteria generation failed, using default scores", "error", err.Error())
		fallback := defaultCriteriaFor(features)
		return &fallback, nil
	}

	return criteria, nil
}

// ProjectAnalysis pairs the requirements analysis with next-step
// recommendations for the team.
type ProjectAnalysis struct {
	Requirements    *requirements.Document `json:"requirements" yaml:"requirements"`
	Analysis        requirements.Analysis  `json:"analysis" yaml:"analysis"`
	Recommendations []string               `json:"recommendations" yaml:"recommendations"`
}

// AnalyzeProject gathers requirements for a config and analyzes them in one
// pass, attaching standing recommendations.
func (a *ProductManager) AnalyzeProject(ctx context.Context, cfg *project.Config) (*ProjectAnalysis, error) {
	doc, err := a.GatherRequirements(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &ProjectAnalysis{
		Requirements: doc,
		Analysis:     a.AnalyzeRequirements(doc),
		Recommendations: []string{
			"Start with the highest-priority features",
			"Set up CI/CD early in the project",
			"Plan for scalability from the beginning",
		},
	}, nil
}

// UpdateRequirements merges new requirements into an existing document and
// revalidates the result. The inputs are not mutated.
func (a *ProductManager) UpdateRequirements(doc, updates *requirements.Document) (*requirements.Document, error) {
	if doc == nil {
		return nil, &core.ValidationError{Field: "requirements", Message: "no document to update"}
	}

	merged := &requirements.Document{
		Features:           append([]string{}, doc.Features...),
		UserStories:        append([]string{}, doc.UserStories...),
		AcceptanceCriteria: map[string][]string{},
		Criteria:           doc.Criteria,
	}
	for feature, criteria := range doc.AcceptanceCriteria {
		merged.AcceptanceCriteria[feature] = append([]string{}, criteria...)
	}

	if updates != nil {
		for _, feature := range updates.Features {
			if !containsString(merged.Features, feature) {
				merged.Features = append(merged.Features, feature)
			}
		}
		for _, story := range updates.UserStories {
			if !containsString(merged.UserStories, story) {
				merged.UserStories = append(merged.UserStories, story)
			}
		}
		for feature, criteria := range updates.AcceptanceCriteria {
			merged.AcceptanceCriteria[feature] = append(merged.AcceptanceCriteria[feature], criteria...)
		}
		if updates.Criteria != nil {
			merged.Criteria = updates.Criteria
		}
	}

	if !requirements.Validate(merged) {
		return nil, &core.AgentError{
			Role:    RoleProductManager,
			Op:      "update_requirements",
			Message: "merged document failed validation",
		}
	}

	return merged, nil
}

// PrioritizeFeatures ranks the document's features, using its own criteria
// when present and the default scores otherwise.
func (a *ProductManager) PrioritizeFeatures(doc *requirements.Document) ([]requirements.FeaturePriority, error) {
	if !requirements.Validate(doc) {
		return nil, &core.AgentError{
			Role:    RoleProductManager,
			Op:      "prioritize_features",
			Message: "cannot prioritize an invalid document",
		}
	}

	criteria := defaultCriteriaFor(doc.Features)
	if doc.Criteria != nil {
		criteria = *doc.Criteria
	}

	return requirements.Prioritize(doc.Features, criteria), nil
}

// AnalyzeRequirements runs the full analysis pass. Documents without criteria
// are scored from the default table so the analysis always ranks features.
func (a *ProductManager) AnalyzeRequirements(doc *requirements.Document) requirements.Analysis {
	if doc != nil && doc.Criteria == nil {
		scored := *doc
		criteria := defaultCriteriaFor(doc.Features)
		scored.Criteria = &criteria
		return requirements.Analyze(&scored)
	}
	return requirements.Analyze(doc)
}

// GenerateUserStories writes a canonical user story per feature.
func (a *ProductManager) GenerateUserStories(features []string) []string {
	stories := make([]string, 0, len(features))
	for _, feature := range features {
		stories = append(stories, requirements.FormatUserStory(
			"user",
			"use "+strings.ToLower(feature),
			"I can accomplish my goals",
		))
	}
	return stories
}

// CreateAcceptanceCriteria writes baseline acceptance criteria per feature.
func (a *ProductManager) CreateAcceptanceCriteria(features []string) map[string][]string {
	criteria := make(map[string][]string, len(features))
	for _, feature := range features {
		criteria[feature] = []string{
			fmt.Sprintf("%s works as described", feature),
			fmt.Sprintf("%s handles invalid input gracefully", feature),
		}
	}
	return criteria
}

// templateRequirements builds the offline fallback document: the baseline
// feature set plus whatever the config requested.
func (a *ProductManager) templateRequirements(cfg *project.Config) *requirements.Document {
	features := []string{
		"User authentication",
		"Profile management",
		"Data storage",
		"Search functionality",
	}
	for _, feature := range cfg.Features {
		if !containsString(features, feature) {
			features = append(features, feature)
		}
	}

	criteria := defaultCriteriaFor(features)

	return &requirements.Document{
		Features:           features,
		UserStories:        a.GenerateUserStories(features),
		AcceptanceCriteria: a.CreateAcceptanceCriteria(features),
		Criteria:           &criteria,
	}
}

// mergeRequestedFeatures appends any requested feature the model dropped,
// with a story and criteria so the document stays valid.
func (a *ProductManager) mergeRequestedFeatures(doc *requirements.Document, requested []string) {
	for _, feature := range requested {
		if containsString(doc.Features, feature) {
			continue
		}
		doc.Features = append(doc.Features, feature)
		doc.UserStories = append(doc.UserStories, a.GenerateUserStories([]string{feature})...)
		if doc.AcceptanceCriteria == nil {
			doc.AcceptanceCriteria = map[string][]string{}
		}
		doc.AcceptanceCriteria[feature] = a.CreateAcceptanceCriteria([]string{feature})[feature]
	}
}

func defaultCriteriaFor(features []string) requirements.Criteria {
	criteria := requirements.Criteria{
		Impact: make(map[string]float64, len(features)),
		Effort: make(map[string]float64, len(features)),
	}
	for _, feature := range features {
		impact, ok := defaultImpact[feature]
		if !ok {
			impact = fallbackImpact
		}
		effort, ok := defaultEffort[feature]
		if !ok {
			effort = fallbackEffort
		}
		criteria.Impact[feature] = impact
		criteria.Effort[feature] = effort
	}
	return criteria
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
