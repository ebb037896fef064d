package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/transform"
)

// CompareEngine orchestrates plan comparison
type CompareEngine struct {
	PlanEngine        *calculation.PlanEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(planEngine *calculation.PlanEngine) *CompareEngine {
	if planEngine == nil {
		planEngine = calculation.NewPlanEngine()
	}
	mc := NewMetricsCalculator()
	mc.DefaultAge = planEngine.Assumptions.DefaultAge
	return &CompareEngine{
		PlanEngine:        planEngine,
		MetricsCalculator: mc,
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Label for the unmodified profile
	Templates        []string // Template names, each producing one alternative
	Transforms       []string // Transform specs, each producing one alternative
	ProfilePath      string   // Shown in reports
}

// Compare computes the base plan and one alternative per template or
// transform spec
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base *domain.UserProfile,
	options CompareOptions,
) (*ComparisonSet, error) {
	if base == nil {
		return nil, fmt.Errorf("base profile cannot be nil")
	}
	if options.BaseScenarioName == "" {
		options.BaseScenarioName = "base"
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(options.BaseScenarioName, base, ce.PlanEngine.ComputePlan(*base))
	baseResult.Description = "Current profile"

	alternatives := []ComparisonResult{}
	addAlternative := func(name, description string, transforms []transform.ProfileTransform) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		modified, err := transform.ApplyTransforms(base, transforms)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(name, modified, ce.PlanEngine.ComputePlan(*modified))
		altResult.Description = description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
		return nil
	}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}
		if err := addAlternative(template.Name, template.Description, template.Transforms); err != nil {
			return nil, err
		}
	}

	for _, spec := range options.Transforms {
		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid transform %q: %w", spec, err)
		}
		if err := addAlternative(spec, t.Description(), []transform.ProfileTransform{t}); err != nil {
			return nil, err
		}
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   options.BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ProfilePath:        options.ProfilePath,
		CurrencySymbol:     ce.PlanEngine.Assumptions.CurrencySymbol,
	}

	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareProfiles compares explicit named profiles against a base profile
func (ce *CompareEngine) CompareProfiles(
	ctx context.Context,
	baseName string,
	base *domain.UserProfile,
	alternatives map[string]*domain.UserProfile,
	order []string,
) (*ComparisonSet, error) {
	if base == nil {
		return nil, fmt.Errorf("base profile cannot be nil")
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, base, ce.PlanEngine.ComputePlan(*base))

	results := []ComparisonResult{}
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		profile, ok := alternatives[name]
		if !ok || profile == nil {
			return nil, fmt.Errorf("alternative profile %s not found", name)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(name, profile, ce.PlanEngine.ComputePlan(*profile))
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		results = append(results, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: results,
		CurrencySymbol:     ce.PlanEngine.Assumptions.CurrencySymbol,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
