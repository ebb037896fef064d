package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in profile templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ProfileTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common "what if" plans
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, risk := range domain.RiskTolerances {
		registry.Register(Template{
			Name:        string(risk),
			Description: fmt.Sprintf("Invest with a %s risk profile", risk),
			Transforms:  []ProfileTransform{&SetRisk{Risk: risk}},
		})
	}

	registry.Register(Template{
		Name:        "save_10pct_more",
		Description: "Save 10% more every month",
		Transforms:  []ProfileTransform{&ScaleSavings{Fraction: decimal.NewFromFloat(0.10)}},
	})

	registry.Register(Template{
		Name:        "save_25pct_more",
		Description: "Save 25% more every month",
		Transforms:  []ProfileTransform{&ScaleSavings{Fraction: decimal.NewFromFloat(0.25)}},
	})

	registry.Register(Template{
		Name:        "start_5yr_later",
		Description: "Start investing 5 years later",
		Transforms:  []ProfileTransform{&DelayStart{Years: 5}},
	})

	registry.Register(Template{
		Name:        "aggressive_save_25pct",
		Description: "Aggressive risk profile and save 25% more",
		Transforms: []ProfileTransform{
			&SetRisk{Risk: domain.RiskAggressive},
			&ScaleSavings{Fraction: decimal.NewFromFloat(0.25)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base profile
func ApplyTemplate(base *domain.UserProfile, template Template) (*domain.UserProfile, error) {
	if base == nil {
		return nil, fmt.Errorf("base profile cannot be nil")
	}
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	categories := map[string][]Template{}
	for _, name := range registry.List() {
		t := registry.templates[name]
		category := "Combination Strategies"
		switch {
		case len(t.Transforms) == 1 && t.Transforms[0].Name() == "set_risk":
			category = "Risk Profiles"
		case strings.HasPrefix(name, "save_"):
			category = "Savings"
		case strings.HasPrefix(name, "start_"):
			category = "Timing"
		}
		categories[category] = append(categories[category], t)
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, category := range []string{"Risk Profiles", "Savings", "Timing", "Combination Strategies"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  finplan compare profile.yaml --templates aggressive,save_10pct_more\n")
	sb.WriteString("  finplan compare profile.yaml --transform adjust_savings:amount=5000\n")

	return sb.String()
}
