package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_risk", createSetRisk)
	registry.Register("set_age", createSetAge)
	registry.Register("delay_start", createDelayStart)
	registry.Register("add_goal", createAddGoal)
	registry.Register("set_insurance", createSetInsurance)
	registry.Register("set_savings", createSetSavings)
	registry.Register("adjust_savings", createAdjustSavings)
	registry.Register("scale_savings", createScaleSavings)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_savings:amount=5000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses several specs, stopping at the first error.
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ProfileTransform, error) {
	transforms := make([]ProfileTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Factory functions for each transform

func requireParam(transform string, params map[string]string, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

func createSetRisk(params map[string]string) (ProfileTransform, error) {
	tier, err := requireParam("set_risk", params, "tier")
	if err != nil {
		return nil, err
	}

	risk, ok := domain.ParseRiskTolerance(tier)
	if !ok {
		return nil, fmt.Errorf("invalid tier value %q, expected one of conservative, moderate, aggressive", tier)
	}

	return &SetRisk{Risk: risk}, nil
}

func createSetAge(params map[string]string) (ProfileTransform, error) {
	ageStr, err := requireParam("set_age", params, "years")
	if err != nil {
		return nil, err
	}

	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, fmt.Errorf("invalid years value: %w", err)
	}

	return &SetAge{Age: age}, nil
}

func createDelayStart(params map[string]string) (ProfileTransform, error) {
	yearsStr, err := requireParam("delay_start", params, "years")
	if err != nil {
		return nil, err
	}

	years, err := strconv.Atoi(yearsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid years value: %w", err)
	}

	return &DelayStart{Years: years}, nil
}

func createAddGoal(params map[string]string) (ProfileTransform, error) {
	goal, err := requireParam("add_goal", params, "goal")
	if err != nil {
		return nil, err
	}

	return &AddGoal{Goal: goal}, nil
}

func createSetInsurance(params map[string]string) (ProfileTransform, error) {
	t := &SetInsurance{}
	for key, dst := range map[string]**bool{"term": &t.Term, "medical": &t.Medical} {
		raw, ok := params[key]
		if !ok {
			continue
		}
		v, err := parseFlag(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", key, err)
		}
		*dst = &v
	}

	if t.Term == nil && t.Medical == nil {
		return nil, fmt.Errorf("set_insurance requires 'term' or 'medical' parameter")
	}
	return t, nil
}

func createSetSavings(params map[string]string) (ProfileTransform, error) {
	amount, err := decimalParam("set_savings", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetSavings{Amount: amount}, nil
}

func createAdjustSavings(params map[string]string) (ProfileTransform, error) {
	amount, err := decimalParam("adjust_savings", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AdjustSavings{Delta: amount}, nil
}

func createScaleSavings(params map[string]string) (ProfileTransform, error) {
	pct, err := decimalParam("scale_savings", params, "percent")
	if err != nil {
		return nil, err
	}
	return &ScaleSavings{Fraction: pct.Div(decimal.NewFromInt(100))}, nil
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, err := requireParam(transform, params, key)
	if err != nil {
		return decimal.Zero, err
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes or no, got %q", s)
	}
}
