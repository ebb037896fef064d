package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/finplan/internal/domain"
)

// SetRisk replaces the profile's risk tolerance tier.
type SetRisk struct {
	Risk domain.RiskTolerance
}

func (sr *SetRisk) Name() string {
	return "set_risk"
}

func (sr *SetRisk) Description() string {
	return fmt.Sprintf("Switch to a %s risk profile", sr.Risk)
}

func (sr *SetRisk) Validate(base *domain.UserProfile) error {
	if !sr.Risk.IsValid() {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("unknown risk tolerance %q", sr.Risk), nil)
	}
	return requireBase(sr.Name(), base)
}

func (sr *SetRisk) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	modified.RiskTolerance = sr.Risk.Normalize()
	return modified, nil
}

// SetAge sets the profile's current age.
type SetAge struct {
	Age int
}

func (sa *SetAge) Name() string {
	return "set_age"
}

func (sa *SetAge) Description() string {
	return fmt.Sprintf("Start planning at age %d", sa.Age)
}

func (sa *SetAge) Validate(base *domain.UserProfile) error {
	if sa.Age <= 0 || sa.Age > 120 {
		return NewTransformError(sa.Name(), "validate", fmt.Sprintf("age must be between 1 and 120, got %d", sa.Age), nil)
	}
	return requireBase(sa.Name(), base)
}

func (sa *SetAge) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	modified.Age = domain.IntPtr(sa.Age)
	return modified, nil
}

// DelayStart models starting to invest some years later by ageing the
// profile. A profile without an age starts from DefaultAge.
type DelayStart struct {
	Years      int
	DefaultAge int
}

func (ds *DelayStart) Name() string {
	return "delay_start"
}

func (ds *DelayStart) Description() string {
	return fmt.Sprintf("Start investing %d years later", ds.Years)
}

func (ds *DelayStart) Validate(base *domain.UserProfile) error {
	if ds.Years < 0 {
		return NewTransformError(ds.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", ds.Years), nil)
	}
	return requireBase(ds.Name(), base)
}

func (ds *DelayStart) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()

	age := ds.DefaultAge
	if age <= 0 {
		age = domain.DefaultAssumptions().DefaultAge
	}
	if base.Age != nil && *base.Age != 0 {
		age = *base.Age
	}
	modified.Age = domain.IntPtr(age + ds.Years)
	return modified, nil
}

// AddGoal appends a goal tag. Duplicate tags are kept, as when entered by hand.
type AddGoal struct {
	Goal string
}

func (ag *AddGoal) Name() string {
	return "add_goal"
}

func (ag *AddGoal) Description() string {
	return fmt.Sprintf("Add goal %q", ag.Goal)
}

func (ag *AddGoal) Validate(base *domain.UserProfile) error {
	if strings.TrimSpace(ag.Goal) == "" {
		return NewTransformError(ag.Name(), "validate", "goal cannot be empty", nil)
	}
	return requireBase(ag.Name(), base)
}

func (ag *AddGoal) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	modified.Goals = append(modified.Goals, strings.ToLower(strings.TrimSpace(ag.Goal)))
	return modified, nil
}

// SetInsurance sets the insurance flags. Nil fields are left unchanged.
type SetInsurance struct {
	Term    *bool
	Medical *bool
}

func (si *SetInsurance) Name() string {
	return "set_insurance"
}

func (si *SetInsurance) Description() string {
	var parts []string
	if si.Term != nil {
		parts = append(parts, fmt.Sprintf("term cover %s", yesNo(*si.Term)))
	}
	if si.Medical != nil {
		parts = append(parts, fmt.Sprintf("medical cover %s", yesNo(*si.Medical)))
	}
	return "Set " + strings.Join(parts, " and ")
}

func (si *SetInsurance) Validate(base *domain.UserProfile) error {
	if si.Term == nil && si.Medical == nil {
		return NewTransformError(si.Name(), "validate", "at least one of term or medical must be set", nil)
	}
	return requireBase(si.Name(), base)
}

func (si *SetInsurance) Apply(base *domain.UserProfile) (*domain.UserProfile, error) {
	modified := base.DeepCopy()
	if si.Term != nil {
		modified.HasTermInsurance = *si.Term
	}
	if si.Medical != nil {
		modified.HasMedicalInsurance = *si.Medical
	}
	return modified, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
