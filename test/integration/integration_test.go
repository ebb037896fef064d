package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/chat"
	"github.com/rgehrsitz/finplan/internal/compare"
	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/rgehrsitz/finplan/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleProfile = "../testdata/example_profile.yaml"

func loadExample(t *testing.T) *domain.UserProfile {
	t.Helper()
	profile, err := config.NewInputParser().LoadFromFile(exampleProfile)
	require.NoError(t, err)
	return profile
}

func TestIntegrationSmokeTest(t *testing.T) {
	t.Run("basic_calculation", func(t *testing.T) {
		plan := calculation.NewPlanEngine().ComputePlan(*loadExample(t))

		assert.Equal(t, "420000", plan.EmergencyFundTarget.String())
		assert.InDelta(t, 45209758.50, plan.RetirementCorpus.InexactFloat64(), 0.01)
		require.Len(t, plan.GoalTimelines, 3)

		home, ok := plan.Timeline(domain.GoalHome)
		require.True(t, ok)
		assert.Equal(t, 21, home.Years)

		emergency, ok := plan.Timeline(domain.GoalEmergencyFund)
		require.True(t, ok)
		assert.True(t, emergency.Amount.Equal(plan.EmergencyFundTarget), "the emergency fund goal is priced from the plan")
		assert.Equal(t, 2, emergency.Years)
	})

	t.Run("basic_output_generation", func(t *testing.T) {
		plan := calculation.NewPlanEngine().ComputePlan(*loadExample(t))

		for _, name := range output.AvailableFormatterNames() {
			formatter := output.GetFormatterByName(name, "")
			require.NotNil(t, formatter, name)

			data, err := formatter.Format(&plan)
			require.NoError(t, err, name)
			assert.NotEmpty(t, data, name)
		}
	})
}

func TestDataConsistency(t *testing.T) {
	profile := loadExample(t)
	engine := calculation.NewPlanEngine()

	first := engine.ComputePlan(*profile)
	second := engine.ComputePlan(*profile)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b), "the same profile always yields the same plan")
}

func TestCompareBuiltInTemplates(t *testing.T) {
	engine := compare.NewCompareEngine(nil)
	templates := engine.TemplateRegistry.List()

	compSet, err := engine.Compare(context.Background(), loadExample(t), compare.CompareOptions{
		Templates:   templates,
		ProfilePath: exampleProfile,
	})

	require.NoError(t, err)
	assert.Len(t, compSet.AlternativeResults, len(templates))
	assert.NotEmpty(t, (&compare.TableFormatter{}).Format(compSet))
	assert.NotEmpty(t, compSet.Recommendations)
}

func TestSessionMatchesFilePlan(t *testing.T) {
	answers := []string{
		"30", "Mumbai", "married", "100000", "50000", "100000",
		"20000", "0", "no", "yes", "retirement, home, emergency fund", "moderate",
	}

	store := chat.NewStore()
	s := session.New(store, nil, nil)
	require.NoError(t, s.Start())
	for _, a := range answers {
		require.NoError(t, s.Submit(a))
	}

	fromChat, ok := s.Plan()
	require.True(t, ok)
	fromFile := calculation.NewPlanEngine().ComputePlan(*loadExample(t))

	assert.True(t, fromChat.RetirementCorpus.Equal(fromFile.RetirementCorpus))
	require.Len(t, fromChat.GoalTimelines, len(fromFile.GoalTimelines))
	for i, want := range fromFile.GoalTimelines {
		got := fromChat.GoalTimelines[i]
		assert.Equal(t, want.Goal, got.Goal)
		assert.Equal(t, want.Years, got.Years, want.Goal)
		assert.True(t, want.Amount.Equal(got.Amount), want.Goal)
	}
	assert.Len(t, store.List(), 1)
}
