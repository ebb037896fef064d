package transform

import (
	"testing"

	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "My_Template", Description: "test"})

	got, ok := registry.Get("my_template")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "test", got.Description)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	expected := []string{
		"aggressive", "aggressive_save_25pct", "conservative", "moderate",
		"save_10pct_more", "save_25pct_more", "start_5yr_later",
	}
	assert.Equal(t, expected, registry.List())

	for _, name := range expected {
		tmpl, _ := registry.Get(name)
		assert.NotEmpty(t, tmpl.Description, name)
		assert.NotEmpty(t, tmpl.Transforms, name)
	}
}

func TestApplyTemplate_BuiltIns(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := createTestProfile()

	tests := []struct {
		template string
		check    func(t *testing.T, p *domain.UserProfile)
	}{
		{"conservative", func(t *testing.T, p *domain.UserProfile) {
			assert.Equal(t, domain.RiskConservative, p.RiskTolerance)
		}},
		{"save_10pct_more", func(t *testing.T, p *domain.UserProfile) {
			assert.True(t, p.MonthlySavingCapacity.Equal(decimal.NewFromInt(22000)), "got %s", p.MonthlySavingCapacity)
		}},
		{"start_5yr_later", func(t *testing.T, p *domain.UserProfile) {
			assert.Equal(t, 35, *p.Age)
		}},
		{"aggressive_save_25pct", func(t *testing.T, p *domain.UserProfile) {
			assert.Equal(t, domain.RiskAggressive, p.RiskTolerance)
			assert.True(t, p.MonthlySavingCapacity.Equal(decimal.NewFromInt(25000)))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tmpl, ok := registry.Get(tt.template)
			require.True(t, ok)

			result, err := ApplyTemplate(base, tmpl)
			require.NoError(t, err)
			tt.check(t, result)
		})
	}

	assert.Equal(t, domain.RiskModerate, base.RiskTolerance, "base profile must not change")
}

func TestApplyTemplate_EmptyAndNil(t *testing.T) {
	base := createTestProfile()

	result, err := ApplyTemplate(base, Template{Name: "noop"})
	require.NoError(t, err)
	assert.NotSame(t, base, result)

	_, err = ApplyTemplate(nil, Template{Name: "noop"})
	assert.Error(t, err)
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"aggressive", "save_10pct_more"}, ParseTemplateList(" aggressive, ,save_10pct_more "))
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	assert.Contains(t, help, "Risk Profiles:")
	assert.Contains(t, help, "Savings:")
	assert.Contains(t, help, "Timing:")
	assert.Contains(t, help, "Combination Strategies:")
	assert.Contains(t, help, "start_5yr_later")
	assert.Contains(t, help, "finplan compare")

	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}
