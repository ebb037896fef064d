package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/finplan/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfile = `age: 30
monthly_income: 100000
monthly_saving_capacity: 20000
risk_tolerance: moderate
goals: [retirement, home]
has_medical_insurance: true
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes a fresh command tree with an isolated settings location
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "finplan", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range newRootCmd().Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"plan", "validate", "compare", "chat", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "finplan")
	assert.Contains(t, out, "compare")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "finplan dev (commit none, built unknown)")
}

func TestPlanCommand_Console(t *testing.T) {
	out, err := run(t, "", "plan", writeTemp(t, "profile.yaml", testProfile))

	require.NoError(t, err)
	assert.Contains(t, out, "YOUR PERSONALIZED FINANCIAL PLAN")
	assert.Contains(t, out, "₹4.2 L")
	assert.Contains(t, out, "₹4.5 Cr")
}

func TestPlanCommand_JSONFromStdin(t *testing.T) {
	out, err := run(t, testProfile, "plan", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "420000", decoded["emergency_fund_target"])
	assert.Equal(t, "20000", decoded["monthly_investment"])
	assert.Len(t, decoded["goal_timelines"], 2)
}

func TestPlanCommand_CSVAlias(t *testing.T) {
	out, err := run(t, testProfile, "plan", "-", "-f", "csv")
	require.NoError(t, err)

	_, err = csv.NewReader(strings.NewReader(out)).ReadAll()
	assert.NoError(t, err)
}

func TestPlanCommand_DefaultFormatFromSettings(t *testing.T) {
	settings := writeTemp(t, "config.toml", "[general]\ndefault_format = \"yaml\"\ncurrency_symbol = \"$\"\n")

	out, err := run(t, testProfile, "--config", settings, "plan")

	require.NoError(t, err)
	assert.Contains(t, out, "emergency_fund_target: \"420000.00\"")
}

func TestPlanCommand_Errors(t *testing.T) {
	_, err := run(t, testProfile, "plan", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown format \"pdf\"")

	_, err = run(t, "", "plan", "missing.yaml")
	assert.ErrorContains(t, err, "failed to read file")

	bad := writeTemp(t, "config.toml", "[assumptions]\nexpense_ratio = 3.0\n")
	_, err = run(t, testProfile, "--config", bad, "plan")
	assert.ErrorContains(t, err, "expense ratio")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "", "validate", writeTemp(t, "profile.yaml", testProfile))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = run(t, "", "validate", writeTemp(t, "bad.yaml", "risk_tolerance: reckless\n"))
	assert.ErrorContains(t, err, "profile validation failed")

	_, err = run(t, "", "validate")
	assert.Error(t, err, "a file argument is required")
}

func TestValidateCommand_Normalize(t *testing.T) {
	path := writeTemp(t, "profile.yaml", "age: 41\nrisk_tolerance: Aggressive\nmarital_status: Single\ngoals: [\" Home \", Travel]\n")

	out, err := run(t, "", "validate", "--normalize", path)
	require.NoError(t, err)
	assert.Contains(t, out, "risk_tolerance: aggressive")
	assert.Contains(t, out, "marital_status: single")
	assert.Contains(t, out, "- home")
	assert.NotContains(t, out, "is valid")

	again, err := run(t, "", "validate", writeTemp(t, "normalized.yaml", out))
	require.NoError(t, err)
	assert.Contains(t, again, "is valid")
}

func TestCompareCommand_Templates(t *testing.T) {
	profile := writeTemp(t, "profile.yaml", testProfile)

	out, err := run(t, "", "compare", profile, "--templates", "aggressive,save_25pct_more")

	require.NoError(t, err)
	assert.Contains(t, out, "FINANCIAL PLAN COMPARISON")
	assert.Contains(t, out, "Profile: "+profile)
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestCompareCommand_TransformJSON(t *testing.T) {
	out, err := run(t, testProfile, "compare", "--transform", "adjust_savings:amount=5000", "--base", "me", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "me", decoded["baseScenarioName"])
	assert.Len(t, decoded["alternativeResults"], 1)
}

func TestCompareCommand_Against(t *testing.T) {
	other := writeTemp(t, "later.yaml", strings.Replace(testProfile, "age: 30", "age: 40", 1))

	out, err := run(t, testProfile, "compare", "--against", other, "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "later", records[2][0])
}

func TestCompareCommand_Compact(t *testing.T) {
	out, err := run(t, testProfile, "compare", "--templates", "conservative", "--compact")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Base: base | conservative: -"))
}

func TestCompareCommand_ListTemplates(t *testing.T) {
	out, err := run(t, "", "compare", "--list-templates")

	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates")
	assert.Contains(t, out, "save_10pct_more")
}

func TestCompareCommand_Errors(t *testing.T) {
	_, err := run(t, testProfile, "compare")
	assert.ErrorContains(t, err, "nothing to compare")

	_, err = run(t, testProfile, "compare", "--templates", "aggressive", "--against", "x.yaml")
	assert.ErrorContains(t, err, "cannot be combined")

	_, err = run(t, testProfile, "compare", "--templates", "nope")
	assert.ErrorContains(t, err, "template nope not found")

	_, err = run(t, testProfile, "compare", "--templates", "aggressive", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestChatCommand_FullConversation(t *testing.T) {
	answers := []string{
		"30", "Mumbai", "maybe", "married", "100000", "50000", "100000",
		"20000", "0", "no", "yes", "retirement, home", "moderate",
	}
	transcript := filepath.Join(t.TempDir(), "chat.json")

	out, err := run(t, strings.Join(answers, "\n")+"\n", "chat", "--transcript", transcript)

	require.NoError(t, err)
	assert.Contains(t, out, session.WelcomeMessage)
	assert.Contains(t, out, "Sorry, I didn't understand \"maybe\"")
	assert.Contains(t, out, session.CompletionMessage)
	assert.Contains(t, out, "YOUR PERSONALIZED FINANCIAL PLAN")

	data, err := os.ReadFile(transcript)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Financial Plan", decoded["title"])
}

func TestChatCommand_SaveProfile(t *testing.T) {
	answers := []string{
		"30", "Mumbai", "Married", "100000", "50000", "100000",
		"20000", "6", "no", "yes", "retirement, home", "moderate",
	}
	profilePath := filepath.Join(t.TempDir(), "me.yaml")

	out, err := run(t, strings.Join(answers, "\n")+"\n", "chat", "--save-profile", profilePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile written to "+profilePath)

	data, err := os.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "marital_status: married")

	out, err = run(t, "", "plan", profilePath)
	require.NoError(t, err)
	assert.Contains(t, out, "₹4.5 Cr")
}

func TestChatCommand_SaveProfileUnfinished(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "me.yaml")

	_, err := run(t, "30\n", "chat", "--save-profile", profilePath)

	assert.ErrorContains(t, err, "not finished")
	assert.NoFileExists(t, profilePath)
}

func TestChatCommand_BackAndHistory(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "chat.json")

	out, err := run(t, "/back\n30\n/back\n/history\n/quit\n",
		"chat", "--demo", "--transcript", transcript, "Plan", "my", "early", "retirement", "please")

	require.NoError(t, err)
	assert.Contains(t, out, session.FirstQuestionMessage)
	assert.Contains(t, out, "(previous answer: 30)")
	assert.Contains(t, out, "* Plan my early retirement (")
	assert.Contains(t, out, "  Investment Strategy (0 messages, 1 day ago)")

	data, err := os.ReadFile(transcript)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Plan my early retirement", decoded["title"])
}

func TestChatCommand_RestartAndQuit(t *testing.T) {
	out, err := run(t, "30\n\n/restart\n/quit\nnever read\n", "chat")

	require.NoError(t, err)
	assert.Contains(t, out, session.RestartMessage)
	assert.NotContains(t, out, session.CompletionMessage)
}

func TestChatCommand_EndOfInput(t *testing.T) {
	out, err := run(t, "30\n", "chat")

	require.NoError(t, err)
	assert.Contains(t, out, session.WelcomeMessage)
	assert.NotContains(t, out, "YOUR PERSONALIZED FINANCIAL PLAN")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplan", "config.toml")

	out, err := run(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "Retirement age:        60")
	assert.Contains(t, out, "₹5,000,000")

	out, err = run(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings written to "+path)

	_, err = run(t, "", "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "", "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: loaded")
}
