package session

import (
	"testing"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/chat"
	"github.com/rgehrsitz/finplan/internal/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answers = []string{
	"30", "Mumbai", "married", "100000", "50000", "100000",
	"20000", "0", "no", "yes", "retirement, home", "moderate",
}

func TestSession_StartGreetsAndAsks(t *testing.T) {
	s := New(nil, nil, nil)
	require.NoError(t, s.Start())

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, WelcomeMessage, msgs[0].Content)
	assert.Equal(t, chat.RoleAssistant, msgs[0].Role)
	assert.Equal(t, chat.KindQuestion, msgs[1].Kind)
	assert.Contains(t, msgs[1].Content, "What's your age?")
	assert.False(t, s.Done())
}

func TestSession_SubmitBeforeStart(t *testing.T) {
	s := New(nil, nil, nil)
	assert.ErrorIs(t, s.Submit("30"), ErrNotStarted)
}

func TestSession_FullConversation(t *testing.T) {
	store := chat.NewStore()
	s := New(store, calculation.NewPlanEngine(), nil)
	require.NoError(t, s.Start())

	for _, a := range answers {
		require.NoError(t, s.Submit(a))
	}

	require.True(t, s.Done())
	plan, ok := s.Plan()
	require.True(t, ok)
	assert.Equal(t, "420000", plan.EmergencyFundTarget.String())
	assert.InDelta(t, 45209758.50, plan.RetirementCorpus.InexactFloat64(), 0.01)

	msgs := s.Messages()
	// welcome, 12 x (question + answer), completion, plan
	require.Len(t, msgs, 1+2*len(answers)+2)
	assert.Equal(t, CompletionMessage, msgs[len(msgs)-2].Content)
	last := msgs[len(msgs)-1]
	assert.Equal(t, chat.KindPlan, last.Kind)
	assert.Contains(t, last.Content, "YOUR PERSONALIZED FINANCIAL PLAN")
	assert.Contains(t, last.Content, "₹4.5 Cr")

	assert.ErrorIs(t, s.Submit("more"), ErrComplete)

	c, ok := store.Get(s.ChatID())
	require.True(t, ok)
	assert.Equal(t, "Financial Plan", c.Title)
}

func TestSession_BlankInputIgnored(t *testing.T) {
	s := New(nil, nil, nil)
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.Submit("  "), questionnaire.ErrEmptyAnswer)
	assert.Len(t, s.Messages(), 2, "blank input is not recorded")
}

func TestSession_InvalidOptionReasks(t *testing.T) {
	s := New(nil, nil, nil)
	require.NoError(t, s.Start())
	require.NoError(t, s.Submit("30"))
	require.NoError(t, s.Submit("Delhi"))

	require.NoError(t, s.Submit("its complicated"))

	msgs := s.Messages()
	n := len(msgs)
	assert.Equal(t, chat.RoleUser, msgs[n-3].Role)
	assert.Contains(t, msgs[n-2].Content, "single, married, divorced, widowed")
	assert.Equal(t, chat.KindQuestion, msgs[n-1].Kind)
	assert.Contains(t, msgs[n-1].Content, "marital status")
	assert.Empty(t, s.Profile().MaritalStatus)
}

func TestSession_Restart(t *testing.T) {
	store := chat.NewStore()
	s := New(store, nil, nil)
	require.NoError(t, s.Start())
	first := s.ChatID()
	require.NoError(t, s.Submit("45"))

	require.NoError(t, s.Restart())

	assert.NotEqual(t, first, s.ChatID())
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RestartMessage, msgs[0].Content)
	assert.Nil(t, s.Profile().Age)
	_, ok := s.Plan()
	assert.False(t, ok)
	assert.Len(t, store.List(), 2, "the abandoned chat stays in the store")
}

func TestSession_CustomQuestions(t *testing.T) {
	qs := questionnaire.DefaultQuestions()[:1]
	s := New(nil, nil, qs)
	require.NoError(t, s.Start())
	require.NoError(t, s.Submit("40"))

	plan, ok := s.Plan()
	require.True(t, ok)
	assert.True(t, plan.MonthlyInvestment.IsZero())
	assert.True(t, plan.RetirementCorpus.IsZero())
}

func TestSession_StartWithOpening(t *testing.T) {
	store := chat.NewStore()
	s := New(store, nil, nil)
	require.NoError(t, s.StartWith("Help me retire early please"))

	c, ok := store.Get(s.ChatID())
	require.True(t, ok)
	assert.Equal(t, "Help me retire early", c.Title)
	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.RoleUser, msgs[0].Role)
	assert.Equal(t, WelcomeMessage, msgs[1].Content)
	assert.Equal(t, chat.KindQuestion, msgs[2].Kind)

	blank := New(store, nil, nil)
	require.NoError(t, blank.StartWith("   "))
	c, _ = store.Get(blank.ChatID())
	assert.Equal(t, "Financial Plan", c.Title)
}

func TestSession_Back(t *testing.T) {
	s := New(nil, nil, nil)
	assert.ErrorIs(t, s.Back(), ErrNotStarted)

	require.NoError(t, s.Start())
	require.NoError(t, s.Back())
	msgs := s.Messages()
	assert.Equal(t, FirstQuestionMessage, msgs[len(msgs)-1].Content)

	require.NoError(t, s.Submit("30"))
	require.NoError(t, s.Back())

	msgs = s.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, chat.KindQuestion, last.Kind)
	assert.Contains(t, last.Content, "What's your age?")
	assert.Contains(t, last.Content, "(previous answer: 30)")

	require.NoError(t, s.Submit("42"))
	assert.Equal(t, 42, *s.Profile().Age)
}

func TestSession_BackAfterPlan(t *testing.T) {
	s := New(nil, nil, questionnaire.DefaultQuestions()[:1])
	require.NoError(t, s.Start())
	require.NoError(t, s.Submit("40"))

	assert.ErrorIs(t, s.Back(), ErrComplete)
}

func TestSession_History(t *testing.T) {
	store := chat.NewStore()
	store.SeedDefaults()
	s := New(store, nil, nil)
	require.NoError(t, s.Start())

	history := s.History()
	require.Len(t, history, 4)
	assert.Equal(t, s.ChatID(), history[0].ID, "the live chat is newest")
	assert.Equal(t, "Investment Strategy", history[3].Title)
}
