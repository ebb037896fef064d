// Package session runs a conversational planning session: it asks the
// questionnaire inside a chat and posts the computed plan when done.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/chat"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/output"
	"github.com/rgehrsitz/finplan/internal/questionnaire"
)

const (
	WelcomeMessage       = "Hi! I'm here to help you create a personalized financial independence plan. I'll ask you a few questions to understand your situation better, and then create a customized roadmap for your financial goals. Ready to get started?"
	RestartMessage       = "Let's create a new financial plan for you! Ready to start fresh?"
	CompletionMessage    = "Perfect! I've analyzed all your information and created your personalized financial plan. Here's your complete roadmap to financial independence:"
	FirstQuestionMessage = "We're already at the first question."

	chatTitle = "Financial Plan"
)

var (
	// ErrNotStarted is returned by Submit before Start
	ErrNotStarted = errors.New("session has not been started")
	// ErrComplete is returned by Submit once the plan has been produced
	ErrComplete = errors.New("session is complete; restart to build a new plan")
)

// Session drives one questionnaire at a time through a chat
type Session struct {
	store     *chat.Store
	engine    *calculation.PlanEngine
	questions []questionnaire.Question
	flow      *questionnaire.Flow
	chatID    string
	plan      *domain.FinancialPlan
	logger    calculation.Logger
}

// New creates a session over store and engine. Nil arguments get defaults.
func New(store *chat.Store, engine *calculation.PlanEngine, questions []questionnaire.Question) *Session {
	if store == nil {
		store = chat.NewStore()
	}
	if engine == nil {
		engine = calculation.NewPlanEngine()
	}
	if questions == nil {
		questions = questionnaire.DefaultQuestions()
	}
	return &Session{
		store:     store,
		engine:    engine,
		questions: questions,
		logger:    calculation.NopLogger{},
	}
}

// SetLogger sets the session logger
func (s *Session) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.logger = l
}

// Start opens a chat, greets the user and asks the first question
func (s *Session) Start() error {
	return s.begin(s.store.Open(chatTitle), WelcomeMessage)
}

// StartWith opens a chat from the user's opening message, which also titles
// the chat, then greets and asks the first question. A blank opening behaves
// like Start.
func (s *Session) StartWith(opening string) error {
	if strings.TrimSpace(opening) == "" {
		return s.Start()
	}
	return s.begin(s.store.Create(opening), WelcomeMessage)
}

// Restart abandons the current questionnaire and starts over in a new chat
func (s *Session) Restart() error {
	return s.begin(s.store.Open(chatTitle), RestartMessage)
}

func (s *Session) begin(chatID, greeting string) error {
	s.flow = questionnaire.NewFlow(s.questions)
	s.plan = nil
	s.chatID = chatID
	s.logger.Debugf("session started in chat %s", s.chatID)

	if err := s.say(greeting, chat.KindNormal); err != nil {
		return err
	}
	return s.askCurrent()
}

// Submit records the user's answer to the current question. A rejected
// answer produces a hint and the question is asked again. Blank input is
// ignored and returns questionnaire.ErrEmptyAnswer.
func (s *Session) Submit(text string) error {
	if s.flow == nil {
		return ErrNotStarted
	}
	if s.flow.Done() {
		return ErrComplete
	}
	if strings.TrimSpace(text) == "" {
		return questionnaire.ErrEmptyAnswer
	}

	if err := s.store.AddMessage(s.chatID, chat.RoleUser, text, chat.KindNormal); err != nil {
		return err
	}

	if err := s.flow.Answer(text); err != nil {
		var answerErr *questionnaire.AnswerError
		if !errors.As(err, &answerErr) {
			return err
		}
		s.logger.Debugf("answer rejected: %v", err)
		q, _ := s.flow.Current()
		if err := s.say(hint(answerErr, q), chat.KindNormal); err != nil {
			return err
		}
		return s.askCurrent()
	}

	if !s.flow.Done() {
		return s.askCurrent()
	}
	return s.complete()
}

// Back steps to the previous question and asks it again with the earlier
// answer as a reminder
func (s *Session) Back() error {
	if s.flow == nil {
		return ErrNotStarted
	}
	if s.Done() {
		return ErrComplete
	}
	if !s.flow.Back() {
		return s.say(FirstQuestionMessage, chat.KindNormal)
	}

	q, _ := s.flow.Current()
	prompt := q.Prompt
	if prev, ok := s.flow.RawAnswer(q.ID); ok {
		prompt += fmt.Sprintf(" (previous answer: %s)", prev)
	}
	return s.say(prompt, chat.KindQuestion)
}

func (s *Session) complete() error {
	plan := s.engine.ComputePlan(s.flow.Profile())
	s.plan = &plan

	rendered, err := output.ConsoleFormatter{Symbol: s.engine.Assumptions.CurrencySymbol}.Format(&plan)
	if err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}
	if err := s.say(CompletionMessage, chat.KindNormal); err != nil {
		return err
	}
	return s.say(string(rendered), chat.KindPlan)
}

func (s *Session) askCurrent() error {
	q, ok := s.flow.Current()
	if !ok {
		return nil
	}
	return s.say(q.Prompt, chat.KindQuestion)
}

func (s *Session) say(content string, kind chat.Kind) error {
	return s.store.AddMessage(s.chatID, chat.RoleAssistant, content, kind)
}

func hint(err *questionnaire.AnswerError, q questionnaire.Question) string {
	if errors.Is(err, questionnaire.ErrInvalidOption) {
		return fmt.Sprintf("Sorry, I didn't understand %q. Please answer with one of: %s.",
			strings.TrimSpace(err.Input), strings.Join(q.Options, ", "))
	}
	return "Sorry, I couldn't use that answer. Please try again."
}

// Plan returns the computed plan once the questionnaire is finished
func (s *Session) Plan() (domain.FinancialPlan, bool) {
	if s.plan == nil {
		return domain.FinancialPlan{}, false
	}
	return *s.plan, true
}

// Profile returns the answers collected so far
func (s *Session) Profile() domain.UserProfile {
	if s.flow == nil {
		return domain.UserProfile{}
	}
	return s.flow.Profile()
}

// Done reports whether the plan has been produced
func (s *Session) Done() bool {
	return s.plan != nil
}

// ChatID returns the id of the chat the session writes to
func (s *Session) ChatID() string {
	return s.chatID
}

// History returns every chat in the store, newest first
func (s *Session) History() []chat.Chat {
	return s.store.List()
}

// Messages returns the current chat transcript
func (s *Session) Messages() []chat.Message {
	c, ok := s.store.Get(s.chatID)
	if !ok {
		return nil
	}
	return c.Messages
}
