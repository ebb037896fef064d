// Package chat keeps planning conversations in memory.
package chat

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrChatNotFound is returned when a chat id is not in the store
var ErrChatNotFound = errors.New("chat not found")

// Role identifies who wrote a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Kind tells front ends how to render a message
type Kind string

const (
	KindNormal   Kind = "normal"
	KindQuestion Kind = "question"
	KindPlan     Kind = "plan"
)

// Message is one entry in a chat
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
}

// Chat is a titled conversation
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Chat) copy() Chat {
	out := *c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}

// Store holds chats in memory. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	chats map[string]*Chat
	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		chats: make(map[string]*Chat),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetClock replaces the time source; nil restores time.Now
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Create starts a chat whose first message is the user's initial text and
// returns its id. The title is derived from that text.
func (s *Store) Create(initial string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := s.newID()
	s.chats[id] = &Chat{
		ID:    id,
		Title: TitleFromMessage(initial),
		Messages: []Message{{
			ID:        s.newID(),
			Role:      RoleUser,
			Content:   initial,
			Timestamp: now,
			Kind:      KindNormal,
		}},
		CreatedAt: now,
	}
	return id
}

// Open starts an empty chat with the given title and returns its id
func (s *Store) Open(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	s.chats[id] = &Chat{ID: id, Title: title, CreatedAt: s.now()}
	return id
}

// Get returns a copy of the chat
func (s *Store) Get(id string) (Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.chats[id]
	if !ok {
		return Chat{}, false
	}
	return c.copy(), true
}

// AddMessage appends a message to an existing chat
func (s *Store) AddMessage(id string, role Role, content string, kind Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return ErrChatNotFound
	}
	if kind == "" {
		kind = KindNormal
	}
	c.Messages = append(c.Messages, Message{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
		Kind:      kind,
	})
	return nil
}

// List returns copies of every chat, newest first
func (s *Store) List() []Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Chat, 0, len(s.chats))
	for _, c := range s.chats {
		out = append(out, c.copy())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SeedDefaults adds the demonstration chats shown to a new user. Existing
// chats with the same ids are replaced.
func (s *Store) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	seeds := []struct {
		id, title string
		age       time.Duration
	}{
		{"investment-strategy", "Investment Strategy", 24 * time.Hour},
		{"budget-planning", "Budget Planning", 12 * time.Hour},
		{"retirement-goals", "Retirement Goals", 6 * time.Hour},
	}
	for _, seed := range seeds {
		s.chats[seed.id] = &Chat{
			ID:        seed.id,
			Title:     seed.title,
			CreatedAt: now.Add(-seed.age),
		}
	}
}

const (
	titleWords  = 4
	titleMaxLen = 30
)

// TitleFromMessage uses the first four words of a message, shortened with
// an ellipsis when over 30 characters
func TitleFromMessage(message string) string {
	words := strings.Split(message, " ")
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	title := strings.Join(words, " ")
	if r := []rune(title); len(r) > titleMaxLen {
		return string(r[:titleMaxLen-3]) + "..."
	}
	return title
}
