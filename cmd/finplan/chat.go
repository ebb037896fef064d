package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rgehrsitz/finplan/internal/chat"
	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/questionnaire"
	"github.com/rgehrsitz/finplan/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChatCmd(a *app) *cobra.Command {
	var (
		transcript  string
		profileOut  string
		demoHistory bool
	)

	cmd := &cobra.Command{
		Use:   "chat [opening message]",
		Short: "Build a plan by answering questions interactively",
		Long: `Start a planning conversation on the terminal. Answer each question and
press enter; the plan is printed once every question has been answered.
An opening message, if given, starts the chat and names it.

Commands:
  /back     return to the previous question
  /history  list the chats of this run
  /restart  start over in a new chat
  /quit     leave`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			store := chat.NewStore()
			if demoHistory {
				store.SeedDefaults()
			}
			s := session.New(store, engine, nil)
			s.SetLogger(a.logger.Sugar())

			opening := strings.Join(args, " ")
			if err := runChat(s, opening, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}
			a.logger.Debug("chat finished", zap.String("chat", s.ChatID()), zap.Bool("complete", s.Done()))

			if profileOut != "" {
				if err := saveChatProfile(s, profileOut); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\n", profileOut)
			}

			if transcript == "" {
				return nil
			}
			c, ok := store.Get(s.ChatID())
			if !ok {
				return chat.ErrChatNotFound
			}
			data, err := json.MarshalIndent(c, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode transcript: %w", err)
			}
			if err := os.WriteFile(transcript, data, 0o644); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transcript written to %s\n", transcript)
			return nil
		},
	}

	cmd.Flags().StringVar(&transcript, "transcript", "", "Write the conversation as JSON to this file")
	cmd.Flags().StringVar(&profileOut, "save-profile", "", "Write the answers as a profile YAML file once the plan is built")
	cmd.Flags().BoolVar(&demoHistory, "demo", false, "Preload the demonstration chats into the history")
	return cmd
}

// saveChatProfile writes the finished questionnaire as a profile file that
// plan and compare accept
func saveChatProfile(s *session.Session, path string) error {
	if !s.Done() {
		return fmt.Errorf("profile not saved: the questionnaire was not finished")
	}
	profile := s.Profile()
	if err := config.NewInputParser().ValidateProfile(&profile); err != nil {
		return fmt.Errorf("profile not saved: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer f.Close()
	return config.WriteProfile(f, &profile)
}

// runChat feeds lines from in to the session and echoes assistant messages to
// out until the plan is produced, the user quits or input ends
func runChat(s *session.Session, opening string, in io.Reader, out io.Writer) error {
	if err := s.StartWith(opening); err != nil {
		return err
	}
	shown := printNew(out, s.Messages(), 0)

	scanner := bufio.NewScanner(in)
	for !s.Done() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "/quit", "/exit":
			return nil
		case "/restart":
			if err := s.Restart(); err != nil {
				return err
			}
			shown = printNew(out, s.Messages(), 0)
			continue
		case "/back":
			if err := s.Back(); err != nil {
				return err
			}
			shown = printNew(out, s.Messages(), shown)
			continue
		case "/history":
			printHistory(out, s)
			continue
		}

		if err := s.Submit(line); err != nil {
			if errors.Is(err, questionnaire.ErrEmptyAnswer) {
				continue
			}
			return err
		}
		shown = printNew(out, s.Messages(), shown)
	}
	return scanner.Err()
}

// printHistory lists the store's chats, marking the live one
func printHistory(out io.Writer, s *session.Session) {
	fmt.Fprintln(out, "Chats:")
	for _, c := range s.History() {
		marker := " "
		if c.ID == s.ChatID() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s (%d messages, %s)\n", marker, c.Title, len(c.Messages), humanize.Time(c.CreatedAt))
	}
}

// printNew writes assistant messages after index from and returns the new count
func printNew(out io.Writer, msgs []chat.Message, from int) int {
	for _, m := range msgs[from:] {
		if m.Role != chat.RoleAssistant {
			continue
		}
		if m.Kind == chat.KindPlan {
			fmt.Fprintln(out)
			fmt.Fprint(out, m.Content)
			continue
		}
		fmt.Fprintln(out, m.Content)
	}
	return len(msgs)
}
