package mindmeal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

var chatMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the nutrition assistant",
	Long:  "Ask one question with --message, or start an interactive chat. Piped stdin is read one question per line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			if strings.TrimSpace(chatMessage) != "" {
				reply, err := env.app.Chat.Ask(env.ctx, chatMessage)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
				return nil
			}
			ask := func(question string) {
				reply, err := env.app.Chat.Ask(env.ctx, question)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "mindmeal> %s\n", reply.Content)
			}
			if !stdinIsTerminal() {
				return chatFromReader(cmd.InOrStdin(), ask)
			}
			runChatShell(cmd.OutOrStdout(), ask)
			return nil
		})
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the saved chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			history := env.app.Chat.History()
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages yet")
				return nil
			}
			for _, m := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04"), m.Sender, m.Content)
			}
			return nil
		})
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			if err := env.app.Chat.Clear(env.ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared")
			return nil
		})
	},
}

var chatStarters = []prompt.Suggest{
	{Text: "How can I lose weight?", Description: "weight loss tips"},
	{Text: "How do I gain weight healthily?", Description: "weight gain tips"},
	{Text: "What are good protein sources?", Description: "high protein foods"},
	{Text: "I feel stressed and anxious", Description: "mental wellbeing"},
	{Text: "What should I eat with diabetes?", Description: "blood sugar friendly foods"},
	{Text: "How many calories do I need?", Description: "calorie guidance"},
	{Text: "Suggest some exercise", Description: "activity ideas"},
	{Text: "exit", Description: "leave the chat"},
}

func chatCompleter(d prompt.Document) []prompt.Suggest {
	if d.TextBeforeCursor() == "" {
		return []prompt.Suggest{}
	}
	return prompt.FilterFuzzy(chatStarters, d.TextBeforeCursor(), true)
}

func isChatExit(in string) bool {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}

func runChatShell(out io.Writer, ask func(string)) {
	fmt.Fprintln(out, "Ask about food, weight, exercise or stress. Type exit to leave.")
	p := prompt.New(
		func(in string) {
			in = strings.TrimSpace(in)
			if in == "" || isChatExit(in) {
				return
			}
			ask(in)
		},
		chatCompleter,
		prompt.OptionPrefix("you> "),
		prompt.OptionTitle("MindMeal chat"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && isChatExit(in)
		}),
	)
	p.Run()
	fmt.Fprintln(out, "Take care!")
}

func chatFromReader(r io.Reader, ask func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isChatExit(line) {
			break
		}
		ask(line)
	}
	return scanner.Err()
}

func stdinIsTerminal() bool {
	st, err := os.Stdin.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatHistoryCmd, chatClearCmd)
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Ask a single question and exit")
}
