package main

import (
	"fmt"
	"strings"

	"github.com/jdsmith/tdo/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>...",
	Short: "Replace the text of a todo",
	Long: `Replace the text of an existing todo.

The new text is trimmed; text that trims to nothing leaves the todo
unchanged.

Examples:
  tdo edit 3 "Buy oat milk"
  tdo edit 3 Buy oat milk`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if _, ok := s.Get(id); !ok {
		return &cli.NotFoundError{ID: id}
	}

	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		fmt.Println("ignored: empty text")
		return nil
	}

	s.Update(id, text)

	item, _ := s.Get(id)
	fmt.Printf("#%d is now: %s\n", item.ID, item.Text)
	return nil
}
