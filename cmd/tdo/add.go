package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new todo",
	Long: `Add a new todo to the list.

Multiple arguments are joined with spaces, so quoting is optional.
Leading and trailing whitespace is trimmed; text that trims to
nothing is ignored.

Examples:
  tdo add "Buy milk"
  tdo add Water the plants`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	before := s.Len()
	s.Add(text)

	// The store silently ignores whitespace-only text; surface that
	// to the user here instead.
	if s.Len() == before {
		fmt.Println("ignored: empty text")
		return nil
	}

	items := s.Items()
	added := items[len(items)-1]
	fmt.Printf("Added #%d: %s\n", added.ID, added.Text)
	return nil
}
