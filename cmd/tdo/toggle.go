package main

import (
	"fmt"

	"github.com/jdsmith/tdo/internal/cli"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Toggle completion of todo(s)",
	Long: `Flip the completed flag of one or more todos.

Toggling a completed todo makes it active again.

Multiple IDs can be specified (batch mode):
  tdo toggle 2 5 7

In batch mode, todos that exist are toggled and errors are reported
for IDs that couldn't be found.

Examples:
  tdo toggle 2
  tdo done 2 5`,
	Aliases: []string{"done"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	var errs []string
	var toggled int

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if _, ok := s.Get(id); !ok {
			errs = append(errs, (&cli.NotFoundError{ID: id}).Error())
			continue
		}

		s.Toggle(id)
		toggled++

		item, _ := s.Get(id)
		if item.Completed {
			fmt.Printf("#%d done: %s\n", item.ID, item.Text)
		} else {
			fmt.Printf("#%d active again: %s\n", item.ID, item.Text)
		}
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e)
		}
		if toggled == 0 {
			return fmt.Errorf("no todos toggled")
		}
	}

	return nil
}
