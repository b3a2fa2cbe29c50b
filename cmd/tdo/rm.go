package main

import (
	"fmt"

	"github.com/jdsmith/tdo/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove todo(s)",
	Long: `Remove one or more todos from the list.

Remaining todos keep their IDs and order.

Examples:
  tdo rm 3
  tdo rm 3 4 5`,
	Aliases: []string{"remove"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	var errs []string
	var removed int

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		item, ok := s.Get(id)
		if !ok {
			errs = append(errs, (&cli.NotFoundError{ID: id}).Error())
			continue
		}

		s.Delete(id)
		removed++
		fmt.Printf("Removed #%d: %s\n", item.ID, item.Text)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e)
		}
		if removed == 0 {
			return fmt.Errorf("no todos removed")
		}
	}

	return nil
}
