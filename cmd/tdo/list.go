package main

import (
	"fmt"

	"github.com/jdsmith/tdo/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos in insertion order.

By default all todos are shown. Filter flags:
  --active  Show only todos not yet completed
  --done    Show only completed todos`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

var (
	listActive bool
	listDone   bool
)

func init() {
	listCmd.Flags().BoolVar(&listActive, "active", false, "show only active todos")
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only completed todos")
	listCmd.MarkFlagsMutuallyExclusive("active", "done")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	items := s.Items()
	shown := 0
	for _, item := range items {
		if listActive && item.Completed {
			continue
		}
		if listDone && !item.Completed {
			continue
		}
		text := item.Text
		if item.Completed {
			text = cli.Gray(text)
		}
		fmt.Printf("%s #%d %s\n", cli.Checkbox(item.Completed), item.ID, text)
		shown++
	}

	if shown == 0 {
		fmt.Println("Nothing to do.")
	}
	fmt.Printf("%d active / %d completed / %d total\n",
		s.ActiveCount(), s.CompletedCount(), s.Len())
	return nil
}
