package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show todo counts",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	fmt.Printf("active:    %d\n", s.ActiveCount())
	fmt.Printf("completed: %d\n", s.CompletedCount())
	fmt.Printf("total:     %d\n", s.Len())
	return nil
}
