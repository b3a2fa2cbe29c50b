package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed todos",
	Long: `Remove all completed todos from the list.

With --all, the entire list is emptied instead. Emptying the list
asks for confirmation unless --force is given.

Examples:
  tdo clear
  tdo clear --all
  tdo clear --all --force`,
	RunE: runClear,
}

var (
	clearAll   bool
	clearForce bool
)

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "remove every todo, not just completed ones")
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if clearAll {
		if !clearForce && !confirm(fmt.Sprintf("Remove all %d todos?", s.Len())) {
			fmt.Println("Aborted.")
			return nil
		}
		s.ClearAll()
		fmt.Println("Cleared all todos.")
		return nil
	}

	completed := s.CompletedCount()
	s.ClearCompleted()
	fmt.Printf("Cleared %d completed todo(s), %d remaining.\n", completed, s.Len())
	return nil
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
