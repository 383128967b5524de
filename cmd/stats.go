package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}

		stats, err := lib.Statistics()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stats)
		}

		fmt.Println("=== Dataset Statistics ===")
		fmt.Printf("Roles: %d\n", stats.TotalRoles)
		fmt.Printf("Categories: %d\n", stats.TotalCategories)
		fmt.Printf("Entries: %d\n", stats.TotalEntries)
		fmt.Printf("Average entries per role: %d\n", stats.AverageEntriesPerRole)
		for category, count := range stats.ByCategory {
			fmt.Printf("  %s: %d\n", category, count)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("json", false, "Output JSON format")
}
