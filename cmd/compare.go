package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <role1> <role2>",
	Short: "Compare the competency sets of two roles at the same level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		level, _ := cmd.Flags().GetString("level")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		comparisons, err := lib.Comparisons()
		if err != nil {
			return err
		}

		result, err := comparisons.CompareRoles(args[0], args[1], level)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(result)
		}

		fmt.Printf("=== %s vs %s at %s ===\n", result.Role1.Role, result.Role2.Role, result.Level)
		fmt.Printf("Similarity: %.3f\n", result.Similarity)
		fmt.Printf("Common: %d\n", len(result.Common))
		fmt.Printf("Unique to %s: %d\n", result.Role1.Role, len(result.Role1.Unique))
		fmt.Printf("Unique to %s: %d\n", result.Role2.Role, len(result.Role2.Unique))
		return nil
	},
}

// similarCmd represents the similar command
var similarCmd = &cobra.Command{
	Use:   "similar <role>",
	Short: "Find roles similar to the given one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		comparisons, err := lib.Comparisons()
		if err != nil {
			return err
		}

		results, err := comparisons.FindSimilarRoles(args[0], threshold)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(results)
		}

		for _, r := range results {
			fmt.Printf("%-30s similarity=%.3f common=%d\n", r.Role, r.Similarity, r.CommonCount)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd, similarCmd)
	compareCmd.Flags().Bool("json", false, "Output JSON format")
	compareCmd.Flags().String("level", "L3", "Level to compare at")
	similarCmd.Flags().Bool("json", false, "Output JSON format")
	similarCmd.Flags().Float64("threshold", 0, "Minimum similarity (default 0.3)")
}
