package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// careerCmd represents the career command
var careerCmd = &cobra.Command{
	Use:   "career <role>",
	Short: "Show the full career-path breakdown for a role",
	Long:  `Partitions the role's levels into mastered, current and growth relative to --current, with competency aggregates and an overall progress percentage.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		current, _ := cmd.Flags().GetString("current")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		queries, err := lib.Queries()
		if err != nil {
			return err
		}

		path, err := queries.GetCareerPathComplete(args[0], current)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(path)
		}

		fmt.Printf("=== Career path for %s (current %s) ===\n", path.Role, path.CurrentLevel.Level)
		fmt.Printf("Mastered levels: %d\n", len(path.MasteredLevels))
		fmt.Printf("Growth path: %d levels\n", len(path.GrowthPath))
		fmt.Printf("Progress: %d%%\n", path.Summary.ProgressPercentage)
		return nil
	},
}

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path <role>",
	Short: "Plan the progression between two levels of a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		withGaps, _ := cmd.Flags().GetBool("gaps")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		comparisons, err := lib.Comparisons()
		if err != nil {
			return err
		}

		if withGaps {
			gaps, err := comparisons.GetCompetencyGaps(args[0], from, to)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(gaps)
			}
			fmt.Printf("=== Gaps for %s, %s -> %s ===\n", gaps.Role, gaps.FromLevel, gaps.ToLevel)
			for category, items := range gaps.Gaps {
				fmt.Printf("%s:\n", category)
				for _, item := range items {
					fmt.Printf("  - %s\n", item)
				}
			}
			fmt.Printf("Estimated learning time: %d weeks (~%d months)\n",
				gaps.EstimatedLearningTime.Weeks, gaps.EstimatedLearningTime.Months)
			return nil
		}

		path, err := comparisons.GetCareerPath(args[0], from, to)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(path)
		}
		fmt.Printf("=== Path for %s, %s -> %s ===\n", path.Role, path.FromLevel, path.ToLevel)
		for _, step := range path.Steps {
			fmt.Printf("%s (%s)", step.Level, step.Code)
			if len(step.NewCompetencies) > 0 {
				fmt.Printf(" new: %s", strings.Join(step.NewCompetencies, "; "))
			}
			fmt.Println()
		}
		fmt.Printf("Total new competencies: %d\n", path.TotalNewCompetencies)
		return nil
	},
}

// experienceCmd represents the experience command
var experienceCmd = &cobra.Command{
	Use:   "experience <role> <years>",
	Short: "Resolve the level of a role for a given experience",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var years float64
		if _, err := fmt.Sscanf(args[1], "%f", &years); err != nil {
			return fmt.Errorf("invalid years value %q", args[1])
		}

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		queries, err := lib.Queries()
		if err != nil {
			return err
		}

		entry, err := queries.GetByExperience(args[0], years)
		if err != nil {
			return err
		}
		return printJSON(entry)
	},
}

func init() {
	RootCmd.AddCommand(careerCmd, pathCmd, experienceCmd)
	careerCmd.Flags().Bool("json", false, "Output JSON format")
	careerCmd.Flags().String("current", "L1", "Current level")
	pathCmd.Flags().Bool("json", false, "Output JSON format")
	pathCmd.Flags().String("from", "L1", "Starting level")
	pathCmd.Flags().String("to", "L9", "Target level")
	pathCmd.Flags().Bool("gaps", false, "Report categorized competency gaps instead of steps")
}
