package cmd

import (
	"fmt"

	"competency-matrix/feature/query"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <role> <level>",
	Short: "Show the competencies of a role at one level",
	Long:  `Prints the core competencies of a role at the given level ("L3", "3" or a display string). Complementary competencies and indicators follow the configured defaults unless overridden by flags.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		queries, err := lib.Queries()
		if err != nil {
			return err
		}

		opts := lib.CompetencyOptions()
		if cmd.Flags().Changed("complementary") {
			opts.IncludeComplementary, _ = cmd.Flags().GetBool("complementary")
		}
		if cmd.Flags().Changed("indicators") {
			opts.IncludeIndicators, _ = cmd.Flags().GetBool("indicators")
		}

		competencies, err := queries.GetCompetencies(args[0], args[1], opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(competencies)
		}

		printCompetencies(competencies)
		return nil
	},
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next <role> <level>",
	Short: "Show the next level of a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		queries, err := lib.Queries()
		if err != nil {
			return err
		}

		next, err := queries.GetNextLevel(args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(next)
	},
}

func printCompetencies(c *query.Competencies) {
	fmt.Printf("%s - %s (%s)\n", c.Role, c.Level, c.Code)
	if c.YearsRange.Max != nil {
		fmt.Printf("Experience: %d-%d years\n", c.YearsRange.Min, *c.YearsRange.Max)
	} else {
		fmt.Printf("Experience: %d+ years\n", c.YearsRange.Min)
	}

	fmt.Println("\nCore competencies:")
	for _, item := range c.Core {
		fmt.Printf("  - %s\n", item)
	}
	if len(c.Complementary) > 0 {
		fmt.Println("\nComplementary competencies:")
		for _, item := range c.Complementary {
			fmt.Printf("  - %s\n", item)
		}
	}
	if len(c.Indicators) > 0 {
		fmt.Println("\nIndicators:")
		for _, item := range c.Indicators {
			fmt.Printf("  - %s\n", item)
		}
	}
}

func init() {
	RootCmd.AddCommand(showCmd, nextCmd)
	showCmd.Flags().Bool("json", false, "Output JSON format")
	showCmd.Flags().Bool("complementary", false, "Include complementary competencies")
	showCmd.Flags().Bool("indicators", false, "Include level indicators")
}
