package cmd

import (
	"fmt"
	"strings"

	"competency-matrix/feature/search"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search roles by name or category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		limit, _ := cmd.Flags().GetInt("limit")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		searcher, err := lib.Search()
		if err != nil {
			return err
		}

		if limit <= 0 {
			limit = lib.SearchLimit()
		}
		results, err := searcher.Search(strings.Join(args, " "), search.Options{Limit: limit})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(results)
		}

		fmt.Printf("Results: %d\n\n", len(results))
		for _, r := range results {
			fmt.Printf("%-30s %-15s score=%d matched=%s\n",
				r.Role, r.Category, r.MatchScore, strings.Join(r.MatchedIn, ","))
		}
		return nil
	},
}

// competencyCmd represents the competency command
var competencyCmd = &cobra.Command{
	Use:   "competency <text>",
	Short: "Search entries by competency text",
	Long:  `Performs a case-insensitive substring search over core and complementary competencies. With --roles the matches are regrouped per role.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		byRole, _ := cmd.Flags().GetBool("roles")
		text := strings.Join(args, " ")

		lib, _, err := newLibrary()
		if err != nil {
			return err
		}
		searcher, err := lib.Search()
		if err != nil {
			return err
		}

		if byRole {
			results, err := searcher.FindRolesWithCompetency(text)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(results)
			}
			for _, r := range results {
				fmt.Printf("%-30s matches=%d codes=%s\n", r.Role, r.Matches, strings.Join(r.Codes, ","))
			}
			return nil
		}

		results, err := searcher.SearchByCompetency(text)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(results)
		}
		for _, r := range results {
			fmt.Printf("%-30s %-18s matches=%d\n", r.Role, r.Code, r.Matches)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd, competencyCmd)
	searchCmd.Flags().Bool("json", false, "Output JSON format")
	searchCmd.Flags().Int("limit", 0, "Maximum number of results (default 20)")
	competencyCmd.Flags().Bool("json", false, "Output JSON format")
	competencyCmd.Flags().Bool("roles", false, "Group matches by role")
}
