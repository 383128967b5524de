package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rolesCmd represents the roles command
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List all roles with their metadata",
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

		metadata, err := queries.GetAllRolesWithMetadata()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(metadata)
		}

		fmt.Printf("Roles: %d\n\n", metadata.Total)
		for _, role := range metadata.Roles {
			years := fmt.Sprintf("%d+", role.YearsRange.Min)
			if role.YearsRange.Max != nil {
				years = fmt.Sprintf("%d-%d", role.YearsRange.Min, *role.YearsRange.Max)
			}
			fmt.Printf("%-30s %-15s levels=%d competencies=%d years=%s\n",
				role.Role, role.Category, role.Levels, role.Competencies, years)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rolesCmd)
	rolesCmd.Flags().Bool("json", false, "Output JSON format")
}
