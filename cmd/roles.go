package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List catalog roles and their skill requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoles()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles() error {
	_, agent, err := loadAgent()
	if err != nil {
		return err
	}

	for _, role := range agent.Catalog().Roles {
		fmt.Printf("%s\n", role.Name)
		for _, req := range role.Requirements {
			fmt.Printf("  - %s (level %d, %s)\n", req.Skill, req.TargetLevel, req.Importance)
		}
		fmt.Println()
	}
	return nil
}
