package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathforge/rolefit/internal/estimate"
	"github.com/pathforge/rolefit/internal/skills"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <skill>...",
	Short: "Show estimated learning hours for skills",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var total int
		for _, name := range skills.NormalizeAll(args) {
			hours := estimate.SkillHours(name)
			total += hours
			fmt.Printf("%-24s %3dh\n", name, hours)
		}
		if len(args) > 1 {
			fmt.Printf("%-24s %3dh\n", "total", total)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
