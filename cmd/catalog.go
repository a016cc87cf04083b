package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the course and micro-task catalog by skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog() error {
	_, agent, err := loadAgent()
	if err != nil {
		return err
	}

	entries := agent.Catalog().Entries
	names := make([]string, 0, len(entries))
	for skill := range entries {
		names = append(names, skill)
	}
	sort.Strings(names)

	for _, skill := range names {
		entry := entries[skill]
		fmt.Printf("%s (%d courses, %d micro-tasks)\n", skill, len(entry.Courses), len(entry.MicroTasks))
		for _, course := range entry.Courses {
			fmt.Printf("  %s: %s (%s, %s)\n", course.ID, course.Name, course.Duration, course.Provider)
		}
		for _, task := range entry.MicroTasks {
			fmt.Printf("  • %s\n", task)
		}
		fmt.Println()
	}
	return nil
}
