package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathforge/rolefit/internal/plan"
)

var (
	planRole   string
	planWeekly int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a phased learning plan for one target role",
	Long: `The plan command assesses your skills against a single role and lays the
gaps out as a 3-phase roadmap (Foundation, Core Skills, Polish) with a
recommended resource and an hour estimate per skill, plus aggregated time
frames at your weekly study pace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planRole, "role", "r", "", "Target role name (required)")
	planCmd.Flags().IntVarP(&planWeekly, "weekly-hours", "w", 0, "Study hours per week (defaults to configuration)")
	planCmd.Flags().StringArrayVarP(&skillFlags, "skill", "s", nil, "Skill as name=level (repeatable)")
	planCmd.Flags().StringVar(&skillsFile, "skills-file", "", "YAML file listing skills and levels")
	planCmd.MarkFlagRequired("role")
}

func runPlan() error {
	cfg, agent, err := loadAgent()
	if err != nil {
		return err
	}

	userSkills, err := gatherSkills(cfg)
	if err != nil {
		return err
	}

	assessment, err := agent.AssessRole(planRole, userSkills)
	if err != nil {
		return fmt.Errorf("error assessing role %q: %w", planRole, err)
	}

	weekly := planWeekly
	if weekly == 0 {
		weekly = cfg.WeeklyHours
	}
	p := plan.Build(assessment, agent.Catalog(), weekly)

	if cfg.Format == "json" {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling plan: %w", err)
		}
		data = append(data, '\n')
		if cfg.Output != "" {
			return os.WriteFile(cfg.Output, data, 0644)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	printPlan(p)
	return nil
}

func printPlan(p plan.Plan) {
	fmt.Printf("Learning plan: %s\n\n", p.RoleName)
	if len(p.Phases) == 0 {
		fmt.Println("No gaps to close — you already meet this role's requirements.")
		return
	}

	for _, phase := range p.Phases {
		fmt.Printf("%s — %s\n", phase.Name, phase.TimeFrame)
		for _, item := range phase.Items {
			fmt.Printf("  - %s (%dh): %s\n", item.Skill, item.EstHours, item.Recommendation)
		}
		fmt.Println()
	}
	fmt.Printf("Total: %d hours (%d with buffer) — %s\n", p.TotalHours, p.BufferedHours, p.TimeFrame)
}
