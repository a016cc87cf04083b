package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathforge/rolefit/internal/config"
	"github.com/pathforge/rolefit/internal/output"
	"github.com/pathforge/rolefit/internal/readiness"
	"github.com/pathforge/rolefit/internal/skills"
)

var (
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	catalogGlobs []string
	skillFlags   []string
	skillsFile   string
	forceRefresh bool
)

var rootCmd = &cobra.Command{
	Use:   "rolefit",
	Short: "Role Fit - assess job-role readiness from a skill profile",
	Long: `Rolefit scores a set of skills against a catalog of role profiles, ranks
the best-matching roles, and recommends the highest-leverage next steps:
short micro-tasks for small gaps, full courses for large ones.

Skills are given as repeatable --skill flags ("python=2", or a bare name to
use the default level) or via a YAML skills file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringSliceVar(&catalogGlobs, "catalog", nil, "Glob patterns for catalog overlay files")

	rootCmd.Flags().StringArrayVarP(&skillFlags, "skill", "s", nil, "Skill as name=level (repeatable); bare names use the default level")
	rootCmd.Flags().StringVar(&skillsFile, "skills-file", "", "YAML file listing skills and levels")
	rootCmd.Flags().BoolVar(&forceRefresh, "force-refresh", false, "Bypass the assessment cache")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("catalog.paths", rootCmd.PersistentFlags().Lookup("catalog"))
}

func initConfig() {
	for _, path := range config.ConfigFiles {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runAssess() error {
	cfg, agent, err := loadAgent()
	if err != nil {
		return err
	}

	userSkills, err := gatherSkills(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	assessments, err := agent.Assess(userSkills, forceRefresh)
	if err != nil {
		return fmt.Errorf("error assessing skills: %w", err)
	}

	formatter, err := output.NewFormatter(cfg)
	if err != nil {
		return err
	}
	return formatter.Format(&output.Report{
		Skills:      userSkills,
		Assessments: assessments,
		StartTime:   start,
	})
}

// gatherSkills merges --skills-file entries with --skill flags. Duplicate
// skills resolve to the highest level when the engine builds its skill set.
func gatherSkills(cfg *config.Config) ([]readiness.UserSkill, error) {
	var userSkills []readiness.UserSkill

	if skillsFile != "" {
		fromFile, err := skills.LoadFile(skillsFile)
		if err != nil {
			return nil, err
		}
		userSkills = append(userSkills, fromFile...)
	}

	fromFlags, err := skills.ParsePairs(skillFlags, cfg.RawLevel)
	if err != nil {
		return nil, err
	}
	userSkills = append(userSkills, fromFlags...)

	return userSkills, nil
}
