package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

var (
	goalPreset  string
	goalDaily   float64
	goalCaution float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or change the daily goal",
	Long: `Without flags, prints the current goal. Use --preset to pick one of the
predefined goals, or --goal and --caution for custom values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		custom := flags.Changed("goal") || flags.Changed("caution")
		if custom && flags.Changed("preset") {
			return fmt.Errorf("--preset cannot be combined with --goal or --caution")
		}

		return withStore(func(s *store.Store, _ *time.Location) error {
			settings, err := s.LoadSettings()
			if err != nil {
				return err
			}

			switch {
			case flags.Changed("preset"):
				p, err := model.ParsePreset(goalPreset)
				if err != nil {
					return err
				}
				if settings, err = s.ApplyPreset(p); err != nil {
					return err
				}
				logger.Info("goal preset applied", "preset", string(p))
			case custom:
				next := settings
				next.Preset = model.PresetCustom
				if flags.Changed("goal") {
					next.DailyGoal = goalDaily
				}
				if flags.Changed("caution") {
					next.CautionThreshold = goalCaution
				}
				if err := s.SaveSettings(next); err != nil {
					return err
				}
				settings = next
				logger.Info("custom goal saved", "goal", next.DailyGoal, "caution", next.CautionThreshold)
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"daily_goal":        settings.DailyGoal,
					"caution_threshold": settings.CautionThreshold,
					"preset":            settings.Preset,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset: %s\n", settings.Preset)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %gg\n", settings.DailyGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Caution at: %gg\n", settings.CautionThreshold)
			return nil
		})
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the predefined goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range model.Presets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%gg / %gg\t%s\n", p, p.DailyGoal(), p.CautionThreshold(), p.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(presetsCmd)

	goalCmd.Flags().StringVar(&goalPreset, "preset", "", "Preset name (see 'sugr goal presets')")
	goalCmd.Flags().Float64Var(&goalDaily, "goal", 0, "Custom daily goal in grams")
	goalCmd.Flags().Float64Var(&goalCaution, "caution", 0, "Custom caution threshold in grams")
}
