package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

var (
	addLabel string
	addAt    string
)

var addCmd = &cobra.Command{
	Use:   "add <grams>",
	Short: "Log an intake entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseGrams(args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store, loc *time.Location) error {
			now := nowFunc().In(loc)
			at, err := parseAt(addAt, now, loc)
			if err != nil {
				return err
			}
			e, err := s.AddEntry(grams, addLabel, at, loc)
			if err != nil {
				return err
			}
			logger.Debug("entry added", "id", e.ID, "day", e.DayKey, "grams", e.Grams)

			day, err := s.ListEntries(store.EntryFilter{DayKey: e.DayKey})
			if err != nil {
				return err
			}
			settings, err := s.LoadSettings()
			if err != nil {
				return err
			}
			total := analytics.DailyTotals(day)[e.DayKey]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%.1fg) on %s [%s]\n", e.DisplayName(), e.Grams, e.DayKey, shortID(e.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Day total: %.1fg / %.0fg (%s)\n", total, settings.DailyGoal, settings.StatusFor(total))
			return nil
		})
	},
}

var (
	listDay string
	listAll bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			var filter store.EntryFilter
			if !listAll {
				filter.DayKey = model.DayKey(nowFunc(), loc)
				if listDay != "" {
					key, err := parseDay(listDay, loc)
					if err != nil {
						return err
					}
					filter.DayKey = key
				}
			}
			entries, err := s.ListEntries(filter)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTIME\tNAME\tGRAMS")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.1f\n",
					shortID(e.ID), e.DayKey, e.Timestamp.In(loc).Format("15:04"), e.DisplayName(), e.Grams)
			}
			return nil
		})
	},
}

var (
	editGrams string
	editLabel string
	editAt    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an entry's grams, label or time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("grams") && !cmd.Flags().Changed("label") && !cmd.Flags().Changed("at") {
			return fmt.Errorf("nothing to change: pass --grams, --label or --at")
		}
		return withStore(func(s *store.Store, loc *time.Location) error {
			e, err := s.FindEntry(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("grams") {
				grams, err := parseGrams(editGrams)
				if err != nil {
					return err
				}
				if err := s.UpdateGrams(e.ID, grams); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("label") {
				if err := s.UpdateLabel(e.ID, editLabel); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("at") {
				at, err := parseAt(editAt, nowFunc().In(loc), loc)
				if err != nil {
					return err
				}
				if _, err := s.MoveEntry(e.ID, at, loc); err != nil {
					return err
				}
			}

			updated, err := s.GetEntry(e.ID)
			if err != nil {
				return err
			}
			logger.Debug("entry updated", "id", updated.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %.1fg on %s at %s\n",
				updated.DisplayName(), updated.Grams, updated.DayKey, updated.Timestamp.In(loc).Format("15:04"))
			return nil
		})
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			e, err := s.FindEntry(args[0])
			if err != nil {
				return err
			}
			if err := s.DeleteEntry(e.ID); err != nil {
				return err
			}
			logger.Debug("entry deleted", "id", e.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%.1fg) from %s\n", e.DisplayName(), e.Grams, e.DayKey)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, editCmd, rmCmd)

	addCmd.Flags().StringVar(&addLabel, "label", "", "Optional name for the entry")
	addCmd.Flags().StringVar(&addAt, "at", "", "When it was eaten: RFC3339, 'YYYY-MM-DD HH:MM' or HH:MM (default now)")

	listCmd.Flags().StringVar(&listDay, "day", "", "Day YYYY-MM-DD (default today)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List every entry")

	editCmd.Flags().StringVar(&editGrams, "grams", "", "New quantity in grams")
	editCmd.Flags().StringVar(&editLabel, "label", "", "New label (empty restores 'Item N')")
	editCmd.Flags().StringVar(&editAt, "at", "", "New time: RFC3339, 'YYYY-MM-DD HH:MM' or HH:MM")
}
