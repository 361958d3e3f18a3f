package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/sugr/internal/export"
	"github.com/sadopc/sugr/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export day totals (csv) or the full log (json)",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format != "csv" && format != "json" {
			return fmt.Errorf("unsupported format %q (expected csv or json)", exportFormat)
		}

		return withStore(func(s *store.Store, loc *time.Location) error {
			now := nowFunc().In(loc)
			all, settings, err := loadAll(s)
			if err != nil {
				return err
			}

			path := exportOut
			if path == "-" {
				if format == "csv" {
					return export.WriteCSV(cmd.OutOrStdout(), all)
				}
				data, err := export.MarshalJSON(all, settings, loc, now)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if path == "" {
				path = filepath.Join(cfg.ExportDir, export.FileName(format, now))
			}

			if format == "csv" {
				err = export.ToCSV(all, path)
			} else {
				err = export.ToJSON(all, settings, loc, now, path)
			}
			if err != nil {
				return err
			}
			logger.Info("export written", "format", format, "path", path, "entries", len(all))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(all), path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path, '-' for stdout (default $SUGR_EXPORT_DIR/sugr-export-<date>.<format>)")
}
