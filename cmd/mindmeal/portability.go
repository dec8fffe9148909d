package mindmeal

import (
	"fmt"
	"os"
	"strings"

	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/sink"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportOut     string
	importIn      string
	importRestore bool
	importDryRun  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, metrics and food logs (json or yaml)",
	Long:  "Export writes to --out: a file path, - for stdout, or s3://bucket/key. The default is mindmeal-data-YYYY-MM-DD.<format> in the current directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := service.ParseExportFormat(exportFormat)
		if err != nil {
			return err
		}
		return withSession(cmd, func(env runEnv) error {
			out := exportOut
			if strings.TrimSpace(out) == "" {
				out = env.app.DefaultExportFilename(format)
			}
			target, err := sink.ParseTarget(out)
			if err != nil {
				return err
			}
			body, err := service.EncodeExport(env.app.ExportDataSnapshot(), format)
			if err != nil {
				return err
			}
			contentType := "application/json"
			if format == service.ExportYAML {
				contentType = "application/yaml"
			}
			w := &sink.Writer{Stdout: cmd.OutOrStdout(), Export: env.cfg.Export}
			if err := w.Write(env.ctx, target, body, contentType); err != nil {
				return err
			}
			if target.Kind != sink.KindStdout {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", target)
			}
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a json or yaml export, merging food logs by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		data, err := service.DecodeExport(raw)
		if err != nil {
			return err
		}
		if importDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d food log(s), profile included: %t\n", len(data.FoodLogs), data.Profile != nil)
			return nil
		}
		return withUser(cmd, func(env runEnv) error {
			report, err := env.app.ImportDataSnapshot(env.ctx, data, service.ImportOptions{RestoreProfile: importRestore})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported food logs: inserted=%d skipped=%d\n", report.FoodLogsInserted, report.FoodLogsSkipped)
			if report.ProfileRestored {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile restored")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or yaml")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, - for stdout, or s3://bucket/key")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input export file (json or yaml)")
	importCmd.Flags().BoolVar(&importRestore, "restore-profile", false, "Also restore the profile from the export (requires login)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and summarize without writing")
}
