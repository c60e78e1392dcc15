package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bekendz87/droh-admin/internal/cli"
	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/storage"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved filter presets",
		Long: `Manage saved filter presets.

A preset is a named snapshot of a report's filter values. Start a report
with --preset <name> to apply one.`,
	}

	cmd.AddCommand(presetsListCmd())
	cmd.AddCommand(presetsSaveCmd())
	cmd.AddCommand(presetsDeleteCmd())

	return cmd
}

func presetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <report>",
		Short: "List the presets saved for a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPresets()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			presets, err := store.List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list presets: %w", err)
			}
			if len(presets) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No presets saved for %s", args[0])))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Presets for %s", args[0])))
			for _, p := range presets {
				fmt.Printf("  %-20s %s  %s\n",
					p.Name,
					p.CreatedAt.Format("2006-01-02"),
					describeValues(p.Values),
				)
			}
			return nil
		},
	}
}

func presetsSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <report> <name>",
		Short: "Save a filter preset",
		Long: `Save a filter preset from --set pairs.

Scalar filters take a single value; multi-select filters take a
comma-separated list:

  droh presets save invoices morning-cash \
    --set invoiceType=payment --set sources=cash,card`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("set")
			values, err := parseSetPairs(pairs)
			if err != nil {
				return err
			}

			store, err := openPresets()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			preset := storage.Preset{
				Report:    args[0],
				Name:      args[1],
				Values:    values,
				CreatedAt: time.Now(),
			}
			if err := store.Save(cmd.Context(), preset); err != nil {
				return fmt.Errorf("failed to save preset: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved preset %q for %s", args[1], args[0])))
			return nil
		},
	}

	cmd.Flags().StringArray("set", nil, "filter value as name=value (repeatable)")
	return cmd
}

func presetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <report> <name>",
		Short: "Delete a filter preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPresets()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			if err := store.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to delete preset: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted preset %q", args[1])))
			return nil
		},
	}
}

// parseSetPairs turns repeated name=value flags into a value map. A
// comma in the value marks a multi-select list.
func parseSetPairs(pairs []string) (report.ValueMap, error) {
	values := make(report.ValueMap, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", pair)
		}
		if strings.Contains(value, ",") {
			values[name] = report.FieldValue{Values: strings.Split(value, ",")}
			continue
		}
		values[name] = report.FieldValue{Value: value}
	}
	return values, nil
}

// describeValues renders a short inline summary of a preset.
func describeValues(vm report.ValueMap) string {
	parts := make([]string, 0, len(vm))
	for name, fv := range vm {
		if len(fv.Values) > 0 {
			parts = append(parts, name+"="+strings.Join(fv.Values, ","))
			continue
		}
		if fv.Value != "" {
			parts = append(parts, name+"="+fv.Value)
		}
	}
	return strings.Join(parts, " ")
}
