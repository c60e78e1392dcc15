package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/config"
	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/reports"
	"github.com/bekendz87/droh-admin/internal/session"
	"github.com/bekendz87/droh-admin/internal/storage"
	"github.com/bekendz87/droh-admin/internal/tui"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// loadSession restores the saved login, failing with a usable message
// when there is none.
func loadSession() (*session.Session, error) {
	sess, err := session.Load()
	if err != nil {
		return nil, common.NewUserError("not logged in, run: droh login <token>", err)
	}
	return sess, nil
}

// buildDeps wires the API client and download directory for a report.
func buildDeps(sess *session.Session) (reports.Deps, error) {
	baseURL := viper.GetString("api.base_url")
	if baseURL == "" {
		return reports.Deps{}, common.NewUserError(
			"no backend configured, set api.base_url or pass --api-url",
			common.ErrMissingConfig,
		)
	}

	opts := []api.Option{}
	if timeout := viper.GetDuration("api.timeout"); timeout > 0 {
		opts = append(opts, api.WithTimeout(timeout))
	}

	downloads := viper.GetString("downloads.dir")
	if downloads == "" {
		downloads = config.DefaultDownloadDir()
	} else {
		downloads = config.ExpandPath(downloads)
	}

	return reports.Deps{
		API:       api.New(baseURL, sess, opts...),
		Session:   sess,
		Downloads: downloads,
	}, nil
}

// openPresets opens the filter preset database.
func openPresets() (*storage.PresetStore, error) {
	dbPath := viper.GetString("presets.path")
	if dbPath == "" {
		var err error
		dbPath, err = config.DefaultPresetDBPath()
		if err != nil {
			return nil, err
		}
	} else {
		dbPath = config.ExpandPath(dbPath)
	}
	return storage.NewPresetStore(dbPath)
}

// reportCmd builds the cobra command for one report route. The schema
// is constructed lazily so login and config checks run first.
func reportCmd(use, short string, build func(reports.Deps) report.Schema) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			deps, err := buildDeps(sess)
			if err != nil {
				return err
			}

			schema := build(deps)

			preset, _ := cmd.Flags().GetString("preset")
			if preset != "" {
				if err := applyPreset(cmd.Context(), &schema, preset); err != nil {
					return err
				}
			}

			return tui.Run(cmd.Context(), tui.Config{
				Schema:    schema,
				Theme:     themes.ByName(viper.GetString("ui.theme")),
				Downloads: deps.Downloads,
			})
		},
	}

	cmd.Flags().String("preset", "", "start with a saved filter preset")
	return cmd
}

// applyPreset overlays a saved preset on the schema's default filters.
func applyPreset(ctx context.Context, schema *report.Schema, name string) error {
	store, err := openPresets()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	preset, err := store.Get(ctx, schema.Name, name)
	if err != nil {
		return fmt.Errorf("failed to load preset %q: %w", name, err)
	}

	defaults := schema.Defaults
	schema.Defaults = func() []report.Field {
		fields := defaults()
		report.ApplyValues(fields, preset.Values)
		return fields
	}
	return nil
}
