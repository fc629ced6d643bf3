// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rightsdash/rightsdash/internal/config"
	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/dataset"
	"github.com/rightsdash/rightsdash/internal/normalize"
)

// datasetFlags are the flags shared by every command that loads a dataset.
type datasetFlags struct {
	data  string
	field string
	kinds []string
}

func (f *datasetFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.data, "data", "", "dataset path (.csv, .tsv or .xlsx; env "+config.EnvDataPath+")")
	fs.StringVar(&f.field, "field", "", "default field to chart")
	fs.StringArrayVar(&f.kinds, "kind", nil, "normalization kind per field, FIELD=binary|penalty|gender (repeatable)")
}

func (f *datasetFlags) reset() {
	f.data = ""
	f.field = ""
	f.kinds = nil
}

// settings parses the flags into CLI settings.
func (f *datasetFlags) settings() (config.Settings, error) {
	s := config.Settings{DataPath: f.data, Field: f.field}
	if len(f.kinds) == 0 {
		return s, nil
	}
	s.FieldKinds = make(map[string]normalize.Kind, len(f.kinds))
	for _, entry := range f.kinds {
		field, name, ok := strings.Cut(entry, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return config.Settings{}, exitError(ExitInvalidArgs, "rightsdash: --kind %q must be formatted as FIELD=KIND", entry)
		}
		k, err := normalize.ParseKind(name)
		if err != nil {
			return config.Settings{}, exitError(ExitInvalidArgs, "rightsdash: --kind %s: %v", field, err)
		}
		s.FieldKinds[field] = k
	}
	return s, nil
}

// loadFileConfig reads --config when given, otherwise the global config
// overlaid with the one in the working directory, and validates the result.
func loadFileConfig() (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		c, err := config.LoadFile(configPath)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rightsdash: failed to load config: %v", err)
		}
		cfg = c
	} else {
		global, err := config.LoadGlobal()
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rightsdash: failed to load global config: %v", err)
		}
		repo, err := config.Load(".")
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rightsdash: failed to load config: %v", err)
		}
		cfg = config.Overlay(global, repo)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "rightsdash: %v", err)
	}
	return cfg, nil
}

// resolveSettings merges CLI settings over the environment, config files and
// built-in defaults.
func resolveSettings(cli config.Settings) (config.Settings, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return config.Settings{}, err
	}
	s, err := config.Merge(fileCfg, cli, os.Getenv)
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "rightsdash: %v", err)
	}
	return s, nil
}

// loadDashboard opens the dataset named by s and builds the dashboard over it.
func loadDashboard(s config.Settings) (*dashboard.Dashboard, *dataset.Table, error) {
	if s.DataPath == "" {
		return nil, nil, exitError(ExitInvalidArgs,
			"rightsdash: no dataset given (use --data, %s, or data_path in %s)", config.EnvDataPath, config.FileName)
	}
	tbl, err := dataset.Open(s.DataPath)
	if err != nil {
		if errors.Is(err, dataset.ErrUnsupportedFormat) {
			return nil, nil, exitError(ExitInvalidArgs, "rightsdash: %v", err)
		}
		return nil, nil, exitError(ExitLoadFailure, "rightsdash: %v", err)
	}
	if s.Field == "" && s.DefaultField != "" && !tbl.HasField(s.DefaultField) {
		slog.Warn("configured default field not in dataset, falling back",
			"default_field", s.DefaultField, "path", s.DataPath)
	}
	dash, err := dashboard.New(tbl, dashboard.Options{
		DefaultField: s.PreferredField(tbl.HasField),
		FieldKinds:   s.FieldKinds,
	})
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "rightsdash: %v", err)
	}
	slog.Info("dataset loaded",
		"path", s.DataPath,
		"rows", tbl.Len(),
		"fields", len(tbl.Fields()),
		"default_field", dash.DefaultField(),
	)
	return dash, tbl, nil
}
