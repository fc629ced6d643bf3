// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

// Fields command flags.
var (
	fieldsFlags datasetFlags
	fieldsJSON  bool
)

// fieldsCmd lists the selectable fields and continents.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields and continents of a dataset",
	Long: `List the categorical fields that can be charted, with the normalization
kind each one uses, and the continent choices for the waffle chart.`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

func init() {
	fieldsFlags.register(fieldsCmd.Flags())
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "write JSON instead of text")
}

type fieldInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type fieldsListing struct {
	Fields       []fieldInfo `json:"fields"`
	DefaultField string      `json:"default_field"`
	Continents   []string    `json:"continents"`
}

func runFields(cmd *cobra.Command, _ []string) error {
	cli, err := fieldsFlags.settings()
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cli)
	if err != nil {
		return err
	}
	dash, _, err := loadDashboard(settings)
	if err != nil {
		return err
	}

	listing := buildListing(dash)
	w := cmd.OutOrStdout()
	if fieldsJSON {
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal fields: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	_, _ = fmt.Fprintf(w, "%s\n", bold.Sprint("Fields"))
	for _, f := range listing.Fields {
		marker := " "
		if f.Name == listing.DefaultField {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, " %s %s %s\n", marker, f.Name, dim.Sprintf("(%s)", f.Kind))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", bold.Sprint("Continents"))
	for _, c := range listing.Continents {
		_, _ = fmt.Fprintf(w, "   %s\n", c)
	}
	return nil
}

func buildListing(dash *dashboard.Dashboard) fieldsListing {
	listing := fieldsListing{
		DefaultField: dash.DefaultField(),
		Continents:   dash.Continents(),
	}
	for _, name := range dash.Fields() {
		listing.Fields = append(listing.Fields, fieldInfo{Name: name, Kind: dash.KindOf(name).String()})
	}
	return listing
}
