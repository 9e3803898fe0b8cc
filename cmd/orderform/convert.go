// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orderform/internal/orderform"
	"github.com/pdiddy/orderform/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a local delivery list into an order-form archive",
	Long: `Convert reads a delivery-list workbook from disk, writes one order form
per category that has matching rows into the given template workbooks, and
saves the zip archive. Templates are passed as category=path pairs, e.g.

  orderform convert --delivery DeliveryList.xlsx \
    --template common=공통양식.xlsx --template uiseong=의성양식.xlsx

A template is only opened when its category has rows.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("delivery", "", "delivery-list workbook (.xlsx)")
	convertCmd.Flags().StringToString("template", nil, "category=template.xlsx (repeatable)")
	convertCmd.Flags().String("out", "", "output archive path (default: conversion.archive_name)")
	convertCmd.Flags().String("layout", "", "output layout: recipient or order")
	convertCmd.Flags().Bool("summary", false, "print a YAML summary to stdout")
	_ = convertCmd.MarkFlagRequired("delivery")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	deliveryPath, _ := cmd.Flags().GetString("delivery")
	templates, _ := cmd.Flags().GetStringToString("template")
	out, _ := cmd.Flags().GetString("out")
	layout, _ := cmd.Flags().GetString("layout")
	summary, _ := cmd.Flags().GetBool("summary")

	if layout != "" {
		cfg.Conversion.Layout = types.Layout(layout)
	}
	if out == "" {
		out = cfg.Conversion.ArchiveName
	}

	// Status lines go to stderr when stdout carries the YAML summary.
	var log io.Writer = os.Stdout
	if summary {
		log = os.Stderr
	}

	res, err := convertFiles(context.Background(), cfg.Conversion, deliveryPath, templates, out, log)
	if err != nil {
		return err
	}
	if summary {
		return res.Summary.WriteYAML(os.Stdout)
	}
	return nil
}

// convertFiles runs the conversion on files and writes the archive to out.
func convertFiles(ctx context.Context, cfg types.ConversionConfig, deliveryPath string, templates map[string]string, out string, w io.Writer) (*orderform.Result, error) {
	conv, err := orderform.NewConverter(cfg)
	if err != nil {
		return nil, err
	}
	conv.Log = w

	f, err := os.Open(deliveryPath)
	if err != nil {
		return nil, fmt.Errorf("opening delivery list: %w", err)
	}
	defer f.Close()

	res, err := conv.Convert(ctx, f, orderform.FileTemplates(templates))
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(out, res.Archive, 0o644); err != nil {
		return nil, fmt.Errorf("writing archive: %w", err)
	}
	fmt.Fprintf(w, "\nArchive: %s (%d entries, %d records, %d unmatched)\n",
		out, len(res.Summary.Entries()), res.Summary.Records, res.Summary.Unmatched)
	return res, nil
}
