// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orderform/internal/orderform"
	"github.com/pdiddy/orderform/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the order-form upload service",
	Long: `Serve starts an HTTP server with an upload form at "/" and the
conversion endpoint at "/convert". The listen port comes from PORT
(default 10000); the server binds all interfaces unless --host is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "interface to bind (default 0.0.0.0)")
	serveCmd.Flags().Int("port", 0, "listen port (default $PORT or 10000)")
	serveCmd.Flags().String("layout", "", "output layout: recipient or order")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("conversion.layout", serveCmd.Flags().Lookup("layout"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	conv, err := orderform.NewConverter(cfg.Conversion)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, conv).Run(ctx)
}
