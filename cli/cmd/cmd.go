package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/velurian/histoconv"
)

var (
	rootCmd = &cobra.Command{
		Use:     "histoconv",
		Short:   "Historical currency conversion with a durable conversion log",
		Version: "v1.0.0",
	}
	debug bool
)

type (
	Config struct {
		Ctx      context.Context
		Fetcher  histoconv.Fetcher
		Storages []histoconv.Storage
		debug    *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")

	config.debug = &debug

	rootCmd.AddCommand(convert(config), history(config))

	return rootCmd.Execute()
}
