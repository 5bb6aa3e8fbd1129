package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velurian/histoconv"
	"github.com/velurian/histoconv/services"
	"github.com/velurian/histoconv/validator"
)

func runConversionLoop(config *Config, in io.Reader, out io.Writer, logger, errLogger *log.Logger) error {
	service := services.ConversionService{
		Fetcher:  config.Fetcher,
		Storages: config.Storages,
	}

	scanner := bufio.NewScanner(in)

	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)

		if !scanner.Scan() {
			return "", false
		}

		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		date, more := prompt("Date: ")

		if !more {
			return scanner.Err()
		}

		if !validator.IsValidDate(date) {
			fmt.Fprintln(out, "Please enter a valid date in format YYYY-MM-DD.")
			continue
		}

		amount, more := prompt("Amount: ")

		if !more {
			return scanner.Err()
		}

		if !validator.IsValidAmount(amount) {
			fmt.Fprintln(out, "Please enter a valid amount")
			continue
		}

		baseCurrency, more := prompt("Base currency: ")

		if !more {
			return scanner.Err()
		}

		if !validator.IsValidCurrencyCode(baseCurrency) {
			fmt.Fprintln(out, "Please enter a valid currency code")
			continue
		}

		targetCurrency, more := prompt("Target currency: ")

		if !more {
			return scanner.Err()
		}

		if !validator.IsValidCurrencyCode(targetCurrency) {
			fmt.Fprintln(out, "Please enter a valid currency code")
			continue
		}

		req, err := histoconv.NewConversionRequest(date, amount, baseCurrency, targetCurrency)

		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		result, err := service.ConvertOnDate(config.Ctx, req)

		var persistErr *services.PersistError

		switch {
		case errors.As(err, &persistErr):
			// The conversion itself succeeded; losing history is reported
			// separately and loudly.
			printResult(out, result)
			errLogger.Printf("ERROR: conversion was not saved: %v", persistErr)
		case err != nil:
			errLogger.Printf("ERROR: %v", err)
		default:
			printResult(out, result)
		}

		exit, more := prompt(`Type "END" to exit or press Enter to continue: `)

		if !more {
			return scanner.Err()
		}

		if strings.EqualFold(exit, "END") {
			return nil
		}

		if *config.debug {
			logger.Printf("%s %s %s %s", req.Date, req.Amount.StringFixed(2), req.BaseCurrency, req.TargetCurrency)
		}
	}
}

func printResult(out io.Writer, result services.Result) {
	fmt.Fprintf(
		out,
		"%s %s is %s %s\n",
		result.Request.Amount.StringFixed(2),
		result.Request.BaseCurrency,
		result.ConvertedAmount.StringFixed(2),
		result.Request.TargetCurrency,
	)
}

func convert(config *Config) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Interactively convert amounts using historical exchange rates",
	}

	convertCmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := log.New(cmd.OutOrStdout(), "convert ", 0)
		errLogger := log.New(cmd.ErrOrStderr(), "convert-error ", 0)

		return runConversionLoop(config, cmd.InOrStdin(), cmd.OutOrStdout(), logger, errLogger)
	}

	return convertCmd
}
