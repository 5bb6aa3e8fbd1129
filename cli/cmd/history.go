package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/velurian/histoconv/services"
)

func history(config *Config) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List every stored conversion, oldest first",
	}

	historyCmd.RunE = func(cmd *cobra.Command, args []string) error {
		service := services.ConversionService{Storages: config.Storages}

		records, err := service.History()

		if err != nil {
			return err
		}

		logger := log.New(cmd.OutOrStdout(), "", 0)

		for i, record := range records {
			logger.Printf(
				"%d\t%s\t%s %s is %s %s",
				i+1,
				record.Date,
				record.Amount,
				record.BaseCurrency,
				record.ConvertedAmount,
				record.TargetCurrency,
			)
		}

		return nil
	}

	return historyCmd
}
