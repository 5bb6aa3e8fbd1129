package main

import (
	"context"
	"log"

	"github.com/spf13/viper"

	"github.com/velurian/histoconv/cli/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("HISTOCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error while reading in the config file: %v", err)
		}
	}

	config, err := getConfig(ctx)

	if err != nil {
		log.Fatalf("Error in configuration: %v", err)
	}

	storages, err := createStorages(config)

	if err != nil {
		log.Fatalf("Error while creating storages: %v", err)
	}

	defer func() {
		for _, st := range storages {
			if err := st.Close(); err != nil {
				log.Printf("Error while closing %s storage: %v", st.GetStorageProviderName(), err)
			}
		}
	}()

	if err := cmd.Execute(&cmd.Config{
		Ctx:      ctx,
		Fetcher:  createFetcher(config),
		Storages: storages,
	}); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
