package main

import (
	"fmt"

	"github.com/velurian/histoconv"
	"github.com/velurian/histoconv/fetchers"
	"github.com/velurian/histoconv/storage"
)

func createStorages(config *Config) ([]histoconv.Storage, error) {
	storages := make([]histoconv.Storage, 0, len(config.Storage))

	for _, s := range config.Storage {
		c, ok := config.StorageConfig[s]

		if !ok {
			return nil, fmt.Errorf("storage %s does not exist", s)
		}

		st, err := storage.NewStorage(s, c)

		if err != nil {
			return nil, err
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func createFetcher(config *Config) histoconv.Fetcher {
	fetcher := fetchers.NewFastForexFetcher(config.APIKey)

	if config.FetcherURL != "" {
		fetcher.URL = config.FetcherURL
	}

	return fetcher
}
