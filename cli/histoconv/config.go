package main

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	"github.com/velurian/histoconv/storage"
)

type (
	StorageConfig map[storage.Provider]interface{}

	Config struct {
		Ctx           context.Context
		APIKey        string
		FetcherURL    string
		Storage       []storage.Provider
		StorageConfig StorageConfig
	}
)

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = config["db"]

	return mysqlDriverConfig.FormatDSN()
}

func getConfig(ctx context.Context) (*Config, error) {
	apiKey := viper.GetString("api_key")

	if apiKey == "" {
		return nil, errors.New("api_key is required (config file or HISTOCONV_API_KEY)")
	}

	storageNames := viper.GetStringSlice("storage")

	if len(storageNames) == 0 {
		storageNames = []string{"json"}
	}

	storages, err := storage.ConvertToProvidersFromStringSlice(storageNames)

	if err != nil {
		return nil, err
	}

	mysqlConfig := viper.GetStringMapString("databases.mysql")
	mongodbConfig := viper.GetStringMapString("databases.mongo")

	historyFile := viper.GetString("databases.json.file")

	if historyFile == "" {
		historyFile = "conversions.json"
	}

	storageBaseConfig := storage.BaseConfig{
		Ctx:     ctx,
		Migrate: viper.GetBool("migrate"),
	}

	return &Config{
		Ctx:        ctx,
		APIKey:     apiKey,
		FetcherURL: viper.GetString("fetchers.fastforex.url"),
		Storage:    storages,
		StorageConfig: StorageConfig{
			storage.JSONFile: storage.JSONConfig{
				BaseConfig: storageBaseConfig,
				File:       historyFile,
			},
			storage.MySQL: storage.MySQLConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: getMysqlDSN(mysqlConfig),
				TableName:        mysqlConfig["table"],
				IDGenerator:      nil,
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: mongodbConfig["uri"],
				Database:         mongodbConfig["db"],
				Collection:       mongodbConfig["collection"],
			},
		},
	}, nil
}
