// Package storage provides the history storages a conversion record can be
// appended to: a pretty-printed JSON file (the default), MySQL and MongoDB.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/velurian/histoconv"
)

type (
	Provider string

	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}

	JSONConfig struct {
		BaseConfig
		File string
	}

	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
		DB               *sql.DB
	}

	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}

	// IDGenerator produces the primary key bytes for storages that need
	// one per stored record.
	IDGenerator interface {
		Generate() []byte
	}
)

const (
	JSONFile Provider = "json"
	MySQL    Provider = "mysql"
	MongoDB  Provider = "mongodb"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
)

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "json":
		return JSONFile, nil
	case "mysql":
		return MySQL, nil
	case "mongodb":
		return MongoDB, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func (p *Provider) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	provider, err := ConvertToProviderFromString(str)

	if err != nil {
		return err
	}

	*p = provider

	return nil
}

func (p Provider) MarshalYAML() (interface{}, error) {
	return string(p), nil
}

func NewStorage(provider Provider, config interface{}) (histoconv.Storage, error) {
	switch provider {
	case JSONFile:
		return NewJSONStorage(config.(JSONConfig))
	case MySQL:
		return NewMySQLStorage(config.(MySQLConfig))
	case MongoDB:
		return NewMongoStorage(config.(MongoDBConfig))
	}

	return nil, ErrStorageNotFound
}
