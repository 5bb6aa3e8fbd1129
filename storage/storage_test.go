package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velurian/histoconv/storage"
)

func TestConvertToProviderFromString(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	provider, err := storage.ConvertToProviderFromString("json")
	assert.Nil(err)
	assert.Equal(storage.JSONFile, provider)

	provider, err = storage.ConvertToProviderFromString("MySQL")
	assert.Nil(err)
	assert.Equal(storage.MySQL, provider)

	provider, err = storage.ConvertToProviderFromString("MongoDB")
	assert.Nil(err)
	assert.Equal(storage.MongoDB, provider)

	_, err = storage.ConvertToProviderFromString("cassandra")
	assert.NotNil(err)
}

func TestConvertToProvidersFromStringSlice(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	providers, err := storage.ConvertToProvidersFromStringSlice([]string{"json", "mysql", "mongodb"})

	assert.Nil(err)
	assert.Equal([]storage.Provider{storage.JSONFile, storage.MySQL, storage.MongoDB}, providers)

	_, err = storage.ConvertToProvidersFromStringSlice([]string{"json", "unknown"})
	assert.NotNil(err)
}

func TestNewStorage(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	store, err := storage.NewStorage(storage.JSONFile, storage.JSONConfig{
		BaseConfig: storage.BaseConfig{Ctx: context.Background()},
		File:       filepath.Join(t.TempDir(), "history.json"),
	})

	assert.Nil(err)
	assert.Equal("json", store.GetStorageProviderName())

	_, err = storage.NewStorage(storage.Provider("unknown"), nil)
	assert.True(errors.Is(err, storage.ErrStorageNotFound))
}
