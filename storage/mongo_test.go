package storage_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velurian/histoconv"
	"github.com/velurian/histoconv/storage"
)

func mongoConnectionString() string {
	if uri := os.Getenv("HISTOCONV_TEST_MONGODB_URI"); uri != "" {
		return uri
	}

	if os.Getenv("RUNNING_IN_DOCKER") != "" {
		return "mongodb://mongo:27017"
	}

	return "mongodb://localhost:27017"
}

func TestMongoStorage_AppendAndLoad(t *testing.T) {
	if os.Getenv("HISTOCONV_TEST_MONGODB") == "" {
		t.Skip("set HISTOCONV_TEST_MONGODB to run the MongoDB integration test")
	}

	assert := require.New(t)
	ctx := context.Background()

	store, err := storage.NewMongoStorage(storage.MongoDBConfig{
		BaseConfig:       storage.BaseConfig{Ctx: ctx},
		ConnectionString: mongoConnectionString(),
		Database:         "histoconv_test",
		Collection:       "conversion_history",
	})

	assert.Nil(err)

	defer func() {
		assert.Nil(store.Drop())
		assert.Nil(store.Close())
	}()

	records := []histoconv.ConversionRecord{
		{Date: "2023-01-10", Amount: "50.00", BaseCurrency: "USD", TargetCurrency: "JPY", ConvertedAmount: "6512.50"},
		{Date: "2023-01-11", Amount: "100.00", BaseCurrency: "USD", TargetCurrency: "EUR", ConvertedAmount: "92.00"},
	}

	for _, record := range records {
		assert.Nil(store.Append(record))
	}

	loaded, err := store.Load()

	assert.Nil(err)
	assert.Equal(records, loaded)
}
