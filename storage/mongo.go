package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velurian/histoconv"
)

type mongoStorage struct {
	ctx        context.Context
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStorage connects to MongoDB and uses one document per conversion
// record. Insertion order is preserved by the monotonic _id sort.
func NewMongoStorage(config MongoDBConfig) (histoconv.Storage, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(config.ConnectionString))

	if err != nil {
		return nil, err
	}

	if err := client.Connect(config.Ctx); err != nil {
		return nil, err
	}

	storage := mongoStorage{
		ctx:        config.Ctx,
		client:     client,
		collection: client.Database(config.Database).Collection(config.Collection),
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			return nil, err
		}
	}

	return storage, nil
}

func (m mongoStorage) Load() ([]histoconv.ConversionRecord, error) {
	findOptions := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := m.collection.Find(m.ctx, bson.M{}, findOptions)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(m.ctx)

	records := make([]histoconv.ConversionRecord, 0)

	for cursor.Next(m.ctx) {
		current := cursor.Current

		records = append(records, histoconv.ConversionRecord{
			Date:            current.Lookup("dateInput").StringValue(),
			Amount:          current.Lookup("amount").StringValue(),
			BaseCurrency:    current.Lookup("base_currency").StringValue(),
			TargetCurrency:  current.Lookup("target_currency").StringValue(),
			ConvertedAmount: current.Lookup("converted_amount").StringValue(),
		})
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (m mongoStorage) Append(record histoconv.ConversionRecord) error {
	_, err := m.collection.InsertOne(m.ctx, bson.M{
		"dateInput":        record.Date,
		"amount":           record.Amount,
		"base_currency":    record.BaseCurrency,
		"target_currency":  record.TargetCurrency,
		"converted_amount": record.ConvertedAmount,
		"createdAt":        time.Now(),
	})

	return err
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}

func (m mongoStorage) Migrate() error {
	return nil
}

func (m mongoStorage) Drop() error {
	return m.collection.Drop(m.ctx)
}

func (m mongoStorage) Close() error {
	return m.client.Disconnect(m.ctx)
}
