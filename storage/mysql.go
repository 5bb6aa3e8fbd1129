package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/velurian/histoconv"
)

type (
	uuidGenerator struct{}

	mysqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		tableName   string
		idGenerator IDGenerator
	}
)

func (uuidGenerator) Generate() []byte {
	return []byte(uuid.New().String())
}

// NewMySQLStorage opens the MySQL history store. When config.DB is set it is
// used directly (tests); otherwise a connection is opened from the connection
// string. IDs default to random UUIDs.
func NewMySQLStorage(config MySQLConfig) (histoconv.Storage, error) {
	db := config.DB

	if db == nil {
		var err error
		db, err = sql.Open("mysql", config.ConnectionString)

		if err != nil {
			return nil, err
		}
	}

	generator := config.IDGenerator

	if generator == nil {
		generator = uuidGenerator{}
	}

	storage := mysqlStorage{
		ctx:         config.Ctx,
		db:          db,
		tableName:   config.TableName,
		idGenerator: generator,
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			return nil, err
		}
	}

	return storage, nil
}

func (m mysqlStorage) Load() ([]histoconv.ConversionRecord, error) {
	stmt, err := m.db.PrepareContext(m.ctx, fmt.Sprintf(
		"SELECT date_input, amount, base_currency, target_currency, converted_amount FROM %s ORDER BY seq;",
		m.tableName,
	))

	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(m.ctx)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	records := make([]histoconv.ConversionRecord, 0)

	for rows.Next() {
		var record histoconv.ConversionRecord

		if err := rows.Scan(
			&record.Date,
			&record.Amount,
			&record.BaseCurrency,
			&record.TargetCurrency,
			&record.ConvertedAmount,
		); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (m mysqlStorage) Append(record histoconv.ConversionRecord) error {
	tx, err := m.db.Begin()

	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf(
		"INSERT INTO %s(id, date_input, amount, base_currency, target_currency, converted_amount, created_at) VALUES(?,?,?,?,?,?,?);",
		m.tableName,
	))

	if err != nil {
		_ = tx.Rollback()
		return err
	}

	_, err = stmt.ExecContext(
		m.ctx,
		m.idGenerator.Generate(),
		record.Date,
		record.Amount,
		record.BaseCurrency,
		record.TargetCurrency,
		record.ConvertedAmount,
		time.Now(),
	)

	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}

func (m mysqlStorage) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
		id CHAR(36) PRIMARY KEY,
		seq BIGINT NOT NULL AUTO_INCREMENT,
		date_input VARCHAR(10) NOT NULL,
		amount VARCHAR(32) NOT NULL,
		base_currency CHAR(3) NOT NULL,
		target_currency CHAR(3) NOT NULL,
		converted_amount VARCHAR(32) NOT NULL,
		created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY seq_unique (seq)
	);`, m.tableName))

	return err
}

func (m mysqlStorage) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))
	return err
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}
