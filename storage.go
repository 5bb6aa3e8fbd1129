package histoconv

// Storage is an append-only history of conversion records. Implementations
// preserve insertion order and never mutate or drop stored records. Append is
// not safe for concurrent writers; callers serialize.
type Storage interface {
	Load() ([]ConversionRecord, error)
	Append(ConversionRecord) error
	GetStorageProviderName() string
	Migrate() error
	Drop() error
	Close() error
}
