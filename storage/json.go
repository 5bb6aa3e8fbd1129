package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/velurian/histoconv"
)

// ErrCorruptHistory marks an existing history document that cannot be parsed.
// It is never silently treated as an empty history.
var ErrCorruptHistory = errors.New("history document is corrupt")

type (
	// CorruptHistoryError names the unreadable history file and wraps the
	// parse error. It matches ErrCorruptHistory under errors.Is.
	CorruptHistoryError struct {
		File string
		Err  error
	}

	jsonStorage struct {
		ctx  context.Context
		file string
	}
)

func (e *CorruptHistoryError) Error() string {
	return fmt.Sprintf("history file %s is corrupt: %v", e.File, e.Err)
}

func (e *CorruptHistoryError) Unwrap() error {
	return e.Err
}

func (e *CorruptHistoryError) Is(target error) bool {
	return target == ErrCorruptHistory
}

// NewJSONStorage returns the file-backed history store. The file is a single
// pretty-printed JSON array of records in insertion order, created lazily on
// the first append. Appends are read-modify-write and must be serialized by
// the caller.
func NewJSONStorage(config JSONConfig) (histoconv.Storage, error) {
	storage := jsonStorage{
		ctx:  config.Ctx,
		file: config.File,
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			return nil, err
		}
	}

	return storage, nil
}

func (j jsonStorage) Load() ([]histoconv.ConversionRecord, error) {
	data, err := ioutil.ReadFile(j.file)

	if os.IsNotExist(err) {
		return []histoconv.ConversionRecord{}, nil
	}

	if err != nil {
		return nil, err
	}

	var records []histoconv.ConversionRecord

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptHistoryError{File: j.file, Err: err}
	}

	return records, nil
}

func (j jsonStorage) Append(record histoconv.ConversionRecord) error {
	records, err := j.Load()

	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")

	if err != nil {
		return err
	}

	return j.writeAtomically(data)
}

// writeAtomically writes the document next to the target file and renames it
// into place, so a crash mid-write never leaves a truncated history behind.
func (j jsonStorage) writeAtomically(data []byte) error {
	dir := filepath.Dir(j.file)

	tmp, err := ioutil.TempFile(dir, ".history-*.json")

	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), j.file); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}

func (j jsonStorage) GetStorageProviderName() string {
	return string(JSONFile)
}

func (j jsonStorage) Migrate() error {
	return os.MkdirAll(filepath.Dir(j.file), 0755)
}

func (j jsonStorage) Drop() error {
	err := os.Remove(j.file)

	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (j jsonStorage) Close() error {
	return nil
}
