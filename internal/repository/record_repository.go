package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sgpa-records-api/internal/models"
)

// Sentinel errors surfaced to the service layer for mapping onto API errors.
var (
	// ErrNotFound signals a delete targeting an id that is not in the collection.
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt signals a collection file that exists but cannot be decoded.
	// Callers must never downgrade this to an empty collection.
	ErrCorrupt = errors.New("record collection is corrupt")
)

// FileRecordRepository keeps the whole record collection in one JSON file and
// rewrites it atomically on every mutation. The file is the unit of
// persistence: each create or delete re-reads the current collection, applies
// a single change and replaces the file via rename. A mutex serialises the
// read-modify-write cycles so concurrent creates cannot drop each other.
type FileRecordRepository struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger

	lastCreated time.Time

	now   func() time.Time
	newID func() string
}

// NewFileRecordRepository opens the collection at path, initialising an empty
// collection when no file exists yet. A present but undecodable file fails
// construction with ErrCorrupt so an operator can intervene before any write.
func NewFileRecordRepository(path string, logger *zap.Logger) (*FileRecordRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	r := &FileRecordRepository{
		path:   path,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := r.save(nil); err != nil {
			return nil, err
		}
		logger.Info("initialised empty record collection", zap.String("file", filepath.Base(path)))
		return r, nil
	}

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.CreatedAt.After(r.lastCreated) {
			r.lastCreated = rec.CreatedAt
		}
	}
	return r, nil
}

// Create assigns identity and creation time to the record, appends it and
// persists the grown collection. It returns the stored record and the new
// collection size. On any persistence failure nothing is considered written.
func (r *FileRecordRepository) Create(ctx context.Context, rec models.Record) (models.Record, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return models.Record{}, 0, err
	}

	rec.ID = r.newID()
	rec.CreatedAt = r.nextCreationTime()
	if rec.Subjects == nil {
		rec.Subjects = []models.SubjectGrade{}
	}

	records = append(records, rec)
	if err := r.save(records); err != nil {
		return models.Record{}, 0, err
	}
	return rec, len(records), nil
}

// List returns the full collection in creation order.
func (r *FileRecordRepository) List(ctx context.Context) ([]models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Delete removes the record with the given id and persists the shrunk
// collection, returning the new size. Unknown ids leave the file untouched.
func (r *FileRecordRepository) Delete(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return 0, err
	}

	index := -1
	for i, rec := range records {
		if rec.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, ErrNotFound
	}

	records = append(records[:index], records[index+1:]...)
	if err := r.save(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// nextCreationTime yields a non-decreasing creation instant even when the
// wall clock steps backwards between successive creates.
func (r *FileRecordRepository) nextCreationTime() time.Time {
	t := r.now().UTC()
	if t.Before(r.lastCreated) {
		t = r.lastCreated
	}
	r.lastCreated = t
	return t
}

func (r *FileRecordRepository) load() ([]models.Record, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record collection: %w", err)
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Error("record collection failed to decode", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// save writes the collection to a sibling temp file and renames it over the
// target so a failed write never leaves a partially rewritten collection.
func (r *FileRecordRepository) save(records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".records-*.json")
	if err != nil {
		return fmt.Errorf("stage record collection: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write record collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync record collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close record collection: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace record collection: %w", err)
	}
	return nil
}
