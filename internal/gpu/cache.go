package gpu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// ErrIncompleteCache is returned when the cache file lacks a field
var ErrIncompleteCache = errors.New("cache record is incomplete")

// Prober reads the identity of the GPU adapter from the platform
type Prober interface {
	ProbeDeviceIdentity() (models.DeviceIdentity, bool)
	ProbeSubsystemIdentity() (models.SubsystemIdentity, bool)
}

// Enumerator is the slow generic hardware enumeration backend. It is
// only consulted when the cache is (re)generated, and must answer for
// the adapter identified by id or not at all.
type Enumerator interface {
	PrettyName(id models.DeviceIdentity) (string, bool)
}

// CachePath returns the cache file under dir, or the fallback in the
// current directory when dir is empty.
func CachePath(dir string) string {
	if dir == "" {
		return config.FallbackCachePath
	}
	return filepath.Join(dir, config.CacheFileName)
}

// Store persists a single CacheRecord. There is no locking: concurrent
// writers race and the last one wins, which readers tolerate because
// they re-check the ids before trusting the name.
type Store struct {
	path       string
	prober     Prober
	enumerator Enumerator

	// notices receives the human readable "Created cache at" line
	notices io.Writer
}

// NewStore creates a store for the cache file at path
func NewStore(path string, prober Prober, enumerator Enumerator) *Store {
	return &Store{
		path:       path,
		prober:     prober,
		enumerator: enumerator,
		notices:    os.Stderr,
	}
}

// Path returns the cache file location
func (s *Store) Path() string {
	return s.path
}

// cacheFile mirrors CacheRecord with pointers so missing keys are detected
type cacheFile struct {
	GPUNamePretty *string `yaml:"gpu_name_pretty"`
	GPUVendorID   *string `yaml:"gpu_vendor_id"`
	GPUDeviceID   *string `yaml:"gpu_device_id"`
}

// Read loads the record. Any I/O or parse failure is returned to the
// caller, which decides whether to regenerate.
func (s *Store) Read() (*models.CacheRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var file cacheFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}
	if file.GPUNamePretty == nil || file.GPUVendorID == nil || file.GPUDeviceID == nil {
		return nil, ErrIncompleteCache
	}

	return &models.CacheRecord{
		GPUNamePretty: *file.GPUNamePretty,
		GPUVendorID:   *file.GPUVendorID,
		GPUDeviceID:   *file.GPUDeviceID,
	}, nil
}

// Write computes a fresh record and persists it. The record is returned
// even when persisting fails so the caller can still use it.
func (s *Store) Write() (*models.CacheRecord, error) {
	record := s.defaults()

	data, err := yaml.Marshal(record)
	if err != nil {
		return record, fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return record, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return record, fmt.Errorf("failed to write cache: %w", err)
	}

	fmt.Fprintf(s.notices, "Created cache at %s\n", s.path)
	return record, nil
}

// defaults reads the adapter ids and the slow backend for the name of
// that same adapter. Absent values are stored as empty strings.
func (s *Store) defaults() *models.CacheRecord {
	record := &models.CacheRecord{}

	id, ok := s.prober.ProbeDeviceIdentity()
	if !ok {
		return record
	}
	record.GPUVendorID = id.VendorID
	record.GPUDeviceID = id.DeviceID

	if name, ok := s.enumerator.PrettyName(id); ok {
		record.GPUNamePretty = name
	}
	return record
}
