package orderlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spiceroute/biryani-order/internal/models"
)

// Log is an append-only order log backed by a single JSON file, keyed
// by a fixed log name. Each completed checkout appends one record via
// a full read-modify-write of the stored list.
type Log struct {
	path string
	mu   sync.Mutex
}

// New creates an order log stored as <dir>/<name>.json
func New(dir, name string) *Log {
	return &Log{
		path: filepath.Join(dir, name+".json"),
	}
}

// load reads the stored records. A missing or corrupt file yields an
// empty list, never an error.
func (l *Log) load() []models.OrderRecord {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return []models.OrderRecord{}
	}

	var records []models.OrderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []models.OrderRecord{}
	}
	return records
}

// Append adds one record to the log and writes the full list back
func (l *Log) Append(record models.OrderRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := append(l.load(), record)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode order log: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write order log: %w", err)
	}

	return nil
}

// All returns every stored record
func (l *Log) All() []models.OrderRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}
