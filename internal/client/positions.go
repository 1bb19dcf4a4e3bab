package client

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/mkoval/plotline/internal/domain"
)

// positionKey mirrors the stored key layout: one entry per node.
func positionKey(nodeID string) string {
	return "node-position-" + nodeID
}

// moveThreshold is the displacement below which a drag release is treated
// as a click and not persisted.
const moveThreshold = 5.0

// PositionStore is the local override table for title label positions.
// It shadows the server's titleOffset: reads merge it over fetched nodes
// with the override winning, and writes here never touch the server. The
// backing file lives outside the database, scoped to this machine.
type PositionStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]domain.Offset
}

// OpenPositionStore loads the override table from dir/positions.json.
// A missing file is an empty table, not an error.
func OpenPositionStore(dir string) (*PositionStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating position store directory: %w", err)
	}
	p := &PositionStore{
		path:    filepath.Join(dir, "positions.json"),
		entries: make(map[string]domain.Offset),
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("reading position store: %w", err)
	}
	if err := json.Unmarshal(data, &p.entries); err != nil {
		return nil, fmt.Errorf("parsing position store: %w", err)
	}
	return p, nil
}

// Get returns the override for a node, if one was ever saved.
func (p *PositionStore) Get(nodeID string) (domain.Offset, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	off, ok := p.entries[positionKey(nodeID)]
	return off, ok
}

// Save records a new label position. Displacements within the click
// threshold on both axes are ignored so accidental nudges don't persist.
func (p *PositionStore) Save(nodeID string, off domain.Offset) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.entries[positionKey(nodeID)]
	if math.Abs(off.X-prev.X) <= moveThreshold && math.Abs(off.Y-prev.Y) <= moveThreshold {
		return nil
	}

	p.entries[positionKey(nodeID)] = off
	return p.flush()
}

func (p *PositionStore) flush() error {
	data, err := json.MarshalIndent(p.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding position store: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("writing position store: %w", err)
	}
	return nil
}
