package store

import (
	"context"
	"sync"

	"github.com/sicko7947/colorstore"
)

// MemoryStore implements colorstore.ColorStore using in-memory storage
// (for testing). Conditional-insert and tenant-query semantics match the
// DynamoDB implementation.
type MemoryStore struct {
	records map[string]map[string]*colorstore.StoredColorRecord // pk -> sk -> record
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory color store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]map[string]*colorstore.StoredColorRecord),
	}
}

func (s *MemoryStore) ConditionalInsert(ctx context.Context, rec *colorstore.StoredColorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bySort, exists := s.records[rec.PartitionKey]
	if !exists {
		bySort = make(map[string]*colorstore.StoredColorRecord)
		s.records[rec.PartitionKey] = bySort
	}

	if _, exists := bySort[rec.SortKey]; exists {
		return colorstore.NewErrorf(colorstore.ErrCodeDuplicateRecord,
			"record already exists for key %s/%s", rec.PartitionKey, rec.SortKey)
	}

	bySort[rec.SortKey] = copyRecord(rec)
	return nil
}

func (s *MemoryStore) QueryByTenant(ctx context.Context, tenantID, firstNameFilter string) ([]*colorstore.StoredColorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*colorstore.StoredColorRecord{}
	for _, bySort := range s.records {
		for _, rec := range bySort {
			if rec.TenantID != tenantID {
				continue
			}
			if firstNameFilter != "" && rec.FirstName != firstNameFilter {
				continue
			}
			records = append(records, copyRecord(rec))
		}
	}

	return records, nil
}

func (s *MemoryStore) GetByPrimaryKey(ctx context.Context, partitionKey, sortKey string) (*colorstore.StoredColorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bySort, exists := s.records[partitionKey]
	if !exists {
		return nil, nil
	}

	rec, exists := bySort[sortKey]
	if !exists {
		return nil, nil
	}

	return copyRecord(rec), nil
}

// copyRecord deep-copies a record so callers never share storage memory
func copyRecord(rec *colorstore.StoredColorRecord) *colorstore.StoredColorRecord {
	recCopy := *rec
	recCopy.Colors = make([]string, len(rec.Colors))
	copy(recCopy.Colors, rec.Colors)
	return &recCopy
}
