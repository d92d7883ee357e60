package colorstore

import "context"

// ColorStore defines the persistence interface for color records.
// The interface lives in the root package so the store implementations
// and the service can both depend on it without an import cycle.
type ColorStore interface {
	// ConditionalInsert atomically persists a record only if no item with
	// the same primary key already exists. A pre-existing key fails with
	// DUPLICATE_RECORD; transport failures fail with STORE_UNAVAILABLE.
	// No retry happens at this layer.
	ConditionalInsert(ctx context.Context, rec *StoredColorRecord) error

	// QueryByTenant returns every record whose tenant attribute equals
	// tenantID, optionally restricted to records whose firstName equals
	// firstNameFilter (post-index equality filter, not a key range).
	// No match is an empty slice, never an error. Result ordering is
	// unspecified.
	QueryByTenant(ctx context.Context, tenantID, firstNameFilter string) ([]*StoredColorRecord, error)

	// GetByPrimaryKey is a point lookup. An absent item returns
	// (nil, nil).
	GetByPrimaryKey(ctx context.Context, partitionKey, sortKey string) (*StoredColorRecord, error)
}
