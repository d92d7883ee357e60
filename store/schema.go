// Package store provides persistence implementations for the color
// record store. The ColorStore interface is defined in the parent
// package (../store_interface.go) to avoid import cycles between the
// domain and store packages.
//
// This package contains concrete implementations:
//   - DynamoDBStore: Production AWS DynamoDB backend
//   - MemoryStore: In-memory backend for testing
package store

// DynamoDB schema constants.
//
// Table primary key is (pk, sk): pk = TENANT#{tenant}#USER#{subject},
// sk = COLOR#{sequence}. The TenantIndex GSI is keyed on the tenantId
// attribute alone, with firstName and timestamp carried as non-key
// attributes for filtering.
const (
	// Table attributes
	AttrPK        = "pk"
	AttrSK        = "sk"
	AttrTenantID  = "tenantId"
	AttrFirstName = "firstName"
	AttrColor     = "color"
	AttrColors    = "colors"
	AttrTimestamp = "timestamp"

	// Index names
	IndexTenant = "TenantIndex"
)
