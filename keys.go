package colorstore

import "fmt"

// RecordKey is the normalized identity of a stored record. The composite
// lookup key and the tenant index attribute are both computed from these
// fields at write time; nothing in the codebase parses a formatted key
// back into its parts.
type RecordKey struct {
	// Tenant is the isolated namespace the record belongs to.
	Tenant string
	// Subject is the un-prefixed name the submission is about.
	Subject string
	// Sequence discriminates successive submissions for the same
	// (tenant, subject) pair. Wall-clock milliseconds at write time.
	Sequence int64
}

// NewRecordKey builds a RecordKey, rejecting empty tenant or subject.
func NewRecordKey(tenant, subject string, nowMillis int64) (RecordKey, error) {
	if tenant == "" {
		return RecordKey{}, NewError(ErrCodeInvalidSubmission, "tenant must not be empty")
	}
	if subject == "" {
		return RecordKey{}, NewError(ErrCodeInvalidSubmission, "subject must not be empty")
	}
	return RecordKey{Tenant: tenant, Subject: subject, Sequence: nowMillis}, nil
}

// PartitionKey returns the composite lookup key: TENANT#{tenant}#USER#{subject}
func (k RecordKey) PartitionKey() string {
	return fmt.Sprintf("TENANT#%s#USER#%s", k.Tenant, k.Subject)
}

// SortKey returns the sequence discriminator: COLOR#{sequence}
func (k RecordKey) SortKey() string {
	return fmt.Sprintf("COLOR#%d", k.Sequence)
}
