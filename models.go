package colorstore

// ColorSubmission is the caller-supplied payload for a submit operation.
// TenantID names the tenant the submission is scoped to; the acting
// tenant must match it before anything is persisted.
type ColorSubmission struct {
	TenantID  string `json:"tenantId"`
	FirstName string `json:"firstName"`
	Color     string `json:"color"`
}

// StoredColorRecord is the persisted shape of a single color submission.
// PartitionKey and SortKey are derived from a RecordKey at write time and
// are immutable once written; there is no update path for a record.
//
// TenantID duplicates the tenant segment embedded in PartitionKey so the
// tenant-scoped secondary index can key on it directly instead of parsing
// the composite key. The two must never diverge.
type StoredColorRecord struct {
	PartitionKey string   `json:"pk" dynamodbav:"pk"`
	SortKey      string   `json:"sk" dynamodbav:"sk"`
	TenantID     string   `json:"tenantId" dynamodbav:"tenantId"`
	FirstName    string   `json:"firstName" dynamodbav:"firstName"`
	Color        string   `json:"color" dynamodbav:"color"`
	Colors       []string `json:"colors" dynamodbav:"colors"`
	Timestamp    string   `json:"timestamp" dynamodbav:"timestamp"`
}

// ColorRecordView is the outbound shape of a record. TenantID and SortKey
// are storage-internal and never cross the system boundary; the PK field
// carries the un-prefixed subject name, not the composite lookup key.
type ColorRecordView struct {
	PK        string   `json:"pk"`
	FirstName string   `json:"firstName"`
	Color     string   `json:"color"`
	Colors    []string `json:"colors"`
	Timestamp string   `json:"timestamp"`
}

// NewColorRecordView maps a stored record to its outbound view.
func NewColorRecordView(rec *StoredColorRecord) *ColorRecordView {
	colors := make([]string, len(rec.Colors))
	copy(colors, rec.Colors)

	return &ColorRecordView{
		PK:        rec.FirstName,
		FirstName: rec.FirstName,
		Color:     rec.Color,
		Colors:    colors,
		Timestamp: rec.Timestamp,
	}
}

// SubmitResult is the envelope returned by a successful submit.
type SubmitResult struct {
	Data       *ColorRecordView `json:"data"`
	StatusCode int              `json:"statusCode"`
}

// SearchResult is the envelope returned by a successful search. Data is
// always non-nil; an empty slice is a valid result, not an error.
type SearchResult struct {
	Data       []*ColorRecordView `json:"data"`
	StatusCode int                `json:"statusCode"`
}
