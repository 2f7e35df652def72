package checker

// minRecordFields is the number of fields a row must have to be
// evaluated. Fields beyond the fifth are ignored.
const minRecordFields = 5

// CredentialRecord is one parsed row of credential metadata. Records
// are transient: one is built per row and discarded after evaluation.
// The Secret field is never logged or persisted anywhere in this
// module.
type CredentialRecord struct {
	Name         string
	Username     string
	Secret       string
	URL          string
	CreationDate string
}

// recordFromRow destructures a CSV row into a CredentialRecord. The
// caller has already checked the row has at least minRecordFields
// fields.
func recordFromRow(row []string) CredentialRecord {
	return CredentialRecord{
		Name:         row[0],
		Username:     row[1],
		Secret:       row[2],
		URL:          row[3],
		CreationDate: row[4],
	}
}

// Finding describes one credential whose age exceeded the threshold.
// The secret is deliberately absent.
type Finding struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	URL      string `json:"url"`
	AgeDays  int    `json:"age_days"`
}

// Result is the outcome of one completed scan. Findings appear in file
// order.
type Result struct {
	RunID         string    `json:"run_id"`
	File          string    `json:"file"`
	ReferenceDate string    `json:"reference_date"`
	MaxAgeDays    int       `json:"max_age_days"`
	RowsEvaluated int       `json:"rows_evaluated"`
	RowsSkipped   int       `json:"rows_skipped"`
	DateErrors    int       `json:"date_errors"`
	ExpiredCount  int       `json:"expired_count"`
	Findings      []Finding `json:"findings,omitempty"`
}
