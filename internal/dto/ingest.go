package dto

type IngestStatus string

const (
	IngestStatusIngested  IngestStatus = "ingested"
	IngestStatusDuplicate IngestStatus = "duplicate"
	IngestStatusSkipped   IngestStatus = "skipped"
	IngestStatusRejected  IngestStatus = "rejected"
)

// IngestDocument identifies one journal document handed to the core. The
// caller owns transport and file handling.
type IngestDocument struct {
	AccountID uint
	Filename  string
	Text      string
}

type IngestResult struct {
	Filename string       `json:"filename"`
	Status   IngestStatus `json:"status"`
	Reason   string       `json:"reason,omitempty"`
}

// BatchReport is the per-document outcome of a directory import.
type BatchReport struct {
	Ingested   int            `json:"ingested"`
	Duplicates int            `json:"duplicates"`
	Skipped    int            `json:"skipped"`
	Rejected   int            `json:"rejected"`
	Results    []IngestResult `json:"results"`
}

func (r *BatchReport) Add(res IngestResult) {
	switch res.Status {
	case IngestStatusIngested:
		r.Ingested++
	case IngestStatusDuplicate:
		r.Duplicates++
	case IngestStatusSkipped:
		r.Skipped++
	case IngestStatusRejected:
		r.Rejected++
	}
	r.Results = append(r.Results, res)
}
