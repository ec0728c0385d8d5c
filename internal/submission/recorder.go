package submission

import (
	"time"

	"github.com/pokefit/pokefit/internal/survey"
)

// Recorder keeps the records submitted during one run in memory.
type Recorder struct {
	now     func() time.Time
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Record converts sub into a Record, validates it and keeps it.
func (r *Recorder) Record(sub survey.Submission) (Record, error) {
	rec := NewRecord(sub, r.now())
	if err := Validate(rec); err != nil {
		return Record{}, err
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// Records returns everything recorded so far, oldest first.
func (r *Recorder) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Flush writes every record to enc.
func (r *Recorder) Flush(enc *Encoder) error {
	for _, rec := range r.records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return enc.Close()
}

// Last returns the most recent record.
func (r *Recorder) Last() (Record, bool) {
	if len(r.records) == 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}
