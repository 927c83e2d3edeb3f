package syncreport

// Result is the outcome of syncing one record within a batch.
type Result struct {
	id  string
	err error
}

// NewOK creates a successful per-record result.
func NewOK(id string) Result { return Result{id: id} }

// NewError creates a failed per-record result.
func NewError(id string, err error) Result { return Result{id: id, err: err} }

// ID returns the record identifier.
func (r Result) ID() string { return r.id }

// Err returns the failure, nil on success.
func (r Result) Err() error { return r.err }

// OK reports whether the record synced successfully.
func (r Result) OK() bool { return r.err == nil }

// Report aggregates a full-collection sync. "Success" means every record was
// attempted, not that every record succeeded.
type Report struct {
	results []Result
}

// Append records one per-record outcome.
func (r *Report) Append(res Result) {
	r.results = append(r.results, res)
}

// Results returns per-record outcomes in sync order.
func (r *Report) Results() []Result { return r.results }

// Attempted returns the number of records processed.
func (r *Report) Attempted() int { return len(r.results) }

// Succeeded returns the number of records upserted.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the failed per-record results.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}
