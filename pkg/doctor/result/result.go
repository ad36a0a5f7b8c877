// Package result accumulates finalized check outcomes in deterministic order
// and supports non-destructive filtering for presentation.
package result

import (
	"appdoctor/pkg/doctor/check"
)

// Record is the finalized, formatter-ready projection of one completed check.
type Record struct {
	Name    string `json:"name"    yaml:"name"`
	Status  string `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Collector accumulates records in insertion order. It is mutated only from
// the scheduler's stage handlers, never concurrently, and is constructed
// fresh per invocation.
type Collector struct {
	records []Record
	byName  map[string]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		byName: make(map[string]int),
	}
}

// Record appends a record for the named check. If a record for the name
// already exists the new one replaces it in place (last-write-wins); under
// correct scheduling this does not occur.
func (c *Collector) Record(name string, status check.Status, message string) {
	record := Record{Name: name, Status: status.String(), Message: message}

	if idx, exists := c.byName[name]; exists {
		c.records[idx] = record

		return
	}

	c.byName[name] = len(c.records)
	c.records = append(c.records, record)
}

// All returns every collected record in insertion order.
func (c *Collector) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)

	return out
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	return len(c.records)
}

// Filter returns the records matching the predicate, preserving order. The
// underlying collected set is not mutated, so repeated and alternate
// filtering is always possible from the same run.
func (c *Collector) Filter(pred func(Record) bool) []Record {
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if pred(r) {
			out = append(out, r)
		}
	}

	return out
}

// Spotlight keeps only the records that demand attention, i.e. everything
// that is not a plain success.
func Spotlight(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Status != check.StatusSuccess.String() {
			out = append(out, r)
		}
	}

	return out
}

// AllClear reports whether a filtered view is empty because every check
// succeeded, as opposed to no checks having run at all (which is an error
// condition raised earlier, during resolution).
func AllClear(filtered []Record, total int) bool {
	return len(filtered) == 0 && total > 0
}
