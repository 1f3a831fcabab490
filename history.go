package bank

import (
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// now is the clock used to timestamp records, tests replace it.
var now = time.Now

// Record is an entry of a History: the effect of one registered transaction.
type Record struct {
	ID     uuid.UUID
	Kind   CommandType
	Amount Money
	Time   time.Time
}

// MarshalJSON implements the json.Marshaler interface for Record.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("command", r.Kind)
	w.Append("time", r.Time.Format(time.RFC3339))
	w.EmbedFrom(r.Amount)
	return w.MarshalJSON()
}

// History is the append-only log of the transactions applied to an account.
//
// Records are kept in insertion order, which is also chronological order.
type History struct {
	mu      sync.RWMutex
	records []Record
}

func newHistory() *History {
	return &History{records: make([]Record, 0)}
}

// add appends a record for a transaction of kind and amount, timestamped now.
func (h *History) add(kind CommandType, amount Money) Record {
	r := Record{ID: uuid.New(), Kind: kind, Amount: amount, Time: now()}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return r
}

// Len returns the number of records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Count returns the number of records of kind.
func (h *History) Count(kind CommandType) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, r := range h.records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// Records returns a copy of all the records.
func (h *History) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.records)
}

// All iterates over a snapshot of the records, oldest first.
func (h *History) All() iter.Seq2[int, Record] {
	return slices.All(h.Records())
}

// Last returns the most recent record, if any.
func (h *History) Last() (Record, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.records) == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}
