package bank

import (
	"testing"
	"time"
)

func TestHistory(t *testing.T) {
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	fixClock(t, start)

	h := newHistory()
	if _, ok := h.Last(); ok {
		t.Error("Last() on an empty history should report false")
	}
	h.add(CmdDeposit, BRL(100))
	h.add(CmdWithdrawal, BRL(20))
	h.add(CmdDeposit, BRL(5))

	if got := h.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := h.Count(CmdDeposit); got != 2 {
		t.Errorf("Count(deposit) = %d, want 2", got)
	}
	if got := h.Count(CmdWithdrawal); got != 1 {
		t.Errorf("Count(withdrawal) = %d, want 1", got)
	}

	wantKinds := []CommandType{CmdDeposit, CmdWithdrawal, CmdDeposit}
	for i, r := range h.All() {
		if r.Kind != wantKinds[i] {
			t.Errorf("record %d kind = %s, want %s", i, r.Kind, wantKinds[i])
		}
		if want := start.Add(time.Duration(i) * time.Minute); !r.Time.Equal(want) {
			t.Errorf("record %d time = %v, want %v", i, r.Time, want)
		}
	}

	last, ok := h.Last()
	if !ok || !last.Amount.Equal(BRL(5)) {
		t.Errorf("Last() = %v, %v, want deposit of 5", last, ok)
	}
}

func TestHistory_RecordsIsACopy(t *testing.T) {
	h := newHistory()
	first := h.add(CmdDeposit, BRL(100))

	records := h.Records()
	records[0].Amount = BRL(1)

	if got := h.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got := h.Records()[0]; got.ID != first.ID || !got.Amount.Equal(BRL(100)) {
		t.Errorf("record altered through Records(): %v", got)
	}
}
