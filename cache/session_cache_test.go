package session_cache

import (
	"testing"
	"time"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

func TestGetOrCreateNewSession(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("")
	if s == nil || s.ID == "" {
		t.Fatal("expected a fresh session with an id")
	}
	if s.HasData() {
		t.Fatal("fresh session must not report data")
	}

	again := st.GetOrCreate(s.ID)
	if again.ID != s.ID {
		t.Fatalf("known id not reused: %q vs %q", again.ID, s.ID)
	}
}

func TestGetOrCreateUnknownIDGetsFreshSession(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("does-not-exist")
	if s.ID == "does-not-exist" {
		t.Fatal("unknown ids must not be adopted")
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	st := NewStore()
	if st.Get("nope") != nil {
		t.Fatal("expected nil for an untracked id")
	}
}

func TestSetDataAndClear(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("")

	result := &models.ImportResult{
		Rows:     []models.SaleRow{{Tipo: models.TipoVenda}},
		Sales:    []models.SaleRow{{Tipo: models.TipoVenda}},
		Stats:    models.ImportStats{TotalRows: 1, TotalSales: 1},
		Warnings: []string{"ok"},
	}
	if !st.SetData(s.ID, result, nil, nil) {
		t.Fatal("SetData failed for a tracked session")
	}
	if !st.Get(s.ID).HasData() {
		t.Fatal("session should report data after SetData")
	}
	if st.Get(s.ID).Stats.TotalRows != 1 {
		t.Fatal("stats not stored")
	}

	if !st.Clear(s.ID) {
		t.Fatal("Clear failed for a tracked session")
	}
	cleared := st.Get(s.ID)
	if cleared == nil {
		t.Fatal("Clear must keep the session alive")
	}
	if cleared.HasData() || cleared.Stats != nil {
		t.Fatal("dataset survived Clear")
	}

	if st.SetData("nope", result, nil, nil) {
		t.Fatal("SetData must fail for untracked ids")
	}
	if st.Clear("nope") {
		t.Fatal("Clear must fail for untracked ids")
	}
}

func TestDelete(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("")

	if !st.Delete(s.ID) {
		t.Fatal("Delete failed for a tracked session")
	}
	if st.Get(s.ID) != nil {
		t.Fatal("session survived Delete")
	}
	if st.Delete(s.ID) {
		t.Fatal("second Delete must report false")
	}
}

func TestExpiredSessionsAreSwept(t *testing.T) {
	st := NewStore()
	old := st.GetOrCreate("")
	old.LastAccess = time.Now().Add(-TTL - time.Minute)

	// Any GetOrCreate call sweeps first.
	st.GetOrCreate("")

	if st.Get(old.ID) != nil {
		t.Fatal("expired session not swept")
	}
}

func TestCapacityEviction(t *testing.T) {
	st := NewStore()
	for i := 0; i < MaxSessions+50; i++ {
		st.GetOrCreate("")
	}
	// The sweep runs before each insert, so the store can sit one past
	// the cap but never further.
	if total := st.Stats().TotalSessions; total > MaxSessions+1 {
		t.Fatalf("store grew to %d sessions, cap is %d", total, MaxSessions)
	}
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	st := NewStore()
	victim := st.GetOrCreate("")
	victim.LastAccess = time.Now().Add(-2 * time.Hour)

	for i := 0; i < MaxSessions+1; i++ {
		st.GetOrCreate("")
	}
	if st.Get(victim.ID) != nil {
		t.Fatal("least recently used session survived eviction")
	}
}

func TestStats(t *testing.T) {
	st := NewStore()
	withData := st.GetOrCreate("")
	st.GetOrCreate("")

	st.SetData(withData.ID, &models.ImportResult{Sales: []models.SaleRow{{}}}, nil, nil)

	snap := st.Stats()
	if snap.TotalSessions != 2 {
		t.Fatalf("total = %d, want 2", snap.TotalSessions)
	}
	if snap.ActiveSessions != 2 {
		t.Fatalf("active = %d, want 2", snap.ActiveSessions)
	}
	if snap.SessionsWithData != 1 {
		t.Fatalf("with data = %d, want 1", snap.SessionsWithData)
	}
}
