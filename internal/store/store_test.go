package store

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"timelens/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReplaceAndListEntries(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	entries := []model.TimeEntry{
		{
			ID:          "Website-1741590000000-09:00:00",
			Project:     "Website",
			Client:      "Acme",
			Description: "Landing page",
			Task:        "Design",
			User:        "jo",
			Group:       "Design Team",
			Email:       "jo@example.com",
			Tags:        "urgent",
			Billable:    true,
			StartDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "09:00:00",
			EndDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			EndTime:     "10:30:00",
			TimeHours:   "1:30:00",
			TimeDecimal: 1.5,
			Amount:      75,
		},
		{
			ID:          "API-1741676400000-13:00:00",
			Project:     "API",
			Client:      "Beta",
			TimeDecimal: 2,
			TimeHours:   "2:00:00",
			Amount:      100,
		},
	}

	if err := s.ReplaceEntries(entries); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	got, err := s.ListEntries(EntryQueryOptions{})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].ID != entries[0].ID || got[1].ID != entries[1].ID {
		t.Fatalf("import order not preserved: %q, %q", got[0].ID, got[1].ID)
	}

	first := got[0]
	if first.Project != "Website" || first.User != "jo" || first.Group != "Design Team" {
		t.Fatalf("fields lost in round trip: %+v", first)
	}
	if !first.Billable {
		t.Fatalf("billable flag lost")
	}
	if !first.StartDate.Equal(entries[0].StartDate) {
		t.Fatalf("start date round trip: want %v got %v", entries[0].StartDate, first.StartDate)
	}
	if math.Abs(first.TimeDecimal-1.5) > 1e-9 || math.Abs(first.Amount-75) > 1e-9 {
		t.Fatalf("numeric round trip: %+v", first)
	}
}

func TestReplaceEntries_Overwrites(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if err := s.ReplaceEntries([]model.TimeEntry{{ID: "old", Project: "Old"}}); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}
	if err := s.ReplaceEntries([]model.TimeEntry{{ID: "new", Project: "New"}}); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}

	count, err := s.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("replace must overwrite, want 1 entry got %d", count)
	}

	got, _ := s.ListEntries(EntryQueryOptions{})
	if got[0].ID != "new" {
		t.Fatalf("want new entry to survive, got %q", got[0].ID)
	}
}

func TestListEntries_Filters(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.ReplaceEntries([]model.TimeEntry{
		{ID: "1", Project: "Website", Client: "Acme"},
		{ID: "2", Project: "API", Client: "Acme"},
		{ID: "3", Project: "Website", Client: "Beta"},
	})
	if err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	client := "Acme"
	got, err := s.ListEntries(EntryQueryOptions{Client: &client})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("client filter: got %+v", got)
	}

	project := "Website"
	got, err = s.ListEntries(EntryQueryOptions{Client: &client, Project: &project})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("combined filter: got %+v", got)
	}

	got, err = s.ListEntries(EntryQueryOptions{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("pagination: got %+v", got)
	}
}

func TestEntries_DuplicateIDsAllowed(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.ReplaceEntries([]model.TimeEntry{
		{ID: "same", Project: "A"},
		{ID: "same", Project: "B"},
	})
	if err != nil {
		t.Fatalf("duplicate entry ids must be storable: %v", err)
	}

	count, _ := s.CountEntries()
	if count != 2 {
		t.Fatalf("want 2 rows, got %d", count)
	}
}

func TestSettings(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if _, err := s.GetSetting("missing"); err == nil {
		t.Fatalf("missing key must error")
	}

	if err := s.SetBillingSettings(42.5, 30); err != nil {
		t.Fatalf("SetBillingSettings failed: %v", err)
	}

	rate, interval, err := s.GetBillingSettings()
	if err != nil {
		t.Fatalf("GetBillingSettings failed: %v", err)
	}
	if rate != 42.5 || interval != 30 {
		t.Fatalf("billing settings round trip: got %v / %d", rate, interval)
	}

	// 覆盖写
	if err := s.SetBillingSettings(60, 15); err != nil {
		t.Fatalf("SetBillingSettings failed: %v", err)
	}
	rate, interval, _ = s.GetBillingSettings()
	if rate != 60 || interval != 15 {
		t.Fatalf("upsert: got %v / %d", rate, interval)
	}
}

func TestSnapshots(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	snap := model.Snapshot{
		Title:       "March report",
		Description: "shared with client",
		TimeEntries: []model.TimeEntry{
			{ID: "1", Project: "Website", Client: "Acme", TimeDecimal: 1.5},
		},
		DefaultHourlyRate:       50,
		DefaultRoundingInterval: 30,
		ActiveView:              "invoice",
	}

	id, err := s.SaveSnapshot(snap)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if id == "" {
		t.Fatalf("snapshot id must not be empty")
	}

	got, err := s.GetSnapshot(id)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got.Title != "March report" || got.ActiveView != "invoice" {
		t.Fatalf("snapshot round trip: %+v", got)
	}
	if len(got.TimeEntries) != 1 || got.TimeEntries[0].Project != "Website" {
		t.Fatalf("snapshot entries lost: %+v", got.TimeEntries)
	}
	if got.DefaultHourlyRate != 50 || got.DefaultRoundingInterval != 30 {
		t.Fatalf("snapshot settings lost: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("createdAt must be set")
	}

	items, err := s.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != id || items[0].EntryCount != 1 {
		t.Fatalf("snapshot list: %+v", items)
	}

	if err := s.DeleteSnapshot(id); err != nil {
		t.Fatalf("DeleteSnapshot failed: %v", err)
	}
	if _, err := s.GetSnapshot(id); err != ErrSnapshotNotFound {
		t.Fatalf("deleted snapshot must be gone, got %v", err)
	}
	if err := s.DeleteSnapshot(id); err != ErrSnapshotNotFound {
		t.Fatalf("double delete must report not found, got %v", err)
	}
}

func TestImportLog(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	last, err := s.LastImportTime()
	if err != nil {
		t.Fatalf("LastImportTime failed: %v", err)
	}
	if !last.IsZero() {
		t.Fatalf("no imports yet, want zero time got %v", last)
	}

	err = s.AddImportLog(ImportLog{
		Filename:     "timesheet.csv",
		ImportedRows: 40,
		DroppedRows:  2,
		DurationMs:   12,
	})
	if err != nil {
		t.Fatalf("AddImportLog failed: %v", err)
	}

	last, err = s.LastImportTime()
	if err != nil {
		t.Fatalf("LastImportTime failed: %v", err)
	}
	if last.IsZero() {
		t.Fatalf("import time must be recorded")
	}
}
