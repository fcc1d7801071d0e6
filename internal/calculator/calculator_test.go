package calculator

import (
	"math"
	"reflect"
	"testing"

	"timelens/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	entries := []model.TimeEntry{
		{Project: "Website", Client: "Acme", TimeDecimal: 1.5, Amount: 75, Billable: true},
		{Project: "Website", Client: "Acme", TimeDecimal: 2, Amount: 100, Billable: false},
		{Project: "API", Client: "Beta", TimeDecimal: 0.5, Amount: 25, Billable: true},
	}

	s := Summarize(entries)

	if s.TotalEntries != 3 {
		t.Fatalf("totalEntries: want 3 got %d", s.TotalEntries)
	}
	if math.Abs(s.TotalHours-4) > 1e-9 {
		t.Fatalf("totalHours: want 4 got %v", s.TotalHours)
	}
	if math.Abs(s.TotalAmount-200) > 1e-9 {
		t.Fatalf("totalAmount: want 200 got %v", s.TotalAmount)
	}
	if math.Abs(s.BillableHours-2) > 1e-9 {
		t.Fatalf("billableHours: want 2 got %v", s.BillableHours)
	}
	if s.UniqueProjects != 2 || s.UniqueClients != 2 {
		t.Fatalf("unique counts: got %d projects / %d clients", s.UniqueProjects, s.UniqueClients)
	}
	if math.Abs(s.AvgHourlyRate-50) > 1e-9 {
		t.Fatalf("avgHourlyRate: want 50 got %v", s.AvgHourlyRate)
	}

	web := s.ProjectBreakdown["Website"]
	if web.EntryCount != 2 || math.Abs(web.Hours-3.5) > 1e-9 || math.Abs(web.Amount-175) > 1e-9 {
		t.Fatalf("website breakdown: %+v", web)
	}
	beta := s.ClientBreakdown["Beta"]
	if beta.EntryCount != 1 || math.Abs(beta.Hours-0.5) > 1e-9 {
		t.Fatalf("beta breakdown: %+v", beta)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	if s.TotalEntries != 0 || s.TotalHours != 0 || s.TotalAmount != 0 {
		t.Fatalf("empty summary must be all zero: %+v", s)
	}
	if s.AvgHourlyRate != 0 {
		t.Fatalf("avg rate on empty set must be 0, got %v", s.AvgHourlyRate)
	}
	if len(s.ProjectBreakdown) != 0 || len(s.ClientBreakdown) != 0 {
		t.Fatalf("breakdowns must be empty: %+v", s)
	}
}

func TestUniqueProjectsAndClients_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	entries := []model.TimeEntry{
		{Project: "B", Client: "Y"},
		{Project: "A", Client: "X"},
		{Project: "B", Client: "X"},
		{Project: "C", Client: "Y"},
	}

	if got := UniqueProjects(entries); !reflect.DeepEqual(got, []string{"B", "A", "C"}) {
		t.Fatalf("unique projects: got %v", got)
	}
	if got := UniqueClients(entries); !reflect.DeepEqual(got, []string{"Y", "X"}) {
		t.Fatalf("unique clients: got %v", got)
	}
}
