package parser

import (
	"errors"
	"math"
	"strings"
	"testing"

	"timelens/internal/model"
)

const testHeader = "Project,Client,Description,Task,User,Group,Email,Tags,Billable,Start Date,Start Time,End Date,End Time,Duration (h),Duration (decimal),Billable Rate (USD),Billable Amount (USD),Amount (USD)"

func testCSV(rows ...string) string {
	return testHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestParseDataset_Basic(t *testing.T) {
	t.Parallel()

	raw := testCSV(
		"Website,Acme,Landing page,Design,jo,Team,jo@example.com,urgent,Yes,2025-03-10,09:00:00,2025-03-10,10:30:00,1:30:00,1.5,80,120,0",
		"API,Beta Corp,Auth endpoint,Dev,kim,Team,kim@example.com,,No,2025-03-11,13:00:00,2025-03-11,14:00:00,1:00:00,1.0,80,0,0",
	)

	entries, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 15})
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Project != "Website" || first.Client != "Acme" {
		t.Fatalf("first entry fields: %+v", first)
	}
	if !first.Billable {
		t.Fatalf("Yes must map to billable=true")
	}
	if first.TimeDecimal != 1.5 {
		t.Fatalf("1.5h at 15min interval stays 1.5, got %v", first.TimeDecimal)
	}
	if math.Abs(first.Amount-75) > 1e-9 {
		t.Fatalf("amount: want 75 got %v", first.Amount)
	}
	if entries[1].Billable {
		t.Fatalf("No must map to billable=false")
	}
}

func TestParseDataset_RoundingApplied(t *testing.T) {
	t.Parallel()

	raw := testCSV(
		"Website,Acme,Work,,,,,,Yes,2025-03-10,09:00:00,2025-03-10,10:06:00,1:06:00,1.1,0,0,0",
	)

	entries, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 100, RoundingInterval: 30})
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	if entries[0].TimeDecimal != 1.5 {
		t.Fatalf("1.1h at 30min interval: want 1.5 got %v", entries[0].TimeDecimal)
	}
	if math.Abs(entries[0].Amount-150) > 1e-9 {
		t.Fatalf("amount: want 150 got %v", entries[0].Amount)
	}
}

func TestParseDataset_MissingColumns(t *testing.T) {
	t.Parallel()

	raw := "Project,Client,Description\nWebsite,Acme,Work\n"

	_, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 60})
	var missingErr *MissingColumnsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("want MissingColumnsError, got %v", err)
	}
	if len(missingErr.Missing) != 6 {
		t.Fatalf("want 6 missing columns, got %v", missingErr.Missing)
	}
	for _, col := range missingErr.Missing {
		if col == ColProject || col == ColClient || col == ColDescription {
			t.Fatalf("present column %q reported missing", col)
		}
	}
}

func TestParseDataset_AllRowsDroppedIsEmpty(t *testing.T) {
	t.Parallel()

	raw := testCSV(
		"Website,Acme,Zero,,,,,,No,2025-03-10,09:00:00,2025-03-10,09:00:00,0:00:00,0,0,0,0",
		"Website,Acme,Negative,,,,,,No,2025-03-10,09:00:00,2025-03-10,09:00:00,0:00:00,-1,0,0,0",
		"Website,Acme,NotANumber,,,,,,No,2025-03-10,09:00:00,2025-03-10,09:00:00,0:00:00,abc,0,0,0",
	)

	_, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 60})
	var emptyErr *EmptyDatasetError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("want EmptyDatasetError, got %v", err)
	}
}

func TestParseDataset_InvalidRowsSkippedValidKept(t *testing.T) {
	t.Parallel()

	raw := testCSV(
		"Website,Acme,Kept,,,,,,Yes,2025-03-10,09:00:00,2025-03-10,10:00:00,1:00:00,1.0,0,0,0",
		"Website,Acme,Dropped,,,,,,Yes,2025-03-10,09:00:00,2025-03-10,09:00:00,0:00:00,0,0,0,0",
		"API,Beta,AlsoKept,,,,,,No,2025-03-11,09:00:00,2025-03-11,11:00:00,2:00:00,2.0,0,0,0",
	)

	entries, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 60})
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 surviving entries, got %d", len(entries))
	}
	if entries[0].Description != "Kept" || entries[1].Description != "AlsoKept" {
		t.Fatalf("input order must be preserved: %q, %q", entries[0].Description, entries[1].Description)
	}
}

func TestParseDataset_HeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	raw := "PROJECT,client,Description,Start Date,START TIME,End Date,End Time,Duration (h),Duration (Decimal)\n" +
		"Website,Acme,Work,2025-03-10,09:00:00,2025-03-10,10:00:00,1:00:00,1.0\n"

	entries, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 60})
	if err != nil {
		t.Fatalf("header matching must ignore case: %v", err)
	}
	if entries[0].Project != "Website" {
		t.Fatalf("project: got %q", entries[0].Project)
	}
}

func TestParseDataset_ShortRecordTolerated(t *testing.T) {
	t.Parallel()

	// 行尾列缺失时按空值处理而非中止
	raw := testHeader + "\n" +
		"Website,Acme,Work,,,,,,Yes,2025-03-10,09:00:00,2025-03-10,10:00:00,1:00:00,1.0\n"

	entries, err := ParseDataset(raw, model.ImportConfig{HourlyRate: 50, RoundingInterval: 60})
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	if entries[0].BillableRate != 0 || entries[0].BillableAmount != 0 {
		t.Fatalf("missing trailing columns must default to zero: %+v", entries[0])
	}
}
