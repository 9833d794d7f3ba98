package services

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"repair-app/internal/models"
)

func reportTickets(n int) []models.Ticket {
	tickets := make([]models.Ticket, 0, n)
	statuses := []models.TicketStatus{
		models.StatusNew, models.StatusAssigned, models.StatusInProgress,
		models.StatusCompleted, models.StatusCancelled,
	}
	for i := 0; i < n; i++ {
		tickets = append(tickets, models.Ticket{
			ID:           fmt.Sprintf("t%d", i),
			TicketNumber: fmt.Sprintf("TKT-%08d", i),
			DeviceType:   models.DeviceLaptop,
			Brand:        "Dell",
			Model:        "XPS 13",
			Problem:      "no power",
			Status:       statuses[i%len(statuses)],
			CreatedAt:    time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		})
	}
	return tickets
}

func TestReportIsValidPDF(t *testing.T) {
	svc := NewReportService()
	opts := ReportOptions{
		ReportType:  "all",
		GeneratedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := svc.Generate(reportTickets(3), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
}

func TestReportDeterministic(t *testing.T) {
	svc := NewReportService()
	opts := ReportOptions{
		ReportType:  "completed",
		DateFrom:    "2025-05-01",
		DateTo:      "2025-05-31",
		GeneratedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	tickets := reportTickets(7)

	first, err := svc.Generate(tickets, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := svc.Generate(tickets, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same input produced different PDF bytes")
	}

	other, err := svc.Generate(reportTickets(8), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bytes.Equal(first, other) {
		t.Error("different ticket lists produced identical PDF bytes")
	}
}

func TestReportPaginatesLongLists(t *testing.T) {
	svc := NewReportService()
	opts := ReportOptions{GeneratedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	short, err := svc.Generate(reportTickets(2), opts)
	if err != nil {
		t.Fatalf("generate short: %v", err)
	}
	long, err := svc.Generate(reportTickets(60), opts)
	if err != nil {
		t.Fatalf("generate long: %v", err)
	}

	if len(long) <= len(short) {
		t.Errorf("60-ticket report (%d bytes) not larger than 2-ticket report (%d bytes)", len(long), len(short))
	}

	if pages := pdfPageCount(long); pages < 2 {
		t.Errorf("long report has %d page(s), want at least 2", pages)
	}
	if pages := pdfPageCount(short); pages != 1 {
		t.Errorf("short report has %d page(s), want 1", pages)
	}
}

func pdfPageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestReportTypeLabels(t *testing.T) {
	cases := map[string]string{
		"completed": "ZAVERSHENNYE",
		"current":   "TEKUSHCHIE",
		"all":       "VSE",
		"":          "VSE",
	}
	for in, want := range cases {
		if got := reportTypeLabel(in); got != want {
			t.Errorf("reportTypeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
