package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"repair-app/internal/models"
)

type ReportOptions struct {
	ReportType  string    `json:"reportType"`
	DateFrom    string    `json:"dateFrom"`
	DateTo      string    `json:"dateTo"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Базовые шрифты PDF без кириллицы, поэтому подписи транслитом.
var statusLabels = map[models.TicketStatus]string{
	models.StatusNew:        "NOVAYA",
	models.StatusAssigned:   "NAZNACHENA",
	models.StatusInProgress: "V RABOTE",
	models.StatusCompleted:  "ZAVERSHENA",
	models.StatusCancelled:  "OTMENENA",
}

var deviceLabels = map[models.DeviceType]string{
	models.DeviceSmartphone: "SMARTFON",
	models.DeviceTablet:     "PLANSHET",
	models.DeviceLaptop:     "NOUTBUK",
	models.DevicePC:         "PK",
	models.DeviceConsole:    "KONSOL",
	models.DeviceOther:      "DRUGOE",
}

// ReportService — чистое преобразование списка тикетов в PDF. Состояния
// нет; одинаковый вход и одинаковые опции дают байт-в-байт одинаковый
// вывод (дата создания берётся из опций, не из часов).
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

func (s *ReportService) Generate(tickets []models.Ticket, opts ReportOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		s.centered(pdf, 290, fmt.Sprintf("Stranitsa %d iz {nb}", pdf.PageNo()))
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	s.centered(pdf, 15, "OTCHET PO ZAYAVKAM")

	pdf.SetFont("Helvetica", "", 10)
	s.centered(pdf, 22, "Tip: "+reportTypeLabel(opts.ReportType))

	if opts.DateFrom != "" || opts.DateTo != "" {
		from, to := opts.DateFrom, opts.DateTo
		if from == "" {
			from = "nachalo"
		}
		if to == "" {
			to = "konec"
		}
		s.centered(pdf, 28, fmt.Sprintf("Period: %s - %s", from, to))
	}
	s.centered(pdf, 34, "Data sozdaniya: "+opts.GeneratedAt.Format("02.01.2006"))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 45, "STATISTIKA:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 52, fmt.Sprintf("Vsego zayavok: %d", len(tickets)))

	counts := countByStatus(tickets)
	y := 58.0
	for _, line := range []struct {
		label  string
		status models.TicketStatus
	}{
		{"Novyh", models.StatusNew},
		{"Naznacheno", models.StatusAssigned},
		{"V rabote", models.StatusInProgress},
		{"Zaversheno", models.StatusCompleted},
		{"Otmeneno", models.StatusCancelled},
	} {
		pdf.Text(20, y, fmt.Sprintf("%s: %d", line.label, counts[line.status]))
		y += 6
	}

	y += 6
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, "SPISOK ZAYAVOK:")
	y += 8

	for i, ticket := range tickets {
		if y > 270 {
			pdf.AddPage()
			y = 20
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(20, y, fmt.Sprintf("%d. %s", i+1, ticket.TicketNumber))
		y += 5

		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(25, y, "Status: "+labelOr(statusLabels[ticket.Status], string(ticket.Status)))
		y += 4
		pdf.Text(25, y, "Ustroystvo: "+labelOr(deviceLabels[ticket.DeviceType], string(ticket.DeviceType)))
		y += 4
		pdf.Text(25, y, fmt.Sprintf("Model: %s %s", ticket.Brand, ticket.Model))
		y += 4
		pdf.Text(25, y, "Data: "+ticket.CreatedAt.Format("02.01.2006"))
		y += 4

		if ticket.Problem != "" && len(ticket.Problem) < 100 {
			problem := ticket.Problem
			if len(problem) > 80 {
				problem = problem[:80] + "..."
			}
			pdf.Text(25, y, "Problema: "+problem)
			y += 4
		}

		y += 4
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) centered(pdf *gofpdf.Fpdf, y float64, text string) {
	pageWidth, _ := pdf.GetPageSize()
	pdf.Text((pageWidth-pdf.GetStringWidth(text))/2, y, text)
}

func reportTypeLabel(reportType string) string {
	switch reportType {
	case "completed":
		return "ZAVERSHENNYE"
	case "current":
		return "TEKUSHCHIE"
	default:
		return "VSE"
	}
}

func countByStatus(tickets []models.Ticket) map[models.TicketStatus]int {
	counts := make(map[models.TicketStatus]int)
	for _, t := range tickets {
		counts[t.Status]++
	}
	return counts
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
