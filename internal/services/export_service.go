package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/medlifequest/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Title",
	"Category",
	"Severity",
	"Description",
}

// ExportService turns the symptom log into export rows, oldest first, with
// dates rendered in the configured location.
type ExportService struct {
	location *time.Location
	now      func() time.Time
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportJSONEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	LoggedAt    string `json:"logged_at"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type ExportCSVRow struct {
	Date        string
	Time        string
	Title       string
	Category    string
	Severity    string
	Description string
}

func NewExportService(location *time.Location, now func() time.Time) *ExportService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ExportService{location: location, now: now}
}

// SelectRange keeps the symptoms logged on a day inside exportRange, sorted
// oldest first.
func (service *ExportService) SelectRange(symptoms []models.Symptom, exportRange ExportRange) []models.Symptom {
	selected := make([]models.Symptom, 0, len(symptoms))
	for _, symptom := range symptoms {
		if exportRange.Includes(symptom.LoggedAt, service.location) {
			selected = append(selected, symptom)
		}
	}

	sort.SliceStable(selected, func(left int, right int) bool {
		return selected[left].LoggedAt.Before(selected[right].LoggedAt)
	})
	return selected
}

func (service *ExportService) BuildSummary(symptoms []models.Symptom, exportRange ExportRange) ExportSummary {
	selected := service.SelectRange(symptoms, exportRange)
	if len(selected) == 0 {
		return ExportSummary{}
	}

	return ExportSummary{
		TotalEntries: len(selected),
		HasData:      true,
		DateFrom:     service.formatDate(selected[0].LoggedAt),
		DateTo:       service.formatDate(selected[len(selected)-1].LoggedAt),
	}
}

func (service *ExportService) BuildJSONEntries(symptoms []models.Symptom, exportRange ExportRange) []ExportJSONEntry {
	selected := service.SelectRange(symptoms, exportRange)
	entries := make([]ExportJSONEntry, 0, len(selected))
	for _, symptom := range selected {
		entries = append(entries, ExportJSONEntry{
			ID:          symptom.ID.String(),
			Date:        service.formatDate(symptom.LoggedAt),
			LoggedAt:    symptom.LoggedAt.In(service.location).Format(time.RFC3339),
			Title:       symptom.Title,
			Category:    string(symptom.Category),
			Severity:    string(symptom.Severity),
			Description: symptom.Description,
		})
	}
	return entries
}

func (service *ExportService) BuildCSVRows(symptoms []models.Symptom, exportRange ExportRange) []ExportCSVRow {
	selected := service.SelectRange(symptoms, exportRange)
	rows := make([]ExportCSVRow, 0, len(selected))
	for _, symptom := range selected {
		rows = append(rows, ExportCSVRow{
			Date:        service.formatDate(symptom.LoggedAt),
			Time:        symptom.LoggedAt.In(service.location).Format("15:04"),
			Title:       symptom.Title,
			Category:    symptom.Category.Label(),
			Severity:    symptom.Severity.Label(),
			Description: symptom.Description,
		})
	}
	return rows
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		row.Time,
		row.Title,
		row.Category,
		row.Severity,
		row.Description,
	}
}

func (service *ExportService) formatDate(value time.Time) string {
	return DateAtLocation(value, service.location).Format(time.DateOnly)
}
