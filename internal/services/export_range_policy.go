package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxExportRangeDays bounds a closed export range, both ends included.
const MaxExportRangeDays = 366

var (
	ErrExportFromDateInvalid  = errors.New("export invalid from date")
	ErrExportToDateInvalid    = errors.New("export invalid to date")
	ErrExportRangeInvalid     = errors.New("export invalid range")
	ErrExportRangeTooLong     = errors.New("export range too long")
	ErrExportFromDateInFuture = errors.New("export from date in future")
)

// ExportRange is an inclusive span of local calendar days. A nil bound is open.
type ExportRange struct {
	From *time.Time
	To   *time.Time
}

// Includes reports whether loggedAt falls on a day inside the range, with days
// taken in location.
func (exportRange ExportRange) Includes(loggedAt time.Time, location *time.Location) bool {
	day := DateAtLocation(loggedAt, location)
	if exportRange.From != nil && day.Before(*exportRange.From) {
		return false
	}
	if exportRange.To != nil && day.After(*exportRange.To) {
		return false
	}
	return true
}

// Days is the number of calendar days covered, or 0 when a bound is open.
func (exportRange ExportRange) Days() int {
	if exportRange.From == nil || exportRange.To == nil {
		return 0
	}
	// Compare as UTC dates so DST days in the export location count as one day.
	from := calendarDay(*exportRange.From)
	to := calendarDay(*exportRange.To)
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

func calendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseRange reads optional YYYY-MM-DD bounds in the export location. A range
// may not start after today and may not cover more than MaxExportRangeDays.
func (service *ExportService) ParseRange(rawFrom string, rawTo string) (ExportRange, error) {
	from, err := parseExportDay(rawFrom, service.location, ErrExportFromDateInvalid)
	if err != nil {
		return ExportRange{}, err
	}
	to, err := parseExportDay(rawTo, service.location, ErrExportToDateInvalid)
	if err != nil {
		return ExportRange{}, err
	}

	exportRange := ExportRange{From: from, To: to}
	if from != nil && to != nil && to.Before(*from) {
		return ExportRange{}, ErrExportRangeInvalid
	}
	if from != nil && from.After(DateAtLocation(service.now(), service.location)) {
		return ExportRange{}, ErrExportFromDateInFuture
	}
	if days := exportRange.Days(); days > MaxExportRangeDays {
		return ExportRange{}, fmt.Errorf("%w: %d days", ErrExportRangeTooLong, days)
	}
	return exportRange, nil
}

func parseExportDay(raw string, location *time.Location, invalid error) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, trimmed, location)
	if err != nil {
		return nil, invalid
	}
	day := DateAtLocation(parsed, location)
	return &day, nil
}
