package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/services"
)

const messageExportFailed = "failed to build export"

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	symptoms, exportRange, message := handler.exportSymptomsAndRange(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	return c.JSON(handler.exporter.BuildSummary(symptoms, exportRange))
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	symptoms, exportRange, message := handler.exportSymptomsAndRange(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, messageExportFailed)
	}
	for _, row := range handler.exporter.BuildCSVRows(symptoms, exportRange) {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, messageExportFailed)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, messageExportFailed)
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(handler.now().In(handler.location), "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	symptoms, exportRange, message := handler.exportSymptomsAndRange(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	now := handler.now().In(handler.location)
	payload, err := json.MarshalIndent(fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"entries":     handler.exporter.BuildJSONEntries(symptoms, exportRange),
	}, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, messageExportFailed)
	}

	setExportAttachmentHeaders(c, "application/json", buildExportFilename(now, "json"))
	return c.Send(payload)
}

// exportSymptomsAndRange returns a non-empty message when the query range is
// unusable.
func (handler *Handler) exportSymptomsAndRange(c *fiber.Ctx) ([]models.Symptom, services.ExportRange, string) {
	exportRange, err := handler.exporter.ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return nil, services.ExportRange{}, "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return nil, services.ExportRange{}, "invalid to date"
		case errors.Is(err, services.ErrExportFromDateInFuture):
			return nil, services.ExportRange{}, "from date is in the future"
		case errors.Is(err, services.ErrExportRangeTooLong):
			return nil, services.ExportRange{}, fmt.Sprintf("range longer than %d days", services.MaxExportRangeDays)
		default:
			return nil, services.ExportRange{}, "invalid range"
		}
	}

	handler.mu.Lock()
	symptoms := handler.state.Symptoms()
	handler.mu.Unlock()

	return symptoms, exportRange, ""
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("medlifequest-export-%s.%s", now.Format(time.DateOnly), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
