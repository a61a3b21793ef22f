package api

import (
	"fmt"
	"net/http"
	"time"

	"campusinfo/internal/database"
	"campusinfo/internal/models"
	"campusinfo/internal/service"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"ID", "Requester", "Student ID", "Resource Type", "Resource", "Date",
	"Start", "End", "Program", "Participants", "Status", "Admin Notes", "Created At",
}

// handleExportBookingRequests streams the request log as an XLSX workbook.
// The same status/resource filters as the list endpoint apply.
func (s *Server) handleExportBookingRequests(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}

	q := r.URL.Query()
	requests, err := s.bookings.List(r.Context(), identityFrom(r), database.BookingFilters{
		Status:       q.Get("status"),
		ResourceType: q.Get("resource_type"),
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}

	f, err := s.buildWorkbook(requests)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("booking-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("failed to stream export")
	}
}

func (s *Server) buildWorkbook(requests []*models.BookingRequest) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := s.sheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i, req := range requests {
		row := i + 2
		values := []interface{}{
			req.ID, req.RequesterName, req.RequesterStudentID, req.ResourceType,
			req.ResourceName, req.Date, req.StartTime, req.EndTime, req.ProgramName,
			req.ParticipantCount, req.Status, req.AdminNotes,
			req.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}
