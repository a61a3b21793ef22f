package api

import (
	"net/http"
	"strconv"

	"campusinfo/internal/database"
	"campusinfo/internal/models"
)

func (s *Server) handleCreateBookingRequest(w http.ResponseWriter, r *http.Request) {
	var input models.BookingRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.bookings.Create(r.Context(), identityFrom(r), input)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListBookingRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resourceID, _ := strconv.ParseInt(q.Get("resource_id"), 10, 64)

	requests, err := s.bookings.List(r.Context(), identityFrom(r), database.BookingFilters{
		Status:       q.Get("status"),
		ResourceType: q.Get("resource_type"),
		ResourceID:   resourceID,
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) handleGetBookingRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	req, err := s.bookings.Get(r.Context(), identityFrom(r), id)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleReviewBookingRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var body struct {
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := s.bookings.Transition(r.Context(), identityFrom(r), id, body.Status, body.AdminNotes)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleDeleteBookingRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.bookings.Delete(r.Context(), identityFrom(r), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking request deleted successfully"})
}

func (s *Server) handleListNotices(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notices, err := s.notices.Upcoming(r.Context(), limit)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, notices)
}
