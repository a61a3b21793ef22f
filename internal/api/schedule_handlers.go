package api

import (
	"net/http"
	"strconv"

	"campusinfo/internal/models"
)

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	resourceID, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	slots, err := s.schedules.List(r.Context(), r.PathValue("type"), resourceID, r.URL.Query().Get("day"))
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var slot models.ScheduleSlot
	if err := decodeBody(r, &slot); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.schedules.Create(r.Context(), identityFrom(r), slot)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var slot models.ScheduleSlot
	if err := decodeBody(r, &slot); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	slot.ID = id

	updated, err := s.schedules.Update(r.Context(), identityFrom(r), slot)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.schedules.Delete(r.Context(), identityFrom(r), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Schedule deleted successfully"})
}
