package api

import (
	"net/http"
	"strconv"

	"campusinfo/internal/database"
	"campusinfo/internal/models"
	"campusinfo/internal/service"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// Classrooms.

func (s *Server) handleListClassrooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.db.GetAllClassrooms(r.Context(), database.ClassroomFilters{
		Dept:   r.URL.Query().Get("dept"),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleGetClassroom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	room, err := s.db.GetClassroomByID(r.Context(), id)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleCreateClassroom(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	var room models.Classroom
	if err := decodeBody(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if room.RoomNumber == "" || room.Building == "" {
		writeError(w, http.StatusBadRequest, "Room number and building are required")
		return
	}
	if err := s.db.CreateClassroom(r.Context(), &room); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handleUpdateClassroom(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var room models.Classroom
	if err := decodeBody(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	room.ID = id
	if err := s.db.UpdateClassroom(r.Context(), &room); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteClassroom(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.db.DeleteClassroom(r.Context(), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Classroom deleted"})
}

// Labs.

func (s *Server) handleListLabs(w http.ResponseWriter, r *http.Request) {
	labs, err := s.db.GetAllLabs(r.Context(), database.LabFilters{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, labs)
}

func (s *Server) handleGetLab(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	lab, err := s.db.GetLabByID(r.Context(), id)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lab)
}

func (s *Server) handleCreateLab(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	var lab models.Lab
	if err := decodeBody(r, &lab); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if lab.Name == "" {
		writeError(w, http.StatusBadRequest, "Lab name is required")
		return
	}
	if err := s.db.CreateLab(r.Context(), &lab); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, lab)
}

func (s *Server) handleUpdateLab(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var lab models.Lab
	if err := decodeBody(r, &lab); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	lab.ID = id
	if err := s.db.UpdateLab(r.Context(), &lab); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lab)
}

func (s *Server) handleUpdateLabStatus(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}
	if err := s.db.UpdateLabStatus(r.Context(), id, body.Status); err != nil {
		respondError(w, s.logger, err)
		return
	}
	lab, err := s.db.GetLabByID(r.Context(), id)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lab)
}

func (s *Server) handleDeleteLab(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.db.DeleteLab(r.Context(), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lab deleted"})
}

// Buses.

func (s *Server) handleListBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := s.db.GetAllBuses(r.Context(), database.BusFilters{
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, buses)
}

func (s *Server) handleCreateBus(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	var bus models.Bus
	if err := decodeBody(r, &bus); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if bus.BusNumber == "" || bus.RouteName == "" {
		writeError(w, http.StatusBadRequest, "Bus number and route name are required")
		return
	}
	if err := s.db.CreateBus(r.Context(), &bus); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, bus)
}

func (s *Server) handleUpdateBus(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var bus models.Bus
	if err := decodeBody(r, &bus); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	bus.ID = id
	if err := s.db.UpdateBus(r.Context(), &bus); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, bus)
}

func (s *Server) handleDeleteBus(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.db.DeleteBus(r.Context(), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Bus deleted"})
}

// Cafeteria.

func (s *Server) handleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.db.GetAllMenuItems(r.Context(), database.MenuFilters{
		Category:     r.URL.Query().Get("category"),
		Availability: r.URL.Query().Get("availability"),
		Search:       r.URL.Query().Get("search"),
	})
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.db.GetMenuItemByID(r.Context(), id)
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	var item models.MenuItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if item.Name == "" || item.Category == "" {
		writeError(w, http.StatusBadRequest, "Name and category are required")
		return
	}
	if err := s.db.CreateMenuItem(r.Context(), &item); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var item models.MenuItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item.ID = id
	if err := s.db.UpdateMenuItem(r.Context(), &item); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.db.DeleteMenuItem(r.Context(), id); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted"})
}

func (s *Server) handleGetCafeteriaInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.db.GetCafeteriaInfo(r.Context())
	if err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleUpdateCafeteriaInfo(w http.ResponseWriter, r *http.Request) {
	if err := service.RequireAdmin(identityFrom(r)); err != nil {
		respondError(w, s.logger, err)
		return
	}
	var info models.CafeteriaInfo
	if err := decodeBody(r, &info); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.db.UpdateCafeteriaInfo(r.Context(), &info); err != nil {
		respondError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
