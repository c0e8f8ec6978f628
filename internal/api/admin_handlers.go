package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"villastay/internal/db"
	"villastay/internal/entities"
	httperr "villastay/internal/errors"
	"villastay/internal/repository"
)

// CoverageLister is the admin slice of the repository layer.
type CoverageLister interface {
	ListVillas(location string) ([]entities.VillaCoverage, error)
	CalendarSlice(villaID int, from, to string) ([]db.CalendarEntry, error)
}

type AdminHandler struct {
	Repo   CoverageLister
	Villas VillaFinder
}

func NewAdminHandler(repo CoverageLister, villas VillaFinder) *AdminHandler {
	return &AdminHandler{Repo: repo, Villas: villas}
}

// ListVillas handles GET /admin/villas.
func (h *AdminHandler) ListVillas(w http.ResponseWriter, r *http.Request) {
	villas, err := h.Repo.ListVillas(r.URL.Query().Get("location"))
	if err != nil {
		log.Printf("Admin list villas error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to list villas"))
		return
	}
	if villas == nil {
		villas = []entities.VillaCoverage{}
	}
	writeJSON(w, http.StatusOK, entities.VillasList{Total: len(villas), Villas: villas})
}

// GetCalendar handles GET /admin/villas/{villa_id}/calendar.
func (h *AdminHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	villaID, err := strconv.Atoi(mux.Vars(r)["villa_id"])
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("villa_id must be an integer"))
		return
	}

	if _, err := h.Villas.GetVillaByID(villaID); err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			httperr.WriteJSON(w, httperr.NotFound("villa_id not found"))
			return
		}
		log.Printf("Admin calendar error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to fetch calendar"))
		return
	}

	entries, err := h.Repo.CalendarSlice(villaID, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		log.Printf("Admin calendar error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to fetch calendar"))
		return
	}

	days := make([]CalendarDay, 0, len(entries))
	for _, e := range entries {
		days = append(days, CalendarDay{
			Date:        e.Date.Format(entities.DateLayout),
			Rate:        e.Rate,
			IsAvailable: e.IsAvailable,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"villa_id": villaID,
		"days":     days,
	})
}
