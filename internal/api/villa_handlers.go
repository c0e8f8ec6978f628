package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"villastay/internal/db"
	"villastay/internal/entities"
	httperr "villastay/internal/errors"
	"villastay/internal/repository"
)

// AvailabilitySearcher and Quoter are the slices of the service layer the
// public handlers need; kept narrow so tests can stub them.
type AvailabilitySearcher interface {
	Search(req entities.SearchRequest) (*entities.SearchResponse, error)
}

type Quoter interface {
	Quote(villaID int, window entities.StayWindow) (*entities.Quote, error)
}

type VillaFinder interface {
	GetVillaByID(id int) (*db.Villa, error)
}

type VillaHandler struct {
	Availability AvailabilitySearcher
	Quotes       Quoter
	Villas       VillaFinder
}

func NewVillaHandler(availability AvailabilitySearcher, quotes Quoter, villas VillaFinder) *VillaHandler {
	return &VillaHandler{Availability: availability, Quotes: quotes, Villas: villas}
}

// SearchAvailability handles GET /v1/villas/availability.
func (h *VillaHandler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	window, hErr := parseWindow(q.Get("check_in"), q.Get("check_out"))
	if hErr != nil {
		httperr.WriteJSON(w, hErr)
		return
	}

	page, err := optionalInt(q.Get("page"), 1)
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("page must be an integer"))
		return
	}
	limit, err := optionalInt(q.Get("limit"), 10)
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("limit must be an integer"))
		return
	}
	minPrice, err := optionalIntPtr(q.Get("minPrice"))
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("minPrice must be an integer"))
		return
	}
	maxPrice, err := optionalIntPtr(q.Get("maxPrice"))
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("maxPrice must be an integer"))
		return
	}

	req := entities.SearchRequest{
		Window:   window,
		Page:     page,
		Limit:    limit,
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
		Search:   strings.TrimSpace(q.Get("search")),
		Tags:     splitTags(q.Get("tags")),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	result, err := h.Availability.Search(req)
	if err != nil {
		log.Printf("Availability API error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to fetch availability"))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetQuote handles GET /v1/villas/{villa_id}/quote.
func (h *VillaHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	villaID, err := strconv.Atoi(mux.Vars(r)["villa_id"])
	if err != nil {
		httperr.WriteJSON(w, httperr.InvalidRequest("villa_id must be an integer"))
		return
	}

	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")
	window, hErr := parseWindow(checkIn, checkOut)
	if hErr != nil {
		httperr.WriteJSON(w, hErr)
		return
	}

	villa, err := h.Villas.GetVillaByID(villaID)
	if err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			httperr.WriteJSON(w, httperr.NotFound("villa_id not found"))
			return
		}
		log.Printf("Quote API error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to fetch quote"))
		return
	}

	quote, err := h.Quotes.Quote(villaID, window)
	if err != nil {
		log.Printf("Quote API error: %v", err)
		httperr.WriteJSON(w, httperr.Internal("Failed to fetch quote"))
		return
	}

	writeJSON(w, http.StatusOK, QuoteResponse{
		Villa: VillaSummary{
			ID:          villa.ID,
			Name:        villa.Name,
			Location:    villa.Location,
			Rating:      villa.Rating,
			ReviewCount: villa.ReviewCount,
			Tags:        villa.Tags,
		},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Quote:    *quote,
	})
}

// Health handles GET /health.
func (h *VillaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseWindow(checkIn, checkOut string) (entities.StayWindow, *httperr.HTTPError) {
	if checkIn == "" || checkOut == "" {
		return entities.StayWindow{}, httperr.InvalidRequest("check_in and check_out are required")
	}
	window, err := entities.ParseStayWindow(checkIn, checkOut)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidWindow) {
			return entities.StayWindow{}, httperr.InvalidRequest("check_in must be before check_out")
		}
		return entities.StayWindow{}, httperr.InvalidRequest("Dates must be in YYYY-MM-DD format")
	}
	return window, nil
}

func optionalInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func optionalIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
