package service

import (
	"fmt"
	"math"
	"sync"

	"villastay/internal/db"
	"villastay/internal/entities"
	"villastay/internal/repository"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// CalendarStore is the read side of the villa calendar the two engines
// depend on. *repository.VillaRepository satisfies it.
type CalendarStore interface {
	GetVillaByID(id int) (*db.Villa, error)
	EntriesFor(villaID int, window entities.StayWindow) ([]db.CalendarEntry, error)
	MatchingVillas(q repository.SearchQuery) ([]entities.AvailabilityResult, error)
	CountMatchingVillas(q repository.SearchQuery) (int64, error)
}

type AvailabilityService struct {
	Store CalendarStore
}

func NewAvailabilityService(store CalendarStore) *AvailabilityService {
	return &AvailabilityService{Store: store}
}

// Search returns the paginated villas whose filtered calendar fully covers
// the window, plus the total match count. The rows and count queries share
// one SearchQuery value and run concurrently; if either fails the whole
// search fails, never a partial result.
func (s *AvailabilityService) Search(req entities.SearchRequest) (*entities.SearchResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := repository.SearchQuery{
		Window: req.Window,
		Nights: req.Window.Nights(),
		Filters: repository.SearchFilters{
			Search:   req.Search,
			Tags:     req.Tags,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
		},
		Sort:   repository.ParseSortField(req.Sort),
		Order:  repository.ParseSortOrder(req.Order),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	var (
		wg       sync.WaitGroup
		results  []entities.AvailabilityResult
		total    int64
		rowsErr  error
		countErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		results, rowsErr = s.Store.MatchingVillas(query)
	}()
	go func() {
		defer wg.Done()
		total, countErr = s.Store.CountMatchingVillas(query)
	}()
	wg.Wait()

	if rowsErr != nil {
		return nil, fmt.Errorf("availability search failed: %w", rowsErr)
	}
	if countErr != nil {
		return nil, fmt.Errorf("availability count failed: %w", countErr)
	}

	if results == nil {
		results = []entities.AvailabilityResult{}
	}
	for i := range results {
		results[i].AverageNightlyRate = roundTo2(results[i].AverageNightlyRate)
		if results[i].Tags == nil {
			results[i].Tags = []string{}
		}
	}

	return &entities.SearchResponse{
		Meta: entities.SearchMeta{Page: page, Limit: limit, Total: total},
		Data: results,
	}, nil
}

func roundTo2(f float64) float64 {
	return math.Round(f*100) / 100
}
