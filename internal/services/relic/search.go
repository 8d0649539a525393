package relic

import (
	"context"
	"fmt"
	"strings"

	"relic-search/internal/models"
)

// Result is one formatted search hit.
type Result struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SearchField string `json:"search_field,omitempty"`
}

// SearchResponse is the envelope returned by both search endpoints.
type SearchResponse struct {
	Results     []Result `json:"results"`
	TotalCount  int      `json:"total_count"`
	SearchQuery string   `json:"search_query"`
	SearchField string   `json:"search_field,omitempty"`
}

// Service formats store results for the HTTP and CLI front ends.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListRelics(ctx context.Context) ([]models.RelicSummary, error) {
	return s.store.ListRelics(ctx)
}

func (s *Service) RelicDetails(ctx context.Context) ([]*models.RelicDetail, error) {
	return s.store.RelicDetails(ctx)
}

// Search finds relics matching term on the relic name or any slot item's name or description.
func (s *Service) Search(ctx context.Context, term string) (*SearchResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}

	matches, details, err := s.store.MatchRelics(ctx, term)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		description := fmt.Sprintf("Relic ID: %d", m.ID)
		if d, ok := details[m.ID]; ok {
			description = Describe(d, term)
		}
		results = append(results, Result{ID: m.ID, Title: m.Name, Description: description})
	}

	return &SearchResponse{
		Results:     results,
		TotalCount:  len(results),
		SearchQuery: term,
	}, nil
}

// AdvancedSearch matches term against a single relic column.
func (s *Service) AdvancedSearch(ctx context.Context, term string, field SearchField) (*SearchResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}

	relics, err := s.store.AdvancedSearch(ctx, term, field)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(relics))
	for _, r := range relics {
		results = append(results, Result{
			ID:          r.ID,
			Title:       r.Name,
			Description: fmt.Sprintf("Relic ID: %d", r.ID),
			SearchField: field.String(),
		})
	}

	return &SearchResponse{
		Results:     results,
		TotalCount:  len(results),
		SearchQuery: term,
		SearchField: field.String(),
	}, nil
}

// Describe builds the multi-line description of a search hit.
//
// When the relic name contains term every populated slot is listed. Otherwise only slots whose
// item name contains term are listed, and if none do (the hit came from an item description)
// the bare "Relic: name (ID: id)" form is returned.
func Describe(d *models.RelicDetail, term string) string {
	needle := strings.ToLower(term)
	nameMatched := strings.Contains(strings.ToLower(d.Name), needle)

	lines := []string{"Relic: " + d.Name}
	for i, slot := range models.Slots {
		item := d.Items[i]
		if item == nil {
			continue
		}
		if nameMatched || strings.Contains(strings.ToLower(*item), needle) {
			lines = append(lines, fmt.Sprintf("%s (%s)", *item, slot.Rarity))
		}
	}

	if !nameMatched && len(lines) == 1 {
		return fmt.Sprintf("Relic: %s (ID: %d)", d.Name, d.ID)
	}
	return strings.Join(lines, "\n")
}
