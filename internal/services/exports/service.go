package exports

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/model"
)

// Service holds the export value snapshot the scoring engine reads from.
// Values are in billions of USD per exporter and product, keyed by the
// OEC HS4 product id and OEC country id.
type Service struct {
	rng random.Random

	mu     sync.RWMutex
	values map[string]map[string]float64
	loaded bool
}

// New creates a new export data service with an empty snapshot
func New(rng random.Random) *Service {
	return &Service{
		rng:    rng,
		values: make(map[string]map[string]float64),
	}
}

// Countries returns a copy of the full country catalog
func (s *Service) Countries() []model.Card {
	out := make([]model.Card, len(countries))
	copy(out, countries)
	return out
}

// Products returns a copy of the full product catalog
func (s *Service) Products() []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}

// Product looks up a product in the catalog by id
func (s *Service) Product(id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// ExportValue returns the snapshot value for a country's exports of a
// product. The second return is false when the snapshot has no entry,
// which scores as zero.
func (s *Service) ExportValue(productID, countryCode string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byCountry, ok := s.values[productID]
	if !ok {
		return 0, false
	}
	v, ok := byCountry[countryCode]
	return v, ok
}

// DealCountries returns n distinct countries drawn from the catalog in
// random order. Both players of a session are dealt the same draw.
func (s *Service) DealCountries(n int) []model.Card {
	deck := s.Countries()
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	if n > len(deck) {
		n = len(deck)
	}
	return deck[:n]
}

// DrawProducts returns n distinct products drawn from the catalog in
// random order, one per round of a session.
func (s *Service) DrawProducts(n int) []model.Product {
	deck := s.Products()
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	if n > len(deck) {
		n = len(deck)
	}
	return deck[:n]
}

// Loaded reports whether a snapshot is available
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadSnapshot replaces the snapshot with the given values
func (s *Service) LoadSnapshot(values map[string]map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.loaded = true
}

// LoadSnapshotFile loads a snapshot from a JSON file mapping
// product id -> country id -> export value
func (s *Service) LoadSnapshotFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading export snapshot: %w", err)
	}

	var values map[string]map[string]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing export snapshot: %w", err)
	}

	s.LoadSnapshot(values)
	return nil
}

// GenerateFallback fills the snapshot with randomized values biased
// toward known dominant exporters. Used when no real snapshot file is
// available so matches stay playable.
func (s *Service) GenerateFallback() {
	values := make(map[string]map[string]float64, len(products))
	for _, product := range products {
		byCountry := make(map[string]float64, len(countries))
		for _, country := range countries {
			base := 0.1 + float64(s.rng.Intn(100000))/1000.0
			if boost, ok := fallbackBoosts[product.ID][country.CountryCode]; ok {
				base *= boost
			}
			byCountry[country.CountryCode] = base
		}
		values[product.ID] = byCountry
	}
	s.LoadSnapshot(values)
}
