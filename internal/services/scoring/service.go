package scoring

import (
	"github.com/export9/export9-server/internal/model"
)

// ExportSource supplies export values for a product and exporting country
type ExportSource interface {
	ExportValue(productID, countryCode string) (float64, bool)
}

// Service resolves rounds by comparing the export values of the two
// played country cards for the round's product
type Service struct {
	source ExportSource
}

// New creates a new scoring service
func New(source ExportSource) *Service {
	return &Service{source: source}
}

// Resolve compares both players' cards for the given product. A country
// missing from the snapshot scores zero. Equal values are a tie, which
// credits both players with the round.
func (s *Service) Resolve(product model.Product, cardA, cardB model.Card) model.RoundResult {
	valueA, _ := s.source.ExportValue(product.ID, cardA.CountryCode)
	valueB, _ := s.source.ExportValue(product.ID, cardB.CountryCode)

	outcome := model.RoundTie
	switch {
	case valueA > valueB:
		outcome = model.RoundWinnerA
	case valueB > valueA:
		outcome = model.RoundWinnerB
	}

	return model.RoundResult{
		Outcome: outcome,
		ValueA:  valueA,
		ValueB:  valueB,
	}
}
