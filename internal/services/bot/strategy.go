package bot

import "github.com/export9/export9-server/internal/model"

// ExportSource supplies export values for a product and exporting country
type ExportSource interface {
	ExportValue(productID, countryCode string) (float64, bool)
}

// Strategy defines how the CPU picks a card for a round
type Strategy interface {
	// ChooseCard selects a card from the hand for the round's product.
	// The second return is false when the hand is empty.
	ChooseCard(hand model.Hand, product model.Product) (model.Card, bool)
}

// GreedyStrategy always plays the card with the highest export value
// for the round's product
type GreedyStrategy struct {
	source ExportSource
}

// NewGreedyStrategy creates a GreedyStrategy reading from the given source
func NewGreedyStrategy(source ExportSource) *GreedyStrategy {
	return &GreedyStrategy{source: source}
}

var _ Strategy = (*GreedyStrategy)(nil)

// ChooseCard picks the hand's strongest exporter of the product
func (g *GreedyStrategy) ChooseCard(hand model.Hand, product model.Product) (model.Card, bool) {
	if len(hand) == 0 {
		return model.Card{}, false
	}

	best := hand[0]
	bestValue, _ := g.source.ExportValue(product.ID, best.CountryCode)
	for _, card := range hand[1:] {
		value, _ := g.source.ExportValue(product.ID, card.CountryCode)
		if value > bestValue {
			best = card
			bestValue = value
		}
	}
	return best, true
}
