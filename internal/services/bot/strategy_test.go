package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/export9/export9-server/internal/model"
)

type fakeSource struct {
	values map[string]map[string]float64
}

func (f *fakeSource) ExportValue(productID, countryCode string) (float64, bool) {
	v, ok := f.values[productID][countryCode]
	return v, ok
}

func TestGreedyStrategyPicksHighestValue(t *testing.T) {
	strategy := NewGreedyStrategy(&fakeSource{values: map[string]map[string]float64{
		"178703": {
			"eudeu": 160.5,
			"asjpn": 92.1,
			"euirl": 1.2,
		},
	}})

	hand := model.Hand{
		{CountryCode: "euirl", CountryName: "Ireland"},
		{CountryCode: "eudeu", CountryName: "Germany"},
		{CountryCode: "asjpn", CountryName: "Japan"},
	}

	card, ok := strategy.ChooseCard(hand, model.Product{ID: "178703", Name: "Cars"})
	require.True(t, ok)
	assert.Equal(t, "eudeu", card.CountryCode)
}

func TestGreedyStrategyUnknownValuesScoreZero(t *testing.T) {
	strategy := NewGreedyStrategy(&fakeSource{values: map[string]map[string]float64{
		"178703": {"asjpn": 92.1},
	}})

	hand := model.Hand{
		{CountryCode: "euirl"},
		{CountryCode: "asjpn"},
	}

	card, ok := strategy.ChooseCard(hand, model.Product{ID: "178703"})
	require.True(t, ok)
	assert.Equal(t, "asjpn", card.CountryCode)
}

func TestGreedyStrategyEmptyHand(t *testing.T) {
	strategy := NewGreedyStrategy(&fakeSource{})

	_, ok := strategy.ChooseCard(model.Hand{}, model.Product{ID: "178703"})
	assert.False(t, ok)
}
