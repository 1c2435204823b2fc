package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/model"
)

type fakeSource struct {
	values map[string]map[string]float64
}

func (f *fakeSource) ExportValue(productID, countryCode string) (float64, bool) {
	v, ok := f.values[productID][countryCode]
	return v, ok
}

type ScoringSuite struct {
	suite.Suite
	service *Service
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

var (
	cars    = model.Product{ID: "178703", Name: "Cars", Category: "automotive"}
	germany = model.Card{CountryCode: "eudeu", CountryName: "Germany"}
	japan   = model.Card{CountryCode: "asjpn", CountryName: "Japan"}
	ireland = model.Card{CountryCode: "euirl", CountryName: "Ireland"}
)

func (s *ScoringSuite) SetupTest() {
	s.service = New(&fakeSource{values: map[string]map[string]float64{
		"178703": {
			"eudeu": 160.5,
			"asjpn": 92.1,
		},
	}})
}

func (s *ScoringSuite) TestHigherValueWins() {
	result := s.service.Resolve(cars, germany, japan)
	s.Equal(model.RoundWinnerA, result.Outcome)
	s.InDelta(160.5, result.ValueA, 0.001)
	s.InDelta(92.1, result.ValueB, 0.001)

	result = s.service.Resolve(cars, japan, germany)
	s.Equal(model.RoundWinnerB, result.Outcome)
}

func (s *ScoringSuite) TestEqualValuesTie() {
	result := s.service.Resolve(cars, germany, germany)
	s.Equal(model.RoundTie, result.Outcome)
}

func (s *ScoringSuite) TestMissingValueScoresZero() {
	result := s.service.Resolve(cars, ireland, japan)
	s.Equal(model.RoundWinnerB, result.Outcome)
	s.Zero(result.ValueA)
}

func (s *ScoringSuite) TestBothMissingTie() {
	result := s.service.Resolve(cars, ireland, model.Card{CountryCode: "namex"})
	s.Equal(model.RoundTie, result.Outcome)
	s.Zero(result.ValueA)
	s.Zero(result.ValueB)
}
