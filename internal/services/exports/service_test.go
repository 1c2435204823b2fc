package exports

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/dependencies/random"
)

type ExportsSuite struct {
	suite.Suite
	service *Service
}

func TestExportsSuite(t *testing.T) {
	suite.Run(t, new(ExportsSuite))
}

func (s *ExportsSuite) SetupTest() {
	s.service = New(random.New())
}

func (s *ExportsSuite) TestCatalogSizes() {
	s.Len(s.service.Countries(), 21)
	s.Len(s.service.Products(), 18)
}

func (s *ExportsSuite) TestProductLookup() {
	product, ok := s.service.Product("178703")
	s.Require().True(ok)
	s.Equal("Cars", product.Name)
	s.Equal("automotive", product.Category)

	_, ok = s.service.Product("nonexistent")
	s.False(ok)
}

func (s *ExportsSuite) TestDealCountriesDistinct() {
	cards := s.service.DealCountries(10)
	s.Require().Len(cards, 10)

	seen := make(map[string]bool)
	for _, card := range cards {
		s.False(seen[card.CountryCode], "dealt %s twice", card.CountryCode)
		seen[card.CountryCode] = true
	}
}

func (s *ExportsSuite) TestDealCountriesClampedToCatalog() {
	cards := s.service.DealCountries(100)
	s.Len(cards, 21)
}

func (s *ExportsSuite) TestDrawProductsDistinct() {
	drawn := s.service.DrawProducts(9)
	s.Require().Len(drawn, 9)

	seen := make(map[string]bool)
	for _, product := range drawn {
		s.False(seen[product.ID], "drew %s twice", product.ID)
		seen[product.ID] = true
	}
}

func (s *ExportsSuite) TestExportValueMissing() {
	v, ok := s.service.ExportValue("178703", "eudeu")
	s.False(ok)
	s.Zero(v)
}

func (s *ExportsSuite) TestLoadSnapshot() {
	s.service.LoadSnapshot(map[string]map[string]float64{
		"178703": {"eudeu": 160.5, "asjpn": 92.1},
	})

	s.True(s.service.Loaded())

	v, ok := s.service.ExportValue("178703", "eudeu")
	s.Require().True(ok)
	s.InDelta(160.5, v, 0.001)

	_, ok = s.service.ExportValue("178703", "aschn")
	s.False(ok)
}

func (s *ExportsSuite) TestGenerateFallbackCoversCatalog() {
	s.service.GenerateFallback()
	s.Require().True(s.service.Loaded())

	for _, product := range s.service.Products() {
		for _, country := range s.service.Countries() {
			v, ok := s.service.ExportValue(product.ID, country.CountryCode)
			s.Require().True(ok, "missing %s/%s", product.ID, country.CountryCode)
			s.Positive(v)
		}
	}
}
