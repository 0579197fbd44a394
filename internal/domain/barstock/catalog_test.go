package barstock

import (
	"testing"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CatalogTestSuite exercises the specifier matching policy over a fixed
// shelf of bottles
type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	bottles := []Bottle{
		{BarID: 1, Category: CategorySpirit, Type: "Dry Gin", Name: "Beefeater", ABV: 40, SizeML: 750, PricePaid: 20, InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "Dry Gin", Name: "Knickerbocker", ABV: 42, SizeML: 750, PricePaid: 26, InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "Rye Whiskey", Name: "Rittenhouse", ABV: 50, SizeML: 750, PricePaid: 25, InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "Scotch Whisky", Name: "Famous Grouse", ABV: 40, SizeML: 750, PricePaid: 22, InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "Amber Rum", Name: "Appleton", ABV: 40, SizeML: 750, PricePaid: 18, InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "White Rum", Name: "Flor de Cana", ABV: 40, SizeML: 750, PricePaid: 15, InStock: false},
		{BarID: 1, Category: CategoryVermouth, Type: "Dry Vermouth", Name: "Noilly Prat", ABV: 18, SizeML: 750, PricePaid: 10, InStock: true},
		{BarID: 1, Category: CategoryBitters, Type: "Aromatic Bitters", Name: "Angostura", ABV: 44.7, SizeML: 118, PricePaid: 9, InStock: true},
		{BarID: 1, Category: CategoryBitters, Type: "Orange Bitters", Name: "Regans", ABV: 45, SizeML: 148, PricePaid: 8, InStock: true},
		{BarID: 1, Category: CategoryLiqueur, Type: "Ginger Liqueur", Name: "Domaine de Canton", ABV: 28, SizeML: 750, PricePaid: 32, InStock: true},
		{BarID: 2, Category: CategorySpirit, Type: "Dry Gin", Name: "Other Bar Gin", ABV: 40, SizeML: 750, PricePaid: 12, InStock: true},
	}
	for i := range bottles {
		bottles[i].RecomputeCost()
	}
	s.catalog = NewCatalog(1, bottles)
}

func (s *CatalogTestSuite) names(spec Specifier) []string {
	var out []string
	for _, b := range s.catalog.BottlesMatching(spec) {
		out = append(out, b.Name)
	}
	return out
}

func (s *CatalogTestSuite) TestExactTypeMatch() {
	s.Equal([]string{"Beefeater", "Knickerbocker"}, s.names(Specifier{What: "dry gin"}))
	s.Equal([]string{"Beefeater", "Knickerbocker"}, s.names(Specifier{What: "Dry Gin"}))

	// "gin" is not special-cased: it does not substring-match "Dry Gin"
	// or "Ginger Liqueur"
	s.Empty(s.names(Specifier{What: "gin"}))
}

func (s *CatalogTestSuite) TestWhiskyAliasNormalization() {
	whisky := s.names(Specifier{What: "whisky"})
	s.Equal([]string{"Rittenhouse", "Famous Grouse"}, whisky)

	// "whiskey" only substring-matches the whiskey spelling
	s.Equal([]string{"Rittenhouse"}, s.names(Specifier{What: "whiskey"}))
}

func (s *CatalogTestSuite) TestSubstringTypes() {
	// "rum" covers all rum sub-types, but the white rum is out of stock
	s.Equal([]string{"Appleton"}, s.names(Specifier{What: "rum"}))
	s.Equal([]string{"Noilly Prat"}, s.names(Specifier{What: "vermouth"}))
}

func (s *CatalogTestSuite) TestAnySpiritClosedEnumeration() {
	names := s.names(Specifier{What: "any spirit"})
	s.Equal([]string{"Beefeater", "Knickerbocker", "Rittenhouse", "Appleton"}, names)

	// Scotch Whisky and the liqueur are outside the fixed enumeration
	s.NotContains(names, "Famous Grouse")
	s.NotContains(names, "Domaine de Canton")
}

func (s *CatalogTestSuite) TestBittersMatchByCategory() {
	s.Equal([]string{"Angostura", "Regans"}, s.names(Specifier{What: "bitters"}))
}

func (s *CatalogTestSuite) TestPinnedBottle() {
	s.Equal([]string{"Knickerbocker"},
		s.names(Specifier{What: "dry gin", Bottle: "Knickerbocker"}))
	s.Empty(s.names(Specifier{What: "dry gin", Bottle: "Hendricks"}))
}

func (s *CatalogTestSuite) TestOutOfStockAndOtherBarsInvisible() {
	for _, spec := range []Specifier{
		{What: "white rum"},
		{What: "rum", Bottle: "Flor de Cana"},
	} {
		s.Empty(s.catalog.BottlesMatching(spec))
	}
	s.NotContains(s.names(Specifier{What: "dry gin"}), "Other Bar Gin")
}

func (s *CatalogTestSuite) TestSingleBottleLookup() {
	b, err := s.catalog.Bottle(Specifier{What: "dry vermouth"})
	s.Require().NoError(err)
	s.Equal("Noilly Prat", b.Name)

	_, err = s.catalog.Bottle(Specifier{What: "mezcal"})
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeNoMatch))

	_, err = s.catalog.Bottle(Specifier{What: "dry gin"})
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeAmbiguousMatch))
}

func (s *CatalogTestSuite) TestBottleField() {
	abv, err := s.catalog.BottleField(Specifier{What: "rye whiskey"}, FieldABV)
	s.Require().NoError(err)
	s.Equal("50", abv)

	_, err = s.catalog.BottleField(Specifier{What: "rye whiskey"}, Field("nope"))
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeUnknownField))
}

func (s *CatalogTestSuite) TestCost() {
	b, err := s.catalog.Bottle(Specifier{What: "dry gin", Bottle: "Beefeater"})
	s.Require().NoError(err)

	cost, err := s.catalog.Cost(b, 2, units.Ounce)
	s.Require().NoError(err)
	s.InDelta(2*20/(750/units.MLPerOz), cost, 1e-9)

	_, err = s.catalog.Cost(b, 2, units.Unit("jigger"))
	s.Require().Error(err)
	s.True(errors.Is(err, errors.CodeInvalidUnit))
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func TestBottlesMatchingIsRestartable(t *testing.T) {
	bottles := []Bottle{
		{BarID: 1, Category: CategorySpirit, Type: "Dry Gin", Name: "A", InStock: true},
		{BarID: 1, Category: CategorySpirit, Type: "Dry Gin", Name: "B", InStock: true},
	}
	c := NewCatalog(1, bottles)

	first := c.BottlesMatching(Specifier{What: "dry gin"})
	second := c.BottlesMatching(Specifier{What: "dry gin"})
	require.Equal(t, first, second)
	assert.Len(t, first, 2)
}
