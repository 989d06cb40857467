package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_FullAddress(t *testing.T) {
	p := Parse("44932 Bellflower Ln, Temecula, CA 92592")

	assert.Equal(t, "Temecula", p.City)
	assert.Equal(t, "CA", p.StateCode)
	assert.Equal(t, "California", p.State)
	assert.Equal(t, "92592", p.PostalCode)
	assert.Equal(t, CountryUS, p.Country)
}

func TestParse_ZipPlusFour(t *testing.T) {
	p := Parse("321 Elm St, Chicago, IL 60601-1234")

	assert.Equal(t, "60601-1234", p.PostalCode)
	assert.Equal(t, "Chicago", p.City)
	assert.Equal(t, "IL", p.StateCode)
}

func TestParse_Empty(t *testing.T) {
	p := Parse("   ")
	assert.True(t, p.Empty())
	assert.Equal(t, Parsed{}, p)
}

func TestParse_NoComponents(t *testing.T) {
	p := Parse("123 Main Street")
	assert.True(t, p.Empty())
}

func TestParse_UnknownStatePassesThrough(t *testing.T) {
	p := Parse("10 Foo Rd, Town, ZZ 12345")

	assert.Equal(t, "ZZ", p.StateCode)
	assert.Equal(t, "ZZ", p.State)
	assert.Equal(t, "Town", p.City)
	assert.Equal(t, "12345", p.PostalCode)
}

func TestParse_Quebec(t *testing.T) {
	p := Parse("1234 Rue Sainte-Catherine, Montréal, QC H3B 1A1")

	assert.Equal(t, "QC", p.StateCode)
	assert.Equal(t, "Québec", p.State)
	assert.Equal(t, "Montréal", p.City)
	assert.Equal(t, "H3B 1A1", p.PostalCode)
	assert.Equal(t, CountryCA, p.Country)
}

func TestParse_TrailingCountryCode(t *testing.T) {
	p := Parse("44932 Bellflower Ln, Temecula, CA 92592, US")
	assert.Equal(t, "CA", p.StateCode)
	assert.Equal(t, "California", p.State)
	assert.Equal(t, "Temecula", p.City)
	assert.Equal(t, "92592", p.PostalCode)
	assert.Equal(t, CountryUS, p.Country)

	p = Parse("123 King St W, Toronto, ON M5H 1A1, CA")
	assert.Equal(t, "ON", p.StateCode)
	assert.Equal(t, "Ontario", p.State)
	assert.Equal(t, "Toronto", p.City)
	assert.Equal(t, "M5H 1A1", p.PostalCode)
	assert.Equal(t, CountryCA, p.Country)
}

func TestParse_LowercaseStateNotExtracted(t *testing.T) {
	p := Parse("austin, tx 78701")

	assert.Empty(t, p.StateCode)
	assert.Empty(t, p.City)
	assert.Equal(t, "78701", p.PostalCode)
}

func TestZipPatterns_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		pattern string
	}{
		{"after state", "1 Main St, Springfield, IL 62701", "62701", "after_state"},
		{"after comma state", "500 Oak Ave, Austin, TX, 73301", "73301", "after_comma_state"},
		{"end of string", "PO Box 12, Springfield 62701", "62701", "end_of_string"},
		{"after trailing comma", "Springfield, 62701, USA", "62701", "after_trailing_comma"},
		{"house number ignored", "12345 Elm Street, Boise, ID 83702", "83702", "after_state"},
		{"trailing country", "44932 Bellflower Ln, Temecula, CA 92592, USA", "92592", "after_state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zip, name := matchZip(tt.input)
			assert.Equal(t, tt.want, zip)
			assert.Equal(t, tt.pattern, name)
		})
	}
}

func TestExtractZip_None(t *testing.T) {
	assert.Empty(t, ExtractZip("123 Main Street"))
	assert.Empty(t, ExtractZip(""))
}

func TestExtractStateCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		pattern string
	}{
		{"before zip", "1 Main St, Springfield, IL 62701", "IL", "before_postal"},
		{"before canadian postal", "1234 Rue Sainte-Catherine, Montréal, QC H3B 1A1", "QC", "before_postal"},
		{"zip before trailing US", "44932 Bellflower Ln, Temecula, CA 92592, US", "CA", "before_postal"},
		{"postal before trailing CA", "123 King St W, Toronto, ON M5H 1A1, CA", "ON", "before_postal"},
		{"end of string", "Austin, TX", "TX", "before_comma_or_end"},
		{"before comma", "55 Rue Principale, Gatineau, QC, Canada", "QC", "before_comma_or_end"},
		{"trailing US without zip", "500 Oak Ave, Austin, TX, US", "TX", "before_comma_or_end"},
		{"california alone at end", "Temecula, CA", "CA", "before_comma_or_end"},
		{"directional before city", "1600 Pennsylvania Ave NW, Washington, DC 20500", "DC", "before_postal"},
		{"directional as own token", "100 Main St, NW, Washington, DC 20001", "DC", "before_postal"},
		{"no comma before code", "Temecula CA 92592", "", ""},
		{"no code", "123 Main Street", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name := matchState(tt.input)
			assert.Equal(t, tt.want, code)
			assert.Equal(t, tt.pattern, name)
			assert.Equal(t, tt.want, ExtractStateCode(tt.input))
		})
	}
}

func TestExtractCity(t *testing.T) {
	assert.Equal(t, "Temecula", ExtractCity("44932 Bellflower Ln, Temecula, CA 92592", "CA"))
	assert.Equal(t, "Washington", ExtractCity("100 Main St, NW, Washington, DC 20001", "DC"))
	// Loose fallback: no comma before the city.
	assert.Equal(t, "Austin", ExtractCity("Austin, TX", "TX"))
	assert.Empty(t, ExtractCity("Austin, TX", ""))
}

func TestExtractCanadianPostal(t *testing.T) {
	assert.Equal(t, "H3B 1A1", ExtractCanadianPostal("Montréal, QC h3b1a1"))
	assert.Empty(t, ExtractCanadianPostal("Chicago, IL 60601"))
}

func TestLooksCanadian(t *testing.T) {
	assert.True(t, LooksCanadian("55 Rue Principale, Gatineau, QC, Canada"))
	assert.True(t, LooksCanadian("123 rue Laurier, Québec"))
	assert.True(t, LooksCanadian("Laval H7N 2Z4"))
	assert.False(t, LooksCanadian("321 Elm St, Chicago, IL 60601-1234"))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "District of Columbia", StateName("DC"))
	assert.Equal(t, "Texas", StateName("tx"))
	assert.Equal(t, "XX", StateName("XX"))
	assert.Len(t, StateCodes(), 51)
}

func TestProvince(t *testing.T) {
	assert.True(t, IsProvince("qc"))
	assert.False(t, IsProvince("CA"))
	assert.Equal(t, "Ontario", ProvinceName("ON"))
	assert.Equal(t, "ZZ", ProvinceName("ZZ"))
}
