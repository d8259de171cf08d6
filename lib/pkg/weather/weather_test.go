package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New York", "newyork"},
		{"  london ", "london"},
		{"TOKYO", "tokyo"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestLookupKnownCities(t *testing.T) {
	db := DemoDB()
	tests := []struct {
		query     string
		condition string
		temp      string
	}{
		{"London", "cloudy", "15"},
		{"london", "cloudy", "15"},
		{"New York", "sunny", "25"},
		{"NEWYORK", "sunny", "25"},
		{"  Tokyo  ", "light rain", "18"},
	}
	for _, tt := range tests {
		res := db.Lookup(tt.query)
		require.Equal(t, "success", res.Status, "query %q", tt.query)
		assert.Contains(t, res.Report, tt.condition)
		assert.Contains(t, res.Report, tt.temp)
		assert.Empty(t, res.ErrorMessage)
	}
}

func TestLookupUnknownCity(t *testing.T) {
	db := DemoDB()

	res := db.Lookup("Paris")
	require.Equal(t, "error", res.Status)
	assert.Contains(t, res.ErrorMessage, "Paris")
	assert.Empty(t, res.Report)
}

func TestLookupIsTotal(t *testing.T) {
	db := DemoDB()
	for _, in := range []string{"", "   ", "New\tYork", "Lon don!", "新宿", "london\n"} {
		res := db.Lookup(in)
		assert.Contains(t, []string{"success", "error"}, res.Status)
		if res.Status == "error" {
			assert.NotEmpty(t, res.ErrorMessage)
		}
	}
}

func TestTeamDBServesParis(t *testing.T) {
	res := TeamDB().Lookup("Paris")
	require.Equal(t, "success", res.Status)
	assert.Contains(t, res.Report, "windy")
	assert.Contains(t, res.Report, "12")
}
