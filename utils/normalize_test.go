package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocation(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "Gujarat", "Gujarat"},
		{"uppercase", "GUJARAT", "Gujarat"},
		{"lowercase", "gujarat", "Gujarat"},
		{"surrounding whitespace", "  Surat  ", "Surat"},
		{"multi word", "uttar pradesh", "Uttar Pradesh"},
		{"ampersand", "Jammu & Kashmir", "Jammu And Kashmir"},
		{"ampersand no spaces", "Daman&Diu", "Damananddiu"},
		{"digits split words", "north 24 parganas", "North 24 Parganas"},
		{"hyphenated", "karim-nagar", "Karim-Nagar"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeLocation(tc.in))
		})
	}
}

func TestNormalizeLocationIdempotent(t *testing.T) {
	inputs := []string{
		"jammu & kashmir",
		"  ANDAMAN AND NICOBAR  ",
		"Dadra & Nagar Haveli",
		"Daman&Diu",
		"north 24 parganas",
		"Gujarat",
	}

	for _, in := range inputs {
		once := NormalizeLocation(in)
		assert.Equal(t, once, NormalizeLocation(once), "normalizing %q twice drifted", in)
	}
}
