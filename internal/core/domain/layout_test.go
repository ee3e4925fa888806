package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assetimport/internal/core/domain"
)

func TestPlaceholderName(t *testing.T) {
	assert.Equal(t, ".placeholder.original", domain.PlaceholderName(domain.DefaultBaseName))
	assert.Equal(t, ".placeholder.beach.png", domain.PlaceholderName("beach.png"))
}

func TestParseFetchOutcome(t *testing.T) {
	tests := []struct {
		in   string
		want domain.FetchOutcome
	}{
		{"fetched", domain.OutcomeFetched},
		{"CURRENT", domain.OutcomeCurrent},
		{"skipped", domain.OutcomeSkipped},
		{"failed", domain.OutcomeFailed},
		{"bogus", domain.OutcomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseFetchOutcome(tt.in))
		})
	}
}

func TestLocale(t *testing.T) {
	l := domain.ParseLocale("en-us")
	assert.Equal(t, domain.Locale{Language: "en", Country: "US"}, l)
	assert.Equal(t, "en_US", l.String())
	assert.Equal(t, "body/en_US/image", l.Localize("body/{locale}/image"))
	assert.Equal(t, "body/en/US/image", l.Localize("body/{language}/{country}/image"))
	assert.Equal(t, "body/image", l.Localize("body/image"))
	assert.Equal(t, "de", domain.ParseLocale("de").String())
}
