package domain_test

import (
	"testing"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPracticeKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		kind domain.PracticeKind
		want bool
	}{
		{name: "remembrance", kind: domain.KindRemembrance, want: true},
		{name: "charity", kind: domain.KindCharity, want: true},
		{name: "empty", kind: "", want: false},
		{name: "unknown", kind: "prayers", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}

func TestParseIncludeField(t *testing.T) {
	tests := []struct {
		in   string
		want domain.IncludeField
	}{
		{in: "", want: domain.IncludeNone},
		{in: "tafseer", want: domain.IncludeInterpretation},
		{in: "interpretation", want: domain.IncludeInterpretation},
		{in: "en", want: domain.IncludeEnglish},
		{in: "es", want: domain.IncludeSpanish},
		{in: "fr", want: domain.IncludeNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseIncludeField(tt.in))
		})
	}
}
