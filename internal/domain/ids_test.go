package domain_test

import (
	"strings"
	"testing"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
)

func TestValidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "numeric", id: "42", want: true},
		{name: "prefixed ulid", id: "est_01HZY", want: true},
		{name: "dotted and colon", id: "sig.v2:7-a", want: true},
		{name: "max length", id: strings.Repeat("a", domain.MaxIDLength), want: true},
		{name: "empty", id: ""},
		{name: "too long", id: strings.Repeat("a", domain.MaxIDLength+1)},
		{name: "dot", id: "."},
		{name: "dot dot", id: ".."},
		{name: "parent traversal", id: "../settings"},
		{name: "slash", id: "a/b"},
		{name: "encoded slash", id: "a%2Fb"},
		{name: "query", id: "a?b"},
		{name: "space", id: "a b"},
		{name: "backslash", id: `a\b`},
		{name: "non-ascii", id: "sig-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := domain.ValidID(tt.id); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
