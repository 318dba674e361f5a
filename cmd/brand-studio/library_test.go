// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"
	"unicode/utf8"
)

func TestEllipsize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short untouched", "hello", 40, "hello"},
		{"exact length untouched", "abcde", 5, "abcde"},
		{"long ascii cut", "abcdefghij", 8, "abcde..."},
		{"multibyte cut stays valid", "ミーティングで決まったことを共有します", 8, "ミーティン..."},
		{"emoji cut stays valid", "🎯🎯🎯🎯🎯🎯🎯🎯🎯🎯", 8, "🎯🎯🎯🎯🎯..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ellipsize(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("ellipsize(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("ellipsize produced invalid UTF-8: %q", got)
			}
		})
	}
}
