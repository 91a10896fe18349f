package ui

import "testing"

func TestNextTheme_Cycles(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Kanagawa"); got != "Slate" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q, want Kanagawa", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemeOrderMatchesMap(t *testing.T) {
	if len(themeOrder) != len(themes) {
		t.Fatalf("themeOrder has %d names, themes map has %d", len(themeOrder), len(themes))
	}
	for _, name := range themeOrder {
		if _, ok := themes[name]; !ok {
			t.Fatalf("theme %q in order but not in map", name)
		}
	}
}
