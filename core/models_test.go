package core

import (
	"strings"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestIDFromContent_Format(t *testing.T) {
	id := IDFromContent("chili")

	if !strings.HasPrefix(id, "rex") {
		t.Errorf("IDFromContent() = %q, want rex prefix", id)
	}
	// 3-byte prefix plus 8 hash bytes hex-encoded.
	if len(id) != 3+16 {
		t.Errorf("IDFromContent() length = %d, want %d", len(id), 3+16)
	}
}

func TestRecipe_SearchableText(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		want   string
	}{
		{
			name: "all text fields in order",
			recipe: Recipe{
				Title:        "Vegan Chili",
				Description:  "Hearty and warming",
				Category:     "Dinner",
				Cuisine:      "Tex-Mex",
				Summary:      "A weeknight favorite",
				Notes:        "Freezes well",
				Ingredients:  []string{"beans", "tomatoes"},
				Instructions: []string{"Simmer for an hour"},
				Tags:         []string{"vegan", "hearty"},
			},
			want: "Vegan Chili Hearty and warming Dinner Tex-Mex Freezes well A weeknight favorite beans tomatoes Simmer for an hour vegan hearty",
		},
		{
			name: "empty fields skipped",
			recipe: Recipe{
				Title: "Toast",
				Tags:  []string{"breakfast"},
			},
			want: "Toast breakfast",
		},
		{
			name:   "empty recipe",
			recipe: Recipe{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.recipe.SearchableText()
			if got != tt.want {
				t.Errorf("Recipe.SearchableText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecipe_HasVector(t *testing.T) {
	embedded := Recipe{Vector: []float32{0.6, 0.8}}
	if !embedded.HasVector() {
		t.Error("Recipe.HasVector() = false, want true")
	}

	unembedded := Recipe{}
	if unembedded.HasVector() {
		t.Error("Recipe.HasVector() = true, want false")
	}
}
