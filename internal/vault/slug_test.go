package vault

import (
	"reflect"
	"testing"

	"github.com/pfassina/tocnav/internal/outline"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"My Note! (Draft)", "my-note-draft"},
		{"2024-01-01 Daily", "2024-01-01-daily"},
		{"", ""},
		{"Already-Slugged", "already-slugged"},
		{"snake_case title", "snake-case-title"},
		{"中文 标题", "中文-标题"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnchors(t *testing.T) {
	hs := []outline.Heading{
		{Level: 2, Text: "Usage"},
		{Level: 3, Text: "Example"},
		{Level: 2, Text: "Usage"},
		{Level: 3, Text: "Example"},
		{Level: 3, Text: "Example"},
	}
	got := Anchors(hs)
	want := []string{"usage", "example", "usage-1", "example-1", "example-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Anchors = %q, want %q", got, want)
	}
}
