package markdown

import (
	"reflect"
	"testing"
)

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Frontmatter
	}{
		{
			name:  "no frontmatter",
			input: "# Hello\n\nWorld",
			want:  nil,
		},
		{
			name:  "basic frontmatter",
			input: "---\ntitle: My Note\ntags: [go, test]\ncssclasses:\n  - wide\n  - pin-outline\n---\n\n# Content",
			want: &Frontmatter{
				Title:      "My Note",
				Tags:       []string{"go", "test"},
				CSSClasses: []string{"wide", "pin-outline"},
				EndLine:    7,
			},
		},
		{
			name:  "legacy cssclass string",
			input: "---\ncssclass: unpin-outline\n---\n",
			want: &Frontmatter{
				CSSClasses: []string{"unpin-outline"},
				EndLine:    3,
			},
		},
		{
			name:  "invalid yaml",
			input: "---\n: : [\n---\nbody",
			want:  &Frontmatter{EndLine: 3},
		},
		{
			name:  "unclosed frontmatter",
			input: "---\ntitle: Unclosed\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFrontmatter([]byte(tt.input))
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected non-nil frontmatter")
			}
			if got.Title != tt.want.Title {
				t.Errorf("title: got %q, want %q", got.Title, tt.want.Title)
			}
			if !reflect.DeepEqual(got.Tags, tt.want.Tags) {
				t.Errorf("tags: got %v, want %v", got.Tags, tt.want.Tags)
			}
			if !reflect.DeepEqual(got.CSSClasses, tt.want.CSSClasses) {
				t.Errorf("cssclasses: got %v, want %v", got.CSSClasses, tt.want.CSSClasses)
			}
			if got.EndLine != tt.want.EndLine {
				t.Errorf("end line: got %d, want %d", got.EndLine, tt.want.EndLine)
			}
		})
	}
}

func TestExpanded(t *testing.T) {
	pin := &Frontmatter{CSSClasses: []string{"pin-outline"}}
	unpin := &Frontmatter{CSSClasses: []string{"unpin-outline"}}
	both := &Frontmatter{CSSClasses: []string{"unpin-outline", "pin-outline"}}

	tests := []struct {
		name         string
		fm           *Frontmatter
		alwaysExpand bool
		want         bool
	}{
		{"no frontmatter follows setting", nil, true, true},
		{"no frontmatter compact", nil, false, false},
		{"pinned overrides", pin, false, true},
		{"unpinned overrides", unpin, true, false},
		{"pin wins", both, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expanded(tt.fm, tt.alwaysExpand); got != tt.want {
				t.Errorf("Expanded = %v, want %v", got, tt.want)
			}
		})
	}
}
