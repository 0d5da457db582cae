package outline

import (
	"reflect"
	"testing"
)

func TestVisibility(t *testing.T) {
	tests := []struct {
		name      string
		levels    []int
		collapsed []int
		skip      bool
		want      []bool
	}{
		{"nothing collapsed", []int{1, 2, 3}, nil, false, []bool{true, true, true}},
		{"collapse root", []int{1, 2, 3, 2, 1}, []int{0}, false, []bool{true, false, false, false, true}},
		{"collapse middle", []int{1, 2, 3, 2, 1}, []int{1}, false, []bool{true, true, false, true, true}},
		{"collapse leaf", []int{1, 2, 1}, []int{1}, false, []bool{true, true, true}},
		{"nested collapse", []int{1, 2, 3, 2}, []int{0, 1}, false, []bool{true, false, false, false}},
		{"skip hides h1", []int{1, 2, 3}, nil, true, []bool{false, true, true}},
		{"skip ignores collapsed h1", []int{1, 2, 3}, []int{0}, true, []bool{false, true, true}},
		{"skip collapse h2", []int{1, 2, 3}, []int{1}, true, []bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collapsed := make(map[int]bool)
			for _, i := range tt.collapsed {
				collapsed[i] = true
			}
			got := Visibility(Levels(tt.levels...), collapsed, tt.skip)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Visibility = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibilityToggleTwice(t *testing.T) {
	hs := Levels(1, 2, 3, 2, 1, 2)
	collapsed := map[int]bool{}
	before := Visibility(hs, collapsed, false)

	collapsed[1] = !collapsed[1]
	collapsed[1] = !collapsed[1]

	if after := Visibility(hs, collapsed, false); !reflect.DeepEqual(before, after) {
		t.Errorf("toggle twice changed visibility: %v -> %v", before, after)
	}
}

func TestVisibilityMatchesAncestors(t *testing.T) {
	hs := Levels(1, 3, 2, 4, 4, 2, 1, 3)
	collapsed := map[int]bool{2: true, 6: true}
	vis := Visibility(hs, collapsed, false)
	for i := range hs {
		hidden := false
		for p := Parent(i, hs, false); p >= 0; p = Parent(p, hs, false) {
			if collapsed[p] {
				hidden = true
			}
		}
		if vis[i] == hidden {
			t.Errorf("heading %d: visible=%v but collapsed ancestor=%v", i, vis[i], hidden)
		}
	}
}

func TestShouldShow(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		skip   bool
		single bool
		want   bool
	}{
		{"empty", nil, false, true, false},
		{"single hidden", []int{2}, false, false, false},
		{"single shown", []int{2}, false, true, true},
		{"two", []int{1, 2}, false, false, true},
		{"only h1 skipped", []int{1, 1}, true, true, false},
		{"one left after skip", []int{1, 2}, true, false, false},
		{"one left after skip shown", []int{1, 2}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldShow(Levels(tt.levels...), tt.skip, tt.single); got != tt.want {
				t.Errorf("ShouldShow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollapsible(t *testing.T) {
	got := Collapsible(Levels(1, 2, 3, 2, 1))
	want := []int{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapsible = %v, want %v", got, want)
	}
}
