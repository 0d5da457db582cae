package outline

import (
	"reflect"
	"testing"
)

func TestHasChildren(t *testing.T) {
	hs := Levels(1, 2, 1)
	want := []bool{true, false, false}
	for i, w := range want {
		if got := HasChildren(i, hs); got != w {
			t.Errorf("HasChildren(%d) = %v, want %v", i, got, w)
		}
	}
	if HasChildren(-1, hs) || HasChildren(3, hs) {
		t.Error("HasChildren out of range should be false")
	}
}

func TestChildIndices(t *testing.T) {
	hs := Levels(1, 2, 3, 2, 1, 2)
	tests := []struct {
		i    int
		want []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{2}},
		{2, nil},
		{4, []int{5}},
		{5, nil},
		{-1, nil},
		{6, nil},
	}
	for _, tt := range tests {
		if got := ChildIndices(tt.i, hs); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ChildIndices(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	hs := Levels(1, 2, 3, 2, 1, 2)
	want := []int{-1, 0, 1, 0, -1, 4}
	for i, w := range want {
		if got := Parent(i, hs, false); got != w {
			t.Errorf("Parent(%d) = %d, want %d", i, got, w)
		}
	}
	if got := Parent(1, hs, true); got != -1 {
		t.Errorf("Parent(1, skip) = %d, want -1", got)
	}
}

func TestSameParent(t *testing.T) {
	hs := Levels(1, 2, 2, 1, 2)
	tests := []struct {
		name string
		i, j int
		skip bool
		want bool
	}{
		{"siblings", 1, 2, false, true},
		{"different chapters", 1, 4, false, false},
		{"different chapters without h1", 1, 4, true, true},
		{"top level", 0, 3, false, true},
		{"out of range", 0, 9, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameParent(tt.i, tt.j, hs, tt.skip); got != tt.want {
				t.Errorf("SameParent(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}
