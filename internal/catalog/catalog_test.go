package catalog

import (
	"reflect"
	"sort"
	"testing"
)

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].ID = "tampered"
	b := All()
	if b[0].ID == "tampered" {
		t.Error("All did not return a defensive copy")
	}
}

func TestGet(t *testing.T) {
	c, err := Get("injection")
	if err != nil {
		t.Fatalf("Get(injection) error = %v", err)
	}
	if c.Label != "Injection" {
		t.Errorf("Label = %q, want Injection", c.Label)
	}

	if _, err := Get("no-such-category"); err == nil {
		t.Error("Get(unknown) = nil error, want error")
	}
}

func TestIDs_SortedAndUnique(t *testing.T) {
	ids := IDs()
	if !sort.StringsAreSorted(ids) {
		t.Errorf("IDs() not sorted: %v", ids)
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate category ID %q", id)
		}
		seen[id] = true
	}
	if len(ids) != len(All()) {
		t.Errorf("IDs length = %d, want %d", len(ids), len(All()))
	}
}

func TestFoundationalIDs(t *testing.T) {
	want := []string{"access-control", "crypto-defaults", "injection"}
	if got := FoundationalIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("FoundationalIDs() = %v, want %v", got, want)
	}
}

func TestLabel_FallsBackToID(t *testing.T) {
	if got := Label("mystery"); got != "mystery" {
		t.Errorf("Label(mystery) = %q, want mystery", got)
	}
	if got := Label("access-control"); got != "Access Control" {
		t.Errorf("Label(access-control) = %q, want Access Control", got)
	}
}

func TestDescriptionsPresent(t *testing.T) {
	for _, c := range All() {
		if c.Description == "" {
			t.Errorf("category %q has no description", c.ID)
		}
		if c.Label == "" {
			t.Errorf("category %q has no label", c.ID)
		}
	}
}
