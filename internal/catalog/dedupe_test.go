package catalog

import (
	"sort"
	"testing"
)

func defsFromIDs(ids ...string) []ModelDefinition {
	defs := make([]ModelDefinition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, NewModelDefinition(ProviderQwen, id, "", "model_name"))
	}
	return defs
}

func idsFromDefs(defs []ModelDefinition) []string {
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.RawID)
	}
	return ids
}

func TestDedupeDatedVariants(t *testing.T) {
	in := defsFromIDs(
		"qwen-plus-2025-01-25",
		"qwen-plus-2025-12-01",
		"qwen-plus",
		"qwen-max-2025-01-25",
		"qwen-max-latest",
	)

	got := idsFromDefs(DedupeDatedVariants(in))
	want := []string{"qwen-max-2025-01-25", "qwen-max-latest", "qwen-plus", "qwen-plus-2025-12-01"}

	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("got %d survivors %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("survivor %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDedupeDatedVariantsKeepsUndatedOrder(t *testing.T) {
	in := defsFromIDs("qwen-turbo", "qwen-plus", "qwen-max-latest")

	got := idsFromDefs(DedupeDatedVariants(in))
	want := []string{"qwen-turbo", "qwen-plus", "qwen-max-latest"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("undated entry %d = %q, want %q (relative order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestDedupeDatedVariantsLexicographicDates(t *testing.T) {
	in := defsFromIDs(
		"qwen-vl-max-2024-12-30",
		"qwen-vl-max-2025-01-02",
		"qwen-vl-max-2024-02-01",
	)

	got := idsFromDefs(DedupeDatedVariants(in))
	if len(got) != 1 || got[0] != "qwen-vl-max-2025-01-02" {
		t.Errorf("got %v, want only the newest snapshot qwen-vl-max-2025-01-02", got)
	}
}

func TestDedupeDatedVariantsEmpty(t *testing.T) {
	if got := DedupeDatedVariants(nil); len(got) != 0 {
		t.Errorf("dedupe of empty input should be empty, got %v", got)
	}
}
