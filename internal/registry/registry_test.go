package registry

import (
	"testing"

	"automation_snooze/internal/models"
)

func item(id, name string, labels ...string) models.AutomationItem {
	return models.AutomationItem{ID: id, Name: name, Labels: labels}
}

func ids(items []models.AutomationItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sameIDs(a []models.AutomationItem, want ...string) bool {
	got := ids(a)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilter_QueryMatchesNameOrID(t *testing.T) {
	items := []models.AutomationItem{
		item("automation.porch_light", "Porch Light"),
		item("automation.garage", "Garage Door"),
		item("automation.misc", "Night Mode"),
	}
	if got := Filter(items, "LIGHT", Markers{}); !sameIDs(got, "automation.porch_light") {
		t.Fatalf("name match: %v", ids(got))
	}
	if got := Filter(items, "garage", Markers{}); !sameIDs(got, "automation.garage") {
		t.Fatalf("id match: %v", ids(got))
	}
	if got := Filter(items, "", Markers{}); len(got) != 3 {
		t.Fatalf("empty query should keep all, got %v", ids(got))
	}
}

func TestFilter_ExcludeMarkerDropsItems(t *testing.T) {
	items := []models.AutomationItem{
		item("a", "One"),
		item("b", "Two", "hidden"),
		item("c", "Three"),
	}
	got := Filter(items, "", Markers{Exclude: "hidden"})
	if !sameIDs(got, "a", "c") {
		t.Fatalf("exclude: %v", ids(got))
	}
}

func TestFilter_IncludeMarkerWinsOverExclude(t *testing.T) {
	items := []models.AutomationItem{
		item("a", "One", "managed"),
		item("b", "Two", "hidden"),
		item("c", "Three", "managed", "hidden"),
		item("d", "Four"),
	}
	got := Filter(items, "", Markers{Include: "managed", Exclude: "hidden"})
	if !sameIDs(got, "a", "c") {
		t.Fatalf("include precedence: %v", ids(got))
	}
	// With no item carrying the include marker, the exclude rule applies.
	got = Filter(items[1:2], "", Markers{Include: "managed", Exclude: "hidden"})
	if len(got) != 0 {
		t.Fatalf("exclude fallback: %v", ids(got))
	}
}

func TestGroupBy_FallbackBucketSortsLast(t *testing.T) {
	items := []models.AutomationItem{
		item("z", "Z", "zebra"),
		item("n", "N"),
		item("a", "A", "apple"),
	}
	groups := GroupBy(items, LabelKeys(nil), "Unlabeled")
	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	wantOrder := []string{"Apple", "Zebra", "Unlabeled"}
	for i, want := range wantOrder {
		if groups[i].Name != want {
			t.Fatalf("groups[%d] = %q, want %q", i, groups[i].Name, want)
		}
	}
}

func TestGroupBy_MultiLabelItemAppearsInEachGroup(t *testing.T) {
	items := []models.AutomationItem{
		item("x", "X", "kitchen", "night", "security"),
	}
	groups := GroupBy(items, LabelKeys(map[string]string{"kitchen": "Kitchen"}), "Unlabeled")
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	for _, g := range groups {
		if !sameIDs(g.Items, "x") {
			t.Fatalf("group %q items %v", g.Name, ids(g.Items))
		}
	}
}

func TestUniqueKeyCount_IgnoresKeylessItems(t *testing.T) {
	items := []models.AutomationItem{
		{ID: "a", AreaID: "kitchen"},
		{ID: "b", AreaID: "kitchen"},
		{ID: "c", AreaID: "garage"},
		{ID: "d"},
	}
	if n := UniqueKeyCount(items, AreaKeys); n != 2 {
		t.Fatalf("UniqueKeyCount = %d, want 2", n)
	}
}

func TestCategoryKeys_RegistryLookupWithFallback(t *testing.T) {
	names := map[string]string{"cat1": "Lighting"}
	keys := CategoryKeys(names)
	if got := keys(models.AutomationItem{CategoryID: "cat1"}); len(got) != 1 || got[0] != "Lighting" {
		t.Fatalf("lookup: %v", got)
	}
	if got := keys(models.AutomationItem{CategoryID: "front_door"}); len(got) != 1 || got[0] != "Front Door" {
		t.Fatalf("fallback: %v", got)
	}
	if got := keys(models.AutomationItem{}); got != nil {
		t.Fatalf("no category: %v", got)
	}
}

func TestFormatRegistryID(t *testing.T) {
	tests := map[string]string{
		"front_door_sensor": "Front Door Sensor",
		"kitchen":           "Kitchen",
		"hall_1":            "Hall 1",
	}
	for in, want := range tests {
		if got := FormatRegistryID(in); got != want {
			t.Fatalf("FormatRegistryID(%q) = %q, want %q", in, got, want)
		}
	}
}
