// Package registry holds the pure helpers that filter, group and count
// automation items for list views. All functions treat their inputs as
// immutable snapshots.
package registry

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"automation_snooze/internal/models"
)

// Markers designate opt-in/opt-out labels for list filtering. When any item in
// the full set carries Include, the universe narrows to exactly those items;
// otherwise items carrying Exclude are dropped. Include wins over Exclude.
type Markers struct {
	Include string
	Exclude string
}

// Group is one named bucket of automations.
type Group struct {
	Name  string                  `json:"name"`
	Items []models.AutomationItem `json:"items"`
}

// Filter applies the marker rules and then a case-insensitive substring match
// of query against each item's display name or id.
func Filter(items []models.AutomationItem, query string, m Markers) []models.AutomationItem {
	universe := items
	if m.Include != "" && anyHasLabel(items, m.Include) {
		universe = itemsWithLabel(items, m.Include, true)
	} else if m.Exclude != "" {
		universe = itemsWithLabel(items, m.Exclude, false)
	}
	if query == "" {
		return universe
	}

	q := strings.ToLower(query)
	var out []models.AutomationItem
	for _, it := range universe {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.ID), q) {
			out = append(out, it)
		}
	}
	return out
}

// GroupBy buckets items under the names keysFor yields. An item yielding
// several names appears in each of those groups; one yielding none lands in
// the fallback bucket. Groups sort alphabetically except the fallback bucket,
// which always sorts last.
func GroupBy(items []models.AutomationItem, keysFor func(models.AutomationItem) []string, fallback string) []Group {
	buckets := make(map[string][]models.AutomationItem)
	for _, it := range items {
		keys := keysFor(it)
		if len(keys) == 0 {
			buckets[fallback] = append(buckets[fallback], it)
			continue
		}
		for _, k := range keys {
			buckets[k] = append(buckets[k], it)
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == fallback {
			return false
		}
		if names[j] == fallback {
			return true
		}
		return names[i] < names[j]
	})

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Items: buckets[name]})
	}
	return groups
}

// UniqueKeyCount counts distinct key names produced across the whole set,
// ignoring items that produce none. Used for tab badges ("3 areas").
func UniqueKeyCount(items []models.AutomationItem, keysFor func(models.AutomationItem) []string) int {
	seen := make(map[string]struct{})
	for _, it := range items {
		for _, k := range keysFor(it) {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

var titleCaser = cases.Title(language.Und)

// FormatRegistryID turns a raw identifier like "front_door_sensor" into a
// human label: "Front Door Sensor". Used when a registry has no display name
// for an id.
func FormatRegistryID(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// AreaKeys groups by area; items without an area fall through.
func AreaKeys(it models.AutomationItem) []string {
	if it.AreaID == "" {
		return nil
	}
	return []string{FormatRegistryID(it.AreaID)}
}

// LabelKeys resolves label ids through the registry name map, falling back to
// the formatted id for unknown labels.
func LabelKeys(names map[string]string) func(models.AutomationItem) []string {
	return func(it models.AutomationItem) []string {
		keys := make([]string, 0, len(it.Labels))
		for _, id := range it.Labels {
			if name, ok := names[id]; ok && name != "" {
				keys = append(keys, name)
				continue
			}
			keys = append(keys, FormatRegistryID(id))
		}
		return keys
	}
}

// CategoryKeys resolves the category id through the registry name map.
func CategoryKeys(names map[string]string) func(models.AutomationItem) []string {
	return func(it models.AutomationItem) []string {
		if it.CategoryID == "" {
			return nil
		}
		if name, ok := names[it.CategoryID]; ok && name != "" {
			return []string{name}
		}
		return []string{FormatRegistryID(it.CategoryID)}
	}
}

func anyHasLabel(items []models.AutomationItem, label string) bool {
	for _, it := range items {
		if hasLabel(it, label) {
			return true
		}
	}
	return false
}

func itemsWithLabel(items []models.AutomationItem, label string, want bool) []models.AutomationItem {
	var out []models.AutomationItem
	for _, it := range items {
		if hasLabel(it, label) == want {
			out = append(out, it)
		}
	}
	return out
}

func hasLabel(it models.AutomationItem, label string) bool {
	for _, l := range it.Labels {
		if l == label {
			return true
		}
	}
	return false
}
