package models

// AutomationItem is one automation rule as exposed by the platform.
// The service treats the list as an immutable read-only snapshot.
type AutomationItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	AreaID     string   `json:"area_id,omitempty"`
	CategoryID string   `json:"category_id,omitempty"`
	Labels     []string `json:"labels,omitempty"`
}

// Snapshot is the inbound automation state: items plus registry name maps.
type Snapshot struct {
	Automations []AutomationItem  `json:"automations"`
	Labels      map[string]string `json:"labels"`     // label id -> display name
	Categories  map[string]string `json:"categories"` // category id -> display name
}
