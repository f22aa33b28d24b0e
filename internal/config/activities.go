package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActivityCategory groups activities for display
type ActivityCategory string

const (
	ActivityCategoryNew       ActivityCategory = "new"
	ActivityCategoryReturning ActivityCategory = "returning"
)

// Activity is one dungeon a group can be formed for
type Activity struct {
	Name     string           `yaml:"name" json:"name"`
	Category ActivityCategory `yaml:"category" json:"category"`
}

// ActivityCatalog is the list of activities groups may be created for
type ActivityCatalog struct {
	Activities []Activity `yaml:"activities" json:"activities"`
}

// DefaultActivities is the current season rotation, used when no catalog file exists
func DefaultActivities() *ActivityCatalog {
	return &ActivityCatalog{
		Activities: []Activity{
			{Name: "Ara-Kara, City of Echoes", Category: ActivityCategoryNew},
			{Name: "City of Threads", Category: ActivityCategoryNew},
			{Name: "The Stonevault", Category: ActivityCategoryNew},
			{Name: "The Dawnbreaker", Category: ActivityCategoryNew},
			{Name: "Mists of Tirna Scithe", Category: ActivityCategoryReturning},
			{Name: "The Necrotic Wake", Category: ActivityCategoryReturning},
			{Name: "Siege of Boralus", Category: ActivityCategoryReturning},
			{Name: "Grim Batol", Category: ActivityCategoryReturning},
		},
	}
}

// LoadActivities reads the activity catalog from a YAML file.
// A missing file falls back to DefaultActivities.
func LoadActivities(path string) (*ActivityCatalog, error) {
	if path == "" {
		return DefaultActivities(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultActivities(), nil
		}
		return nil, fmt.Errorf("error reading activities file: %w", err)
	}

	var catalog ActivityCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("error parsing activities file: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Activities))
	for i, a := range catalog.Activities {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, fmt.Errorf("activity %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate activity %q", name)
		}
		seen[name] = true
		catalog.Activities[i].Name = name
		if a.Category == "" {
			catalog.Activities[i].Category = ActivityCategoryNew
		}
	}
	if len(catalog.Activities) == 0 {
		return nil, fmt.Errorf("activities file %s lists no activities", path)
	}

	return &catalog, nil
}

// Contains reports whether name is a supported activity
func (c *ActivityCatalog) Contains(name string) bool {
	for _, a := range c.Activities {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ByCategory returns the activities in the given category, in catalog order
func (c *ActivityCatalog) ByCategory(category ActivityCategory) []Activity {
	var out []Activity
	for _, a := range c.Activities {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
