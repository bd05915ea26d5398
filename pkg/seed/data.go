package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/heathcliff26/brewbook/pkg/client"
	"sigs.k8s.io/yaml"
)

//go:embed data/seed.yaml
var defaultData []byte

// Data contains everything that is written to the space during seeding
type Data struct {
	Components []client.Component `json:"components"`
	Cafes      []Cafe             `json:"cafes"`
	Events     []Event            `json:"events"`
}

type Cafe struct {
	Title            string  `json:"title"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	GeoLocation      string  `json:"geo_location"`
	Tags             string  `json:"tags"`
	NoiseLevel       string  `json:"noise_level"`
	SeatingCapacity  string  `json:"seating_capacity"`
	Specialties      string  `json:"specialties"`
	PriceRange       string  `json:"price_range"`
	WiFi             bool    `json:"wifi"`
	PowerOutlets     bool    `json:"power_outlets"`
	OutdoorSeating   bool    `json:"outdoor_seating"`
	PetFriendly      bool    `json:"pet_friendly"`
	OpeningHours     string  `json:"opening_hours"`
	ShortDescription string  `json:"short_description"`
	Rating           float64 `json:"rating"`
	Image            string  `json:"img"`
}

type Event struct {
	Title    string `json:"title"`
	Slug     string `json:"slug,omitempty"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Image    string `json:"img"`
}

// Load the seed data from the given file, or the embedded default data if path is empty
func LoadData(path string) (Data, error) {
	raw := defaultData
	if path != "" {
		// #nosec G304 -- Local users can decide on their file path themselves.
		f, err := os.ReadFile(path)
		if err != nil {
			return Data{}, fmt.Errorf("failed to read seed data file '%s': %w", path, err)
		}
		raw = f
	}

	var data Data
	err := yaml.Unmarshal(raw, &data)
	if err != nil {
		return Data{}, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	err = data.Validate()
	if err != nil {
		return Data{}, fmt.Errorf("invalid seed data: %w", err)
	}
	return data, nil
}

// Check that all entries can be written to storyblok
func (d Data) Validate() error {
	known := make(map[string]bool, len(d.Components))
	for i, c := range d.Components {
		if c.Name == "" {
			return fmt.Errorf("component %d has no name", i)
		}
		if known[c.Name] {
			return fmt.Errorf("duplicate component '%s'", c.Name)
		}
		for field, f := range c.Schema {
			if f.Type == "" {
				return fmt.Errorf("field '%s' of component '%s' has no type", field, c.Name)
			}
			for _, name := range f.ComponentWhitelist {
				if !known[name] {
					return fmt.Errorf("field '%s' of component '%s' references component '%s', which is not defined before it", field, c.Name, name)
				}
			}
		}
		known[c.Name] = true
	}

	slugs := make(map[string]bool, len(d.Cafes)+len(d.Events))
	for i, cafe := range d.Cafes {
		if cafe.Title == "" {
			return fmt.Errorf("cafe %d has no title", i)
		}
		slug := Slugify(cafe.Title)
		if slugs[slug] {
			return fmt.Errorf("duplicate slug '%s'", slug)
		}
		slugs[slug] = true
	}
	for i, event := range d.Events {
		if event.Title == "" {
			return fmt.Errorf("event %d has no title", i)
		}
		slug := event.slug()
		if slugs[slug] {
			return fmt.Errorf("duplicate slug '%s'", slug)
		}
		slugs[slug] = true
	}
	return nil
}

func (e Event) slug() string {
	if e.Slug != "" {
		return e.Slug
	}
	return Slugify(e.Title)
}
