package seed

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namespace for the block uids, keeps them stable between seeding runs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/heathcliff26/brewbook"))

var slugReplacer = strings.NewReplacer(
	"&", "and",
	" ", "-",
	"é", "e",
	"ü", "u",
	"ä", "a",
	"ö", "o",
)

// Convert a story name into the slug used for its url
func Slugify(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}

func blockUID(kind, slug string) string {
	return uuid.NewSHA1(uidNamespace, []byte(kind+"/"+slug)).String()
}

// Wrap plain text into a storyblok richtext document
func richText(text string) map[string]any {
	return map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{
						"type": "text",
						"text": text,
					},
				},
			},
		},
	}
}

func asset(filename string) map[string]any {
	return map[string]any{"filename": filename}
}

func (c Cafe) amenities() []string {
	var amenities []string
	if c.WiFi {
		amenities = append(amenities, "free WiFi")
	}
	if c.PowerOutlets {
		amenities = append(amenities, "power outlets")
	}
	if c.OutdoorSeating {
		amenities = append(amenities, "outdoor seating")
	}
	if c.PetFriendly {
		amenities = append(amenities, "pet-friendly environment")
	}
	return amenities
}

func (c Cafe) description() string {
	text := fmt.Sprintf("%s Located at %s in %s, this café specializes in %s. The atmosphere is %s with %s seating capacity, making it ideal for various activities.",
		c.ShortDescription, c.Address, c.City, c.Specialties, c.NoiseLevel, c.SeatingCapacity)

	if amenities := c.amenities(); len(amenities) > 0 {
		text += fmt.Sprintf(" Amenities include: %s.", strings.Join(amenities, ", "))
	}
	return text
}

func (c Cafe) aiSummary() string {
	firstTag, _, _ := strings.Cut(c.Tags, ",")
	return fmt.Sprintf("A %s-range %s café in %s perfect for %s enthusiasts", c.PriceRange, c.NoiseLevel, c.City, firstTag)
}

func (c Cafe) aiTags() string {
	wifi := "no-wifi"
	if c.WiFi {
		wifi = "wifi"
	}
	pets := "no-pets"
	if c.PetFriendly {
		pets = "pet-friendly"
	}
	return strings.Join([]string{c.City, c.NoiseLevel, c.PriceRange, wifi, pets}, ",")
}

// Build the page content of a café story.
// The index only decides the demo value of open_now.
func cafeContent(index int, c Cafe, slug string) map[string]any {
	openingHours := richText(c.OpeningHours)

	return map[string]any{
		"component": "page",
		"_uid":      blockUID("page", slug),
		"body": []any{
			map[string]any{
				"component": "cafe",
				"_uid":      blockUID("cafe", slug),

				"title":         c.Title,
				"description":   richText(c.description()),
				"short_summary": c.ShortDescription,

				"address":       c.Address,
				"city":          c.City,
				"geo_location":  c.GeoLocation,
				"opening_hours": openingHours,

				"wifi":             c.WiFi,
				"power_outlets":    c.PowerOutlets,
				"noise_level":      c.NoiseLevel,
				"seating_capacity": c.SeatingCapacity,
				"outdoor_seating":  c.OutdoorSeating,
				"pet_friendly":     c.PetFriendly,

				"hero_image": asset(c.Image),
				"gallery": []any{
					asset(c.Image),
					asset(c.Image + "?w=400"),
					asset(c.Image + "?w=600"),
				},

				"tags":        c.Tags,
				"price_range": c.PriceRange,
				"specialties": c.Specialties,

				"name":     c.Title,
				"image":    asset(c.Image),
				"location": c.City + ", " + c.Address,
				"metadata": []any{
					map[string]any{
						"component":         "metadata",
						"_uid":              blockUID("metadata", slug),
						"tags":              c.Tags,
						"opening_hours":     openingHours,
						"rating":            c.Rating,
						"specialties":       c.Specialties,
						"ai_summary":        c.aiSummary(),
						"ai_tags":           c.aiTags(),
						"detected_language": "en",
						"open_now":          index%2 == 0,
					},
				},
			},
		},
	}
}

// Build the page content of an event story
func eventContent(e Event, slug string) map[string]any {
	return map[string]any{
		"component": "page",
		"_uid":      blockUID("event-page", slug),
		"body": []any{
			map[string]any{
				"component":   "event",
				"_uid":        blockUID("event", slug),
				"title":       e.Title,
				"description": richText("Join us!"),
				"date":        e.Date,
				"location":    e.Location,
				"image":       asset(e.Image),
				"metadata": []any{
					map[string]any{
						"component":     "metadata",
						"_uid":          blockUID("event-metadata", slug),
						"tags":          "event,coffee,demo",
						"opening_hours": "",
						"rating":        5,
					},
				},
			},
		},
	}
}
