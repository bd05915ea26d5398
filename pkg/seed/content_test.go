package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tMatrix := map[string]string{
		"Demo Coffee Central":       "demo-coffee-central",
		"Bean & Byte Tech Café":     "bean-and-byte-tech-cafe",
		"Café Aroma Artisan":        "cafe-aroma-artisan",
		"Grüne Bohne":               "grune-bohne",
		"Kaffeehaus Ärger Öffnung":  "kaffeehaus-arger-offnung",
		"Roast & Route Travel Café": "roast-and-route-travel-cafe",
	}

	for name, expected := range tMatrix {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, Slugify(name))
		})
	}
}

func TestBlockUID(t *testing.T) {
	assert := assert.New(t)

	uid := blockUID("cafe", "demo-coffee-central")
	assert.Equal(uid, blockUID("cafe", "demo-coffee-central"), "UIDs should be stable")
	assert.NotEqual(uid, blockUID("metadata", "demo-coffee-central"))
	assert.NotEqual(uid, blockUID("cafe", "roaster-talk"))

	parsed, err := uuid.Parse(uid)
	assert.NoError(err)
	assert.Equal(uuid.Version(5), parsed.Version())
}

func testCafe() Cafe {
	return Cafe{
		Title:            "Roast & Route Travel Café",
		Address:          "321 Explorer Lane",
		City:             "Lisbon",
		GeoLocation:      "38.7223,-9.1393",
		Tags:             "outdoor seating,pet friendly,casual,travel theme",
		NoiseLevel:       "loud",
		SeatingCapacity:  "medium",
		Specialties:      "Dark Roast, Portuguese Pastéis, Galão",
		PriceRange:       "budget",
		WiFi:             true,
		PowerOutlets:     false,
		OutdoorSeating:   true,
		PetFriendly:      true,
		OpeningHours:     "Monday-Sunday: 7:30-19:30",
		ShortDescription: "A vibrant travel-themed café.",
		Rating:           4.2,
		Image:            "https://images.example.com/cafe",
	}
}

func TestCafeText(t *testing.T) {
	assert := assert.New(t)
	c := testCafe()

	assert.Equal("A vibrant travel-themed café. Located at 321 Explorer Lane in Lisbon, this café specializes in Dark Roast, Portuguese Pastéis, Galão. The atmosphere is loud with medium seating capacity, making it ideal for various activities. Amenities include: free WiFi, outdoor seating, pet-friendly environment.", c.description())
	assert.Equal("A budget-range loud café in Lisbon perfect for outdoor seating enthusiasts", c.aiSummary())
	assert.Equal("Lisbon,loud,budget,wifi,pet-friendly", c.aiTags())

	c.WiFi = false
	c.OutdoorSeating = false
	c.PetFriendly = false
	assert.Empty(c.amenities())
	assert.NotContains(c.description(), "Amenities include")
	assert.Equal("Lisbon,loud,budget,no-wifi,no-pets", c.aiTags())
}

func TestCafeContent(t *testing.T) {
	assert := assert.New(t)
	c := testCafe()

	content := cafeContent(3, c, "roast-and-route-travel-cafe")
	assert.Equal("page", content["component"])

	body, ok := content["body"].([]any)
	require.True(t, ok)
	require.Len(t, body, 1)
	block, ok := body[0].(map[string]any)
	require.True(t, ok)

	assert.Equal("cafe", block["component"])
	assert.Equal(c.Title, block["name"])
	assert.Equal("Lisbon, 321 Explorer Lane", block["location"])
	assert.Equal(map[string]any{"filename": c.Image}, block["hero_image"])
	assert.Equal([]any{
		map[string]any{"filename": c.Image},
		map[string]any{"filename": c.Image + "?w=400"},
		map[string]any{"filename": c.Image + "?w=600"},
	}, block["gallery"])
	assert.Equal(richText(c.OpeningHours), block["opening_hours"])

	metadata, ok := block["metadata"].([]any)
	require.True(t, ok)
	require.Len(t, metadata, 1)
	meta, ok := metadata[0].(map[string]any)
	require.True(t, ok)
	assert.Equal("metadata", meta["component"])
	assert.Equal(4.2, meta["rating"])
	assert.Equal(false, meta["open_now"], "Odd indexes should be closed")
	assert.Equal(true, cafeContent(4, c, "roast-and-route-travel-cafe")["body"].([]any)[0].(map[string]any)["metadata"].([]any)[0].(map[string]any)["open_now"])
}

func TestEventContent(t *testing.T) {
	assert := assert.New(t)

	e := Event{
		Title:    "Roaster Talk",
		Slug:     "roaster-talk",
		Date:     "2025-10-15T18:00:00+00:00",
		Location: "Paris, FR",
		Image:    "https://images.example.com/event",
	}
	content := eventContent(e, e.slug())

	body, ok := content["body"].([]any)
	require.True(t, ok)
	block, ok := body[0].(map[string]any)
	require.True(t, ok)

	assert.Equal("event", block["component"])
	assert.Equal("Roaster Talk", block["title"])
	assert.Equal(e.Date, block["date"])
	assert.Equal(richText("Join us!"), block["description"])
	assert.NotEqual(content["_uid"], block["_uid"])
}

func TestRichText(t *testing.T) {
	assert.Equal(t, map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": "Hello"},
				},
			},
		},
	}, richText("Hello"))
}
