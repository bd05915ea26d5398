package seed

import (
	"fmt"
	"log/slog"

	"github.com/heathcliff26/brewbook/pkg/client"
)

// Folders used for the stories when folders are enabled
const (
	cafesFolderName  = "Cafes"
	cafesFolderSlug  = "cafes"
	eventsFolderName = "Events"
	eventsFolderSlug = "events"
)

// StoryblokAPI is the part of the management api needed for seeding
type StoryblokAPI interface {
	EnsureComponent(component client.Component) (int64, error)
	EnsureFolder(name, slug string) (int64, error)
	UpsertStory(story client.Story, publish bool) (int64, error)
}

type Options struct {
	// Create the cafes and events folders and put the stories into them.
	// Not all storyblok plans support folders.
	Folders bool
	// Publish the stories after writing them
	Publish bool
}

// Summary of a seeding run
type Summary struct {
	Components int
	Cafes      int
	Events     int
}

// Seeder writes the seed data into a space, one call after the other
type Seeder struct {
	api  StoryblokAPI
	data Data
	opts Options
}

func NewSeeder(api StoryblokAPI, data Data, opts Options) *Seeder {
	return &Seeder{
		api:  api,
		data: data,
		opts: opts,
	}
}

// Run the seeding. Stops at the first failed call.
func (s *Seeder) Run() (Summary, error) {
	var summary Summary

	slog.Info("Ensuring components")
	for _, component := range s.data.Components {
		_, err := s.api.EnsureComponent(component)
		if err != nil {
			return summary, fmt.Errorf("failed to ensure component '%s': %w", component.Name, err)
		}
		summary.Components++
	}

	var cafesFolderID, eventsFolderID int64
	if s.opts.Folders {
		slog.Info("Ensuring folders")
		var err error
		cafesFolderID, err = s.api.EnsureFolder(cafesFolderName, cafesFolderSlug)
		if err != nil {
			return summary, fmt.Errorf("failed to ensure folder '%s': %w", cafesFolderSlug, err)
		}
		eventsFolderID, err = s.api.EnsureFolder(eventsFolderName, eventsFolderSlug)
		if err != nil {
			return summary, fmt.Errorf("failed to ensure folder '%s': %w", eventsFolderSlug, err)
		}
	} else {
		slog.Info("Skipping folders, stories are created in the root of the space")
	}

	slog.Info("Creating cafes", slog.Int("count", len(s.data.Cafes)))
	for i, cafe := range s.data.Cafes {
		slug := Slugify(cafe.Title)
		story := client.Story{
			Name:        cafe.Title,
			Slug:        slug,
			Content:     cafeContent(i, cafe, slug),
			ContentType: "page",
			ParentID:    cafesFolderID,
		}
		_, err := s.api.UpsertStory(story, s.opts.Publish)
		if err != nil {
			return summary, fmt.Errorf("failed to upsert cafe '%s': %w", slug, err)
		}
		summary.Cafes++
	}

	slog.Info("Creating events", slog.Int("count", len(s.data.Events)))
	for _, event := range s.data.Events {
		slug := event.slug()
		story := client.Story{
			Name:        event.Title,
			Slug:        slug,
			Content:     eventContent(event, slug),
			ContentType: "page",
			ParentID:    eventsFolderID,
		}
		_, err := s.api.UpsertStory(story, s.opts.Publish)
		if err != nil {
			return summary, fmt.Errorf("failed to upsert event '%s': %w", slug, err)
		}
		summary.Events++
	}

	slog.Info("Seed complete",
		slog.Int("components", summary.Components),
		slog.Int("cafes", summary.Cafes),
		slog.Int("events", summary.Events),
	)
	return summary, nil
}
