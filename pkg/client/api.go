package client

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// Fetch all components of the space.
// API endpoint: GET /spaces/{space_id}/components
func (c *StoryblokClient) ListComponents() ([]Component, error) {
	var res componentsResponse
	_, err := c.do(http.MethodGet, "/components", nil, nil, &res)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	return res.Components, nil
}

// Create a new component.
// API endpoint: POST /spaces/{space_id}/components
func (c *StoryblokClient) CreateComponent(component Component) (Component, error) {
	component.ID = 0

	var res componentResponse
	_, err := c.do(http.MethodPost, "/components", nil, componentRequest{Component: component}, &res)
	if err != nil {
		return Component{}, fmt.Errorf("failed to create component '%s': %w", component.Name, err)
	}
	return res.Component, nil
}

// Update the schema of an existing component.
// API endpoint: PUT /spaces/{space_id}/components/{component_id}
func (c *StoryblokClient) UpdateComponent(component Component) error {
	if component.ID == 0 {
		return fmt.Errorf("component ID must be set to update a component")
	}
	id := component.ID
	component.ID = 0

	_, err := c.do(http.MethodPut, fmt.Sprintf("/components/%d", id), nil, componentRequest{Component: component}, nil)
	if err != nil {
		return fmt.Errorf("failed to update component '%s': %w", component.Name, err)
	}
	return nil
}

// Create the component or update its schema if one with the same name exists.
// Returns the ID of the component.
func (c *StoryblokClient) EnsureComponent(component Component) (int64, error) {
	existing, err := c.ListComponents()
	if err != nil {
		return 0, err
	}

	for _, e := range existing {
		if e.Name != component.Name {
			continue
		}
		component.ID = e.ID
		err = c.UpdateComponent(component)
		if err != nil {
			return 0, err
		}
		slog.Info("Updated component", slog.String("name", component.Name), slog.Int64("id", e.ID))
		return e.ID, nil
	}

	created, err := c.CreateComponent(component)
	if err != nil {
		return 0, err
	}
	slog.Info("Created component", slog.String("name", component.Name), slog.Int64("id", created.ID))
	return created.ID, nil
}

// Fetch all folders of the space.
// Spaces without folder support answer with 404, which is treated as no folders.
// API endpoint: GET /spaces/{space_id}/folders
func (c *StoryblokClient) ListFolders() ([]Folder, error) {
	var res foldersResponse
	_, err := c.do(http.MethodGet, "/folders", nil, nil, &res)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return res.Folders, nil
}

// Create a new folder.
// API endpoint: POST /spaces/{space_id}/folders
func (c *StoryblokClient) CreateFolder(folder Folder) (Folder, error) {
	folder.ID = 0

	var res folderResponse
	_, err := c.do(http.MethodPost, "/folders", nil, folderRequest{Folder: folder}, &res)
	if err != nil {
		return Folder{}, fmt.Errorf("failed to create folder '%s': %w", folder.Name, err)
	}
	return res.Folder, nil
}

// Return the ID of the folder matching either name or slug, create it if none exists.
func (c *StoryblokClient) EnsureFolder(name, slug string) (int64, error) {
	folders, err := c.ListFolders()
	if err != nil {
		return 0, err
	}

	for _, f := range folders {
		if f.Name == name || f.Slug == slug {
			return f.ID, nil
		}
	}

	created, err := c.CreateFolder(Folder{Name: name, Slug: slug})
	if err != nil {
		return 0, err
	}
	slog.Info("Created folder", slog.String("name", name), slog.Int64("id", created.ID))
	return created.ID, nil
}

// Fetch all stories of the space, following the pagination of the api.
// API endpoint: GET /spaces/{space_id}/stories
func (c *StoryblokClient) ListStories() ([]Story, error) {
	var stories []Story
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(storiesPerPage))

		var res storiesResponse
		header, err := c.do(http.MethodGet, "/stories", query, nil, &res)
		if err != nil {
			return nil, fmt.Errorf("failed to list stories (page %d): %w", page, err)
		}
		stories = append(stories, res.Stories...)

		if len(res.Stories) < storiesPerPage {
			return stories, nil
		}
		total, err := strconv.Atoi(header.Get("Total"))
		if err == nil && len(stories) >= total {
			return stories, nil
		}
	}
}

// Find a story by its slug, returns nil if no story matches.
func (c *StoryblokClient) FindStoryBySlug(slug string) (*Story, error) {
	stories, err := c.ListStories()
	if err != nil {
		return nil, err
	}
	for _, s := range stories {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, nil
}

// Create a new story.
// API endpoint: POST /spaces/{space_id}/stories
func (c *StoryblokClient) CreateStory(story Story, publish bool) (Story, error) {
	story.ID = 0

	var res storyResponse
	_, err := c.do(http.MethodPost, "/stories", nil, newStoryRequest(story, publish), &res)
	if err != nil {
		return Story{}, fmt.Errorf("failed to create story '%s': %w", story.Slug, err)
	}
	return res.Story, nil
}

// Update an existing story.
// API endpoint: PUT /spaces/{space_id}/stories/{story_id}
func (c *StoryblokClient) UpdateStory(story Story, publish bool) error {
	if story.ID == 0 {
		return fmt.Errorf("story ID must be set to update a story")
	}

	_, err := c.do(http.MethodPut, fmt.Sprintf("/stories/%d", story.ID), nil, newStoryRequest(story, publish), nil)
	if err != nil {
		return fmt.Errorf("failed to update story '%s': %w", story.Slug, err)
	}
	return nil
}

// Update the story with the same slug or create a new one.
// Returns the ID of the story.
func (c *StoryblokClient) UpsertStory(story Story, publish bool) (int64, error) {
	existing, err := c.FindStoryBySlug(story.Slug)
	if err != nil {
		return 0, err
	}

	if existing != nil {
		story.ID = existing.ID
		err = c.UpdateStory(story, publish)
		if err != nil {
			return 0, err
		}
		slog.Info("Updated existing story", slog.String("name", story.Name), slog.Int64("id", story.ID))
		return story.ID, nil
	}

	created, err := c.CreateStory(story, publish)
	if err != nil {
		return 0, err
	}
	slog.Info("Created new story", slog.String("name", story.Name), slog.Int64("id", created.ID))
	return created.ID, nil
}

func newStoryRequest(story Story, publish bool) storyRequest {
	req := storyRequest{Story: story}
	// The id is part of the path, not the body
	req.Story.ID = 0
	if publish {
		req.Publish = 1
	}
	return req
}
