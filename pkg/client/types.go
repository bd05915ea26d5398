package client

// Component is a content type (schema) of a storyblok space
type Component struct {
	ID         int64            `json:"id,omitempty"`
	Name       string           `json:"name"`
	Schema     map[string]Field `json:"schema,omitempty"`
	IsNestable bool             `json:"is_nestable"`
}

// Field is a single entry of a component schema
type Field struct {
	Type               string   `json:"type"`
	DisplayName        string   `json:"display_name,omitempty"`
	Options            []Option `json:"options,omitempty"`
	Multiple           bool     `json:"multiple,omitempty"`
	RestrictComponents bool     `json:"restrict_components,omitempty"`
	ComponentWhitelist []string `json:"component_whitelist,omitempty"`
}

type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Folder struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Story is a content entry of a storyblok space
type Story struct {
	ID          int64          `json:"id,omitempty"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	FullSlug    string         `json:"full_slug,omitempty"`
	Content     map[string]any `json:"content,omitempty"`
	ContentType string         `json:"content_type,omitempty"`
	ParentID    int64          `json:"parent_id,omitempty"`
	IsStartpage bool           `json:"is_startpage"`
}

type componentRequest struct {
	Component Component `json:"component"`
}

type componentResponse struct {
	Component Component `json:"component"`
}

type componentsResponse struct {
	Components []Component `json:"components"`
}

type folderRequest struct {
	Folder Folder `json:"folder"`
}

type folderResponse struct {
	Folder Folder `json:"folder"`
}

type foldersResponse struct {
	Folders []Folder `json:"folders"`
}

type storyRequest struct {
	Story   Story `json:"story"`
	Publish int   `json:"publish,omitempty"`
}

type storyResponse struct {
	Story Story `json:"story"`
}

type storiesResponse struct {
	Stories []Story `json:"stories"`
}
