package models

// Label is a priority tag applied to a work item.
type Label struct {
	ID        string `json:"id" yaml:"id"`
	ColorCode string `json:"colorCode" yaml:"colorCode"`
	Name      string `json:"name" yaml:"name"`
}

// Assignee is a person a work item is attributed to.
type Assignee struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// Theme is a named presentation theme.
type Theme string
