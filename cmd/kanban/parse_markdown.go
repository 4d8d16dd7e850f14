package main

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"kanban/internal/api"
)

var listItemRegex = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)

// itemSeparator splits a list entry into title and description.
const itemSeparator = " | "

// taskFrontMatter holds defaults shared by every list entry of a task file.
type taskFrontMatter struct {
	Board       *int   `yaml:"board"`
	Label       string `yaml:"label"`
	Assignee    string `yaml:"assignee"`
	Description string `yaml:"description"`
}

func parseMarkdown(input string) (taskFrontMatter, []string, error) {
	var frontMatter taskFrontMatter
	content := input

	lines := strings.Split(input, "\n")
	if len(lines) >= 3 && strings.TrimSpace(lines[0]) == "---" {
		end := -1
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				end = i
				break
			}
		}
		if end == -1 {
			return taskFrontMatter{}, nil, fmt.Errorf("front matter not closed")
		}
		frontText := strings.Join(lines[1:end], "\n")
		if err := yaml.Unmarshal([]byte(frontText), &frontMatter); err != nil {
			return taskFrontMatter{}, nil, fmt.Errorf("front matter: %w", err)
		}
		content = strings.Join(lines[end+1:], "\n")
	}

	items := []string{}
	for _, line := range strings.Split(content, "\n") {
		match := listItemRegex.FindStringSubmatch(line)
		if len(match) == 2 {
			item := strings.TrimSpace(match[1])
			if item != "" {
				items = append(items, item)
			}
		}
	}

	return frontMatter, items, nil
}

// itemRequests turns list entries into create requests. An entry of the form
// "title | description" overrides the shared description.
func itemRequests(frontMatter taskFrontMatter, items []string) []api.ItemCreateRequest {
	out := make([]api.ItemCreateRequest, 0, len(items))
	for _, item := range items {
		req := api.ItemCreateRequest{
			Title:       item,
			Description: frontMatter.Description,
			LabelID:     frontMatter.Label,
			AssigneeID:  frontMatter.Assignee,
		}
		if title, description, ok := strings.Cut(item, itemSeparator); ok {
			req.Title = strings.TrimSpace(title)
			req.Description = strings.TrimSpace(description)
		}
		out = append(out, req)
	}
	return out
}
