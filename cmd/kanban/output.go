package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"kanban/internal/api"
	"kanban/internal/format"
	"kanban/internal/models"
)

const (
	columnWidth   = 36
	shortIDLength = 8
)

var outputFormatter format.Formatter = format.JSONFormatter{}

var columnStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Width(columnWidth).
	Padding(0, 1)

var (
	columnTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	itemTitleStyle   = lipgloss.NewStyle().Bold(true)
	itemMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boardNameStyle   = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
)

var columnTitles = map[models.ColumnKind]string{
	models.ColumnTodo:       "To Do",
	models.ColumnInProgress: "In Progress",
	models.ColumnReview:     "Review",
	models.ColumnDone:       "Done",
}

var labelColors = map[string]lipgloss.Color{
	"red":   lipgloss.Color("#e5484d"),
	"brown": lipgloss.Color("#a18072"),
	"green": lipgloss.Color("#30a46c"),
}

func writeJSON(payload any) error {
	return outputFormatter.Write(os.Stdout, payload)
}

func writePlain(format string, args ...any) error {
	_, err := fmt.Fprintf(os.Stdout, format, args...)
	return err
}

func writeBoardList(boards []api.BoardSummary) error {
	if len(boards) == 0 {
		return writePlain("no boards; create one with: kanban board create <name>\n")
	}
	for _, b := range boards {
		if err := writePlain("%s\n", formatBoardLine(b)); err != nil {
			return err
		}
	}
	return nil
}

func formatBoardLine(b api.BoardSummary) string {
	marker := " "
	if b.Active {
		marker = "*"
	}
	counts := make([]string, 0, len(b.Columns))
	for _, kind := range models.ColumnKinds() {
		counts = append(counts, fmt.Sprintf("%s %d", kind, b.Columns[string(kind)]))
	}
	return fmt.Sprintf("%s %d  %s  [%s]  %s", marker, b.Index, b.Name, strings.Join(counts, ", "),
		english.Plural(b.Items, "item", ""))
}

// renderBoard lays the four columns out side by side.
func renderBoard(b models.Board, now time.Time) string {
	columns := make([]string, 0, len(models.ColumnKinds()))
	for _, kind := range models.ColumnKinds() {
		columns = append(columns, renderColumn(kind, b.Column(kind), now))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		boardNameStyle.Render(b.Name),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

func renderColumn(kind models.ColumnKind, items []models.WorkItem, now time.Time) string {
	parts := []string{columnTitleStyle.Render(fmt.Sprintf("%s (%d)", columnTitles[kind], len(items)))}
	for i, item := range items {
		parts = append(parts, renderItem(i, item, now))
	}
	return columnStyle.Render(strings.Join(parts, "\n"))
}

func renderItem(index int, item models.WorkItem, now time.Time) string {
	labelStyle := lipgloss.NewStyle()
	if color, ok := labelColors[item.Label.ColorCode]; ok {
		labelStyle = labelStyle.Foreground(color)
	}
	title := itemTitleStyle.Render(truncate(fmt.Sprintf("%d. %s", index, item.Title), columnWidth-4))
	meta := itemMetaStyle.Render(fmt.Sprintf("%s · %s · %s", shortID(item.ID), item.Assignee.Name, itemAge(item.Date, now)))
	return strings.Join([]string{title, labelStyle.Render(item.Label.Name), meta}, "\n")
}

// itemAge renders a creation date relative to now, or the raw text when it
// does not use the display layout.
func itemAge(date string, now time.Time) string {
	created, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return date
	}
	return humanize.RelTime(created, now, "ago", "from now")
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func writeItemDetail(boardIndex int, column string, item models.WorkItem) error {
	lines := []string{
		fmt.Sprintf("id: %s", item.ID),
		fmt.Sprintf("board: %d", boardIndex),
		fmt.Sprintf("column: %s", column),
		fmt.Sprintf("title: %s", item.Title),
		fmt.Sprintf("description: %s", item.Description),
		fmt.Sprintf("label: %s", item.Label.Name),
		fmt.Sprintf("assignee: %s", item.Assignee.Name),
		fmt.Sprintf("date: %s", item.Date),
	}
	return writePlain("%s\n", strings.Join(lines, "\n"))
}

func formatFileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}
