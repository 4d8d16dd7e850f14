// Package board owns the canonical kanban state: the board collection, the
// active-board selection and the current theme. It is the only sanctioned
// mutation path and writes every change through to durable storage before
// returning.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kanban/internal/catalog"
	"kanban/internal/models"
	"kanban/internal/storage"
)

// Options configures a Store.
type Options struct {
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	// Now overrides the clock used for creation timestamps.
	Now func() time.Time
}

// ItemInput carries the fields of a work item to be created. Label and
// Assignee are catalog references (id or name); empty selects the first entry.
type ItemInput struct {
	Title       string
	Description string
	Label       string
	Assignee    string
}

// Snapshot is a consistent copy of all readable state.
type Snapshot struct {
	Boards      []models.Board `json:"boards"`
	ActiveIndex int            `json:"active_index"`
	Theme       models.Theme   `json:"theme"`
	Revision    string         `json:"revision"`
}

// Store holds the board collection and mediates every mutation of it.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	catalog *catalog.Catalog
	logger  *slog.Logger
	now     func() time.Time

	boards []models.Board
	active int
	theme  models.Theme

	events broker
}

// Open loads state from st. An absent or unreadable board document yields an
// empty collection; an absent or unknown theme yields the catalog default.
func Open(ctx context.Context, st storage.Storage, opts Options) (*Store, error) {
	if st == nil {
		return nil, fmt.Errorf("storage is required")
	}
	s := &Store{
		storage: st,
		catalog: opts.Catalog,
		logger:  opts.Logger,
		now:     opts.Now,
		boards:  []models.Board{},
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if err := s.loadBoards(ctx); err != nil {
		return nil, err
	}
	if err := s.loadTheme(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadBoards(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, storage.KeyBoards)
	if errors.Is(err, storage.ErrCorrupt) {
		s.logger.Warn("stored boards are corrupt; starting empty", "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load boards: %w", err)
	}
	if !ok {
		return nil
	}
	boards, err := DecodeBoards(raw)
	if err != nil {
		s.logger.Warn("stored boards are unparsable; starting empty", "error", err)
		return nil
	}
	if err := checkUniqueIDs(boards); err != nil {
		s.logger.Warn("stored boards repeat an id; starting empty", "error", err)
		return nil
	}
	s.boards = boards
	s.logger.Debug("loaded boards", "count", len(boards))
	return nil
}

func (s *Store) loadTheme(ctx context.Context) error {
	s.theme = s.catalog.DefaultTheme()
	raw, ok, err := s.storage.Get(ctx, storage.KeyTheme)
	if errors.Is(err, storage.ErrCorrupt) {
		s.logger.Warn("stored theme is corrupt; using default", "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return nil
	}
	theme := models.Theme(strings.Trim(strings.TrimSpace(raw), `"`))
	if !s.catalog.HasTheme(theme) {
		s.logger.Warn("stored theme is not in catalog; using default", "theme", theme)
		return nil
	}
	s.theme = theme
	return nil
}

// Subscribe returns a channel of change events and a cancel func that closes it.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	return s.events.subscribe(buffer)
}

// Catalog returns the read-only catalog backing the store.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Store) Labels() []models.Label { return s.catalog.Labels() }

func (s *Store) Assignees() []models.Assignee { return s.catalog.Assignees() }

func (s *Store) Themes() []models.Theme { return s.catalog.Themes() }

// Boards returns a deep copy of the collection.
func (s *Store) Boards() []models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneBoards(s.boards)
}

// Board returns a copy of the board at index.
func (s *Store) Board(index int) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.boardAt(index)
	if err != nil {
		return models.Board{}, err
	}
	return b.Clone(), nil
}

func (s *Store) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ActiveBoard returns a copy of the selected board; ok is false when there are no boards.
func (s *Store) ActiveBoard() (models.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.boards) == 0 {
		return models.Board{}, false
	}
	return s.boards[s.active].Clone(), true
}

func (s *Store) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Snapshot returns all readable state at one instant.
func (s *Store) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	encoded, err := EncodeBoards(s.boards)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Boards:      models.CloneBoards(s.boards),
		ActiveIndex: s.active,
		Theme:       s.theme,
		Revision:    storage.Digest(encoded),
	}, nil
}

// Counts returns the number of boards and work items.
func (s *Store) Counts() (boards, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.boards {
		items += s.boards[i].ItemCount()
	}
	return len(s.boards), items
}

// SelectBoard sets the active board. Selection is not persisted.
func (s *Store) SelectBoard(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.boardAt(index)
	if err != nil {
		return err
	}
	s.active = index
	s.events.publish(Event{Kind: EventBoardSelected, BoardID: b.ID})
	return nil
}

// CreateBoard appends a new empty board. The active selection is left unchanged.
func (s *Store) CreateBoard(ctx context.Context, name string) (models.Board, error) {
	name, err := normalizeBoardName(name)
	if err != nil {
		return models.Board{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := GenerateID(s.boardIDExists)
	if err != nil {
		return models.Board{}, err
	}
	b := models.NewBoard(id, name)
	s.boards = append(s.boards, b)
	s.logger.Info("board created", "board_id", id, "name", name)

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventBoardCreated, BoardID: id, Stale: err != nil})
	return b.Clone(), err
}

// DeleteBoard removes the board at index and resets the selection to 0.
func (s *Store) DeleteBoard(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.boardAt(index)
	if err != nil {
		return err
	}
	id := b.ID
	s.boards = append(s.boards[:index], s.boards[index+1:]...)
	s.active = 0
	s.logger.Info("board deleted", "board_id", id)

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventBoardDeleted, BoardID: id, Stale: err != nil})
	return err
}

// AddWorkItem creates a work item in the todo column of the board at boardIndex.
func (s *Store) AddWorkItem(ctx context.Context, boardIndex int, in ItemInput) (models.WorkItem, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return models.WorkItem{}, err
	}
	description, err := normalizeDescription(in.Description)
	if err != nil {
		return models.WorkItem{}, err
	}
	label, err := s.resolveLabel(in.Label)
	if err != nil {
		return models.WorkItem{}, err
	}
	assignee, err := s.resolveAssignee(in.Assignee)
	if err != nil {
		return models.WorkItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.boardAt(boardIndex)
	if err != nil {
		return models.WorkItem{}, err
	}
	id, err := GenerateID(s.itemIDExists)
	if err != nil {
		return models.WorkItem{}, err
	}
	item := models.WorkItem{
		ID:          id,
		Label:       label,
		Title:       title,
		Description: description,
		Date:        s.now().Format(models.DateLayout),
		Assignee:    assignee,
	}
	b.Todos = append(b.Todos, item)
	s.logger.Info("work item added", "board_id", b.ID, "item_id", id)

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventItemAdded, BoardID: b.ID, ItemID: id, To: models.ColumnTodo, Stale: err != nil})
	return item, err
}

// DeleteWorkItem removes the item at itemIndex of the named column.
func (s *Store) DeleteWorkItem(ctx context.Context, boardIndex int, column models.ColumnKind, itemIndex int) error {
	if !models.IsValidColumnKind(column) {
		return notFound("column", column)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.boardAt(boardIndex)
	if err != nil {
		return err
	}
	items := b.Column(column)
	if itemIndex < 0 || itemIndex >= len(items) {
		return notFound("item", fmt.Sprintf("%s[%d]", column, itemIndex))
	}
	id := items[itemIndex].ID
	remaining := make([]models.WorkItem, 0, len(items)-1)
	remaining = append(remaining, items[:itemIndex]...)
	remaining = append(remaining, items[itemIndex+1:]...)
	b.SetColumn(column, remaining)
	s.logger.Info("work item deleted", "board_id", b.ID, "item_id", id, "column", column)

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventItemDeleted, BoardID: b.ID, ItemID: id, From: column, Stale: err != nil})
	return err
}

// MoveWorkItem transfers the item with itemID from one column to the end of
// another. Dropping onto the originating column is a no-op. The item is
// re-resolved from canonical state, so a stale reference fails with a
// NotFoundError and leaves the board unchanged.
func (s *Store) MoveWorkItem(ctx context.Context, boardIndex int, from, to models.ColumnKind, itemID string) error {
	if !models.IsValidColumnKind(from) {
		return notFound("column", from)
	}
	if !models.IsValidColumnKind(to) {
		return notFound("column", to)
	}
	if from == to {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.boardAt(boardIndex)
	if err != nil {
		return err
	}
	origin := b.Column(from)
	var (
		item  models.WorkItem
		found bool
	)
	for _, candidate := range origin {
		if candidate.ID == itemID {
			item, found = candidate, true
			break
		}
	}
	if !found {
		return notFound("item", itemID)
	}

	// Build both columns before assigning either so the move is all-or-nothing.
	remaining := make([]models.WorkItem, 0, len(origin))
	for _, candidate := range origin {
		if candidate.ID != itemID {
			remaining = append(remaining, candidate)
		}
	}
	dest := b.Column(to)
	moved := make([]models.WorkItem, 0, len(dest)+1)
	moved = append(moved, dest...)
	moved = append(moved, item)

	b.SetColumn(from, remaining)
	b.SetColumn(to, moved)
	s.logger.Info("work item moved", "board_id", b.ID, "item_id", itemID, "from", from, "to", to)

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventItemMoved, BoardID: b.ID, ItemID: itemID, From: from, To: to, Stale: err != nil})
	return err
}

// SetTheme changes the current theme and persists it on its own key.
func (s *Store) SetTheme(ctx context.Context, theme models.Theme) error {
	theme = models.Theme(strings.TrimSpace(string(theme)))
	if !s.catalog.HasTheme(theme) {
		return invalid("theme", "unknown theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	var err error
	if werr := s.storage.Set(ctx, storage.KeyTheme, string(theme)); werr != nil {
		err = &PersistenceError{Key: storage.KeyTheme, Err: werr}
		s.logger.Error("persist theme", "error", werr)
	}
	s.events.publish(Event{Kind: EventThemeChanged, Theme: theme, Stale: err != nil})
	return err
}

// ReplaceBoards swaps in a whole collection after validating it, resetting the
// selection to 0. Boards or items without ids receive fresh ones.
func (s *Store) ReplaceBoards(ctx context.Context, boards []models.Board) error {
	validated, err := validateCollection(boards)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards = validated
	s.active = 0
	s.logger.Info("boards replaced", "count", len(validated))

	err = s.persistBoards(ctx)
	s.events.publish(Event{Kind: EventBoardsReplaced, Stale: err != nil})
	return err
}

// boardAt returns a pointer into the collection. Callers must hold s.mu.
func (s *Store) boardAt(index int) (*models.Board, error) {
	if index < 0 || index >= len(s.boards) {
		return nil, notFound("board", index)
	}
	return &s.boards[index], nil
}

func (s *Store) boardIDExists(id string) bool {
	for i := range s.boards {
		if s.boards[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) itemIDExists(id string) bool {
	for i := range s.boards {
		if _, _, ok := s.boards[i].FindItem(id); ok {
			return true
		}
	}
	return false
}

func (s *Store) resolveLabel(ref string) (models.Label, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		labels := s.catalog.Labels()
		if len(labels) == 0 {
			return models.Label{}, invalid("label", "no labels are available")
		}
		return labels[0], nil
	}
	label, ok := s.catalog.Label(ref)
	if !ok {
		return models.Label{}, invalid("label", "unknown label %q", ref)
	}
	return label, nil
}

func (s *Store) resolveAssignee(ref string) (models.Assignee, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		assignees := s.catalog.Assignees()
		if len(assignees) == 0 {
			return models.Assignee{}, invalid("assignee", "no assignees are available")
		}
		return assignees[0], nil
	}
	assignee, ok := s.catalog.Assignee(ref)
	if !ok {
		return models.Assignee{}, invalid("assignee", "unknown assignee %q", ref)
	}
	return assignee, nil
}

// persistBoards writes the full collection. Callers must hold s.mu.
func (s *Store) persistBoards(ctx context.Context) error {
	encoded, err := EncodeBoards(s.boards)
	if err != nil {
		return &PersistenceError{Key: storage.KeyBoards, Err: err}
	}
	if err := s.storage.Set(ctx, storage.KeyBoards, encoded); err != nil {
		s.logger.Error("persist boards", "error", err)
		return &PersistenceError{Key: storage.KeyBoards, Err: err}
	}
	return nil
}
