// Package store implements the in-memory task list state machine and its
// synchronization with the persisted blob.
package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
)

// StorageKey identifies the task-list blob in the blob store. Stable
// across app versions; changing it orphans existing data.
const StorageKey = "todo-list"

// TaskStore owns the authoritative ordered task collection and the draft
// record being composed or edited. All mutations run synchronously on the
// calling goroutine and end by persisting the whole collection.
//
// There is exactly one logical writer, so the store carries no locking;
// concurrent use from multiple goroutines is not supported.
type TaskStore struct {
	blobs   domain.BlobStore
	clock   domain.Clock
	confirm domain.Confirmer
	logger  domain.Logger
	tasks   []domain.Task
	draft   domain.Task
}

// New creates a TaskStore with an empty collection and a fresh draft.
// logger may be nil.
func New(blobs domain.BlobStore, clock domain.Clock, confirm domain.Confirmer, logger domain.Logger) *TaskStore {
	return &TaskStore{
		blobs:   blobs,
		clock:   clock,
		confirm: confirm,
		logger:  logger,
		draft:   domain.NewDraft(clock.Now()),
	}
}

// Load initializes the collection from the persisted blob. An absent blob
// yields an empty collection. A malformed blob also yields an empty
// collection rather than preventing startup; the parse failure is logged.
// Only a storage read failure is returned as an error.
func (s *TaskStore) Load() error {
	blob, ok, err := s.blobs.Load(StorageKey)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if !ok {
		s.tasks = nil
		return nil
	}
	tasks, err := DecodeTasks(blob)
	if err != nil {
		s.warn("store", fmt.Sprintf("discarding unreadable blob: %v", err))
		s.tasks = nil
		return nil
	}
	s.tasks = tasks
	return nil
}

// Tasks returns a snapshot copy of the collection in stored (insertion)
// order. Callers may not reach the stored records through it.
func (s *TaskStore) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id int) (domain.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), true
	}
	return domain.Task{}, false
}

// Draft returns a copy of the current draft.
func (s *TaskStore) Draft() domain.Task {
	return s.draft.Clone()
}

// SetDraftText sets the text of the draft being composed or edited.
func (s *TaskStore) SetDraftText(text string) {
	s.draft.Text = text
}

// SetDraftStatus sets the status of the draft being composed or edited.
func (s *TaskStore) SetDraftStatus(status domain.Status) {
	s.draft.Status = status
}

// Add validates the draft and appends it to the collection as a new task.
// A draft whose text trims to empty is a silent no-op; callers wanting
// a visible error validate first.
func (s *TaskStore) Add() error {
	text := strings.TrimSpace(s.draft.Text)
	if text == "" {
		return nil
	}

	now := s.clock.Now()
	task := s.draft.Clone()
	task.Text = text
	task.CreatedDate = now
	task.ID = s.nextID(now)
	s.tasks = append(s.tasks, task)

	err := s.persist()
	s.resetDraft()
	s.info("store", fmt.Sprintf("added task #%d", task.ID))
	return err
}

// StartEdit places a structural copy of the stored task into the draft.
// The stored collection is never touched; in-progress edits stay
// invisible until Update commits them.
func (s *TaskStore) StartEdit(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.draft = s.tasks[i].Clone()
	return nil
}

// Update commits the draft over the stored task with the same id via
// full-record replacement. An empty draft text is a silent no-op. If the
// id is no longer present the collection is left unchanged; the draft is
// still reset and the blob still written.
func (s *TaskStore) Update() error {
	text := strings.TrimSpace(s.draft.Text)
	if text == "" {
		return nil
	}

	if i := s.indexOf(s.draft.ID); i >= 0 {
		updated := s.draft.Clone()
		updated.Text = text
		s.tasks[i] = updated
	}

	err := s.persist()
	id := s.draft.ID
	s.resetDraft()
	s.info("store", fmt.Sprintf("updated task #%d", id))
	return err
}

// CancelEdit discards the draft. The collection is untouched and nothing
// is persisted since no data changed.
func (s *TaskStore) CancelEdit() {
	s.resetDraft()
}

// Delete removes the task with the given id after confirmation. A "no"
// answer makes the whole operation a no-op. The id is captured before the
// prompt, so a confirmer that changes the draft while waiting cannot
// redirect the draft reset. Returns whether a task was removed.
func (s *TaskStore) Delete(id int) (bool, error) {
	if !s.confirm.Confirm("Are you sure you want to delete this task?") {
		return false, nil
	}

	removed := false
	if i := s.indexOf(id); i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
		removed = true
	}

	err := s.persist()
	if s.draft.ID == id {
		// The task being edited no longer exists; drop back to add mode.
		s.resetDraft()
	}
	if removed {
		s.info("store", fmt.Sprintf("deleted task #%d", id))
	}
	return removed, err
}

// Toggle flips completion of the task with the given id. A missing id is
// a silent no-op. The entry is replaced by a copy with only the status
// changed; every other field is preserved verbatim.
func (s *TaskStore) Toggle(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	updated := s.tasks[i].Clone()
	updated.Status = updated.Status.Toggle()
	s.tasks[i] = updated
	return s.persist()
}

// ClearCompleted removes every completed task after confirmation.
// Returns the number of tasks removed (0 when the prompt is declined).
func (s *TaskStore) ClearCompleted() (int, error) {
	if !s.confirm.Confirm("Delete all completed tasks?") {
		return 0, nil
	}

	kept := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Status != domain.StatusCompleted {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept

	err := s.persist()
	if removed > 0 {
		s.info("store", fmt.Sprintf("cleared %d completed task(s)", removed))
	}
	return removed, err
}

// CompletedCount returns the number of completed tasks.
func (s *TaskStore) CompletedCount() int {
	return s.countByStatus(domain.StatusCompleted)
}

// PendingCount returns the number of pending tasks. In Progress tasks
// count toward neither total.
func (s *TaskStore) PendingCount() int {
	return s.countByStatus(domain.StatusPending)
}

func (s *TaskStore) countByStatus(status domain.Status) int {
	n := 0
	for _, t := range s.tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

func (s *TaskStore) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}

// nextID derives a new id from the historical formula, then bumps it past
// any collision with the current collection. The formula alone can repeat
// when the count and the millisecond bucket both match.
func (s *TaskStore) nextID(now time.Time) int {
	id := domain.LegacyTaskID(len(s.tasks), now)
	for s.indexOf(id) >= 0 {
		id++
	}
	return id
}

// persist writes the whole collection to the blob store. A write failure
// does not roll back the in-memory mutation; memory and disk may diverge
// until the next successful write, and the error is surfaced to the
// caller instead of being swallowed.
func (s *TaskStore) persist() error {
	blob, err := EncodeTasks(s.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.blobs.Save(StorageKey, blob); err != nil {
		s.error("store", fmt.Sprintf("save failed: %v", err))
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (s *TaskStore) resetDraft() {
	s.draft = domain.NewDraft(s.clock.Now())
}

func (s *TaskStore) info(category, msg string) {
	if s.logger != nil {
		s.logger.Info(category, msg)
	}
}

func (s *TaskStore) warn(category, msg string) {
	if s.logger != nil {
		s.logger.Warn(category, msg)
	}
}

func (s *TaskStore) error(category, msg string) {
	if s.logger != nil {
		s.logger.Error(category, msg)
	}
}
