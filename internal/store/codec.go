package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
)

// Record is the wire form of a task in the persisted blob. The field
// names and the status literals are a compatibility contract with blobs
// written by earlier versions of the app, so they must not change.
type Record struct {
	ID          int    `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	CreatedDate string `json:"createdDate" yaml:"createdDate"`
	Status      string `json:"status" yaml:"status"`
}

// RecordsFromTasks converts tasks to their wire form. Timestamps are
// normalized to UTC so the encoded value round-trips exactly.
func RecordsFromTasks(tasks []domain.Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Record{
			ID:          t.ID,
			Text:        t.Text,
			CreatedDate: t.CreatedDate.UTC().Format(time.RFC3339Nano),
			Status:      string(t.Status),
		})
	}
	return records
}

// TasksFromRecords converts wire records back into tasks. The serialized
// createdDate is a plain string and must be re-hydrated into a timestamp
// here; skipping this step is a bug, not an optimization.
func TasksFromRecords(records []Record) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(records))
	for i, r := range records {
		created, err := time.Parse(time.RFC3339Nano, r.CreatedDate)
		if err != nil {
			return nil, fmt.Errorf("task %d: invalid createdDate %q: %w", i, r.CreatedDate, err)
		}
		status := domain.Status(r.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("task %d: invalid status %q: %w", i, r.Status, domain.ErrInvalidStatus)
		}
		tasks = append(tasks, domain.Task{
			ID:          r.ID,
			Text:        r.Text,
			CreatedDate: created.UTC(),
			Status:      status,
		})
	}
	return tasks, nil
}

// EncodeTasks serializes the collection into the persisted blob form.
func EncodeTasks(tasks []domain.Task) ([]byte, error) {
	blob, err := json.MarshalIndent(RecordsFromTasks(tasks), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return blob, nil
}

// DecodeTasks parses a persisted blob into the task collection.
func DecodeTasks(blob []byte) ([]domain.Task, error) {
	var records []Record
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("parse tasks blob: %w", err)
	}
	return TasksFromRecords(records)
}
