package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"daymark/internal/storage"
)

// TaskRepo owns the in-memory ordered task collection for one identity and
// persists it wholesale after every mutation.
type TaskRepo struct {
	store  *storage.Store
	key    string
	items  []Task
	nextID int64
}

// NewTaskRepo loads the identity's tasks from the store. A corrupt payload is
// recovered by starting from an empty collection.
func NewTaskRepo(ctx context.Context, store *storage.Store, identity string) (*TaskRepo, error) {
	r := &TaskRepo{
		store: store,
		key:   storage.TaskKey(identity),
		items: []Task{},
	}

	raw, ok, err := store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []Task
		if err := json.Unmarshal(raw, &items); err != nil {
			log.WithField("key", r.key).Warnf("corrupt task collection, starting empty: %v", err)
		} else {
			r.items = items
		}
	}

	r.nextID = 1
	for _, t := range r.items {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r, nil
}

// Create appends a new incomplete task and persists. The summary must be
// non-empty after trimming; description and dueDate may be empty.
func (r *TaskRepo) Create(ctx context.Context, summary, description, dueDate string) (Task, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return Task{}, ValidationError{Field: "summary"}
	}

	t := Task{
		ID:          r.newID(),
		Summary:     summary,
		Description: description,
		DueDate:     dueDate,
		Completed:   false,
	}
	r.items = append(r.items, t)
	if err := r.persist(ctx); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Toggle flips the completed flag of the matching task and persists.
// An unknown id is a silent no-op: found is false and nothing is written.
func (r *TaskRepo) Toggle(ctx context.Context, id int64) (Task, bool, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Completed = !r.items[i].Completed
			if err := r.persist(ctx); err != nil {
				return Task{}, false, err
			}
			return r.items[i], true, nil
		}
	}
	return Task{}, false, nil
}

// Delete removes the matching task. It persists whether or not a match was
// found, so deleting twice is harmless.
func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	kept := r.items[:0]
	for _, t := range r.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.items = kept
	return r.persist(ctx)
}

// List returns a copy of the collection in insertion order.
func (r *TaskRepo) List() []Task {
	out := make([]Task, len(r.items))
	copy(out, r.items)
	return out
}

// Pending returns the incomplete tasks, preserving insertion order.
func (r *TaskRepo) Pending() []Task {
	var out []Task
	for _, t := range r.items {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the completed tasks, preserving insertion order.
func (r *TaskRepo) Completed() []Task {
	var out []Task
	for _, t := range r.items {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func (r *TaskRepo) newID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *TaskRepo) persist(ctx context.Context) error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return r.store.Put(ctx, r.key, data)
}
