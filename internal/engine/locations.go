package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"daymark/internal/storage"
)

// timestampLayout is the display timestamp written on location creation.
const timestampLayout = "Jan 2, 2006 3:04:05 PM"

// LocationRepo owns the in-memory ordered location collection for one
// identity. New locations go to the front (most recent first).
type LocationRepo struct {
	store  *storage.Store
	key    string
	items  []Location
	nextID int64
	now    func() time.Time
}

// NewLocationRepo loads the identity's locations from the store. A corrupt
// payload is recovered by starting from an empty collection.
func NewLocationRepo(ctx context.Context, store *storage.Store, identity string) (*LocationRepo, error) {
	r := &LocationRepo{
		store: store,
		key:   storage.LocationKey(identity),
		items: []Location{},
		now:   time.Now,
	}

	raw, ok, err := store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []Location
		if err := json.Unmarshal(raw, &items); err != nil {
			log.WithField("key", r.key).Warnf("corrupt location collection, starting empty: %v", err)
		} else {
			r.items = items
		}
	}

	r.nextID = 1
	for _, l := range r.items {
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
	}
	return r, nil
}

// Create inserts a new location at the front of the collection and persists.
// The name must be non-empty after trimming; coords may carry a sentinel from
// a failed detection.
func (r *LocationRepo) Create(ctx context.Context, name, coords string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, ValidationError{Field: "name"}
	}

	l := Location{
		ID:        r.newID(),
		Name:      name,
		Coords:    coords,
		Timestamp: r.now().Format(timestampLayout),
	}
	r.items = append([]Location{l}, r.items...)
	if err := r.persist(ctx); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Delete removes the matching location and persists unconditionally.
func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	kept := r.items[:0]
	for _, l := range r.items {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	r.items = kept
	return r.persist(ctx)
}

// List returns a copy of the collection, most recent first.
func (r *LocationRepo) List() []Location {
	out := make([]Location, len(r.items))
	copy(out, r.items)
	return out
}

func (r *LocationRepo) newID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *LocationRepo) persist(ctx context.Context) error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("marshal locations: %w", err)
	}
	return r.store.Put(ctx, r.key, data)
}
