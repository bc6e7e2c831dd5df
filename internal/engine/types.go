package engine

// Task is a dated to-do item. The JSON field names are the persisted wire
// format and must not change.
type Task struct {
	ID          int64  `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	Completed   bool   `json:"completed"`
}

// Location is a saved place. Coords is either "lat, lng" formatted to five
// decimal places or a sentinel string captured from a failed detection.
type Location struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Coords    string `json:"coords"`
	Timestamp string `json:"timestamp"`
}

// Account pairs an identity with its credential. Stored in plaintext: the
// account layer namespaces data per user and is not a security boundary.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
