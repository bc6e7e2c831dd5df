package storage

// Fixed keys shared by every account.
const (
	KeyRegisteredUsers = "registeredUsers"
	KeyLoggedIn        = "isLoggedIn"
	KeyUserEmail       = "userEmail"
)

// TaskKey returns the per-identity key holding the task collection, e.g.
// "tasks_jo@example.com". Distinct identities map to distinct keys as long
// as the identity strings themselves are distinct.
func TaskKey(identity string) string {
	return "tasks_" + identity
}

// LocationKey returns the per-identity key holding the location collection.
func LocationKey(identity string) string {
	return "locations_" + identity
}
