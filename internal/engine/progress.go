package engine

import "math"

// Progress returns the completion percentage of the given tasks, 0-100.
// An empty list is 0%. Fractions round half up (math.Round), so one of three
// completed tasks reports 33 and two of three report 67.
func Progress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}
