package progression

// Module progression statuses
const (
	StatusLocked     = "LOCKED"
	StatusUnlocked   = "UNLOCKED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// CanStart reports whether a module in the given status accepts new activity.
func CanStart(status string) bool {
	return status == StatusUnlocked || status == StatusInProgress
}

// IsTerminal reports whether the status ends the attempt cycle. FAILED can only
// be left through an administrative retake grant.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// NextStatus resolves the status transition after an evaluation. attemptsLeft is
// the number of attempts remaining after the one just consumed.
func NextStatus(current string, eligible bool, attemptsLeft int) string {
	if current != StatusInProgress && current != StatusUnlocked {
		return current
	}
	if eligible {
		return StatusCompleted
	}
	if attemptsLeft <= 0 {
		return StatusFailed
	}
	return StatusInProgress
}
