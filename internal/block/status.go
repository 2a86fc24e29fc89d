package block

// Status represents the block lifecycle state. It is a closed set: a block is
// running until it reaches exactly one of the three terminal states.
type Status string

const (
	// StatusRunning means the command is still executing.
	StatusRunning Status = "running"
	// StatusSuccess means the command exited with code 0.
	StatusSuccess Status = "success"
	// StatusFailed means the command exited with a non-zero code.
	StatusFailed Status = "failed"
	// StatusCancelled means the executor cancelled the command before it
	// produced an exit code.
	StatusCancelled Status = "cancelled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the status is one of the end states. Once a block
// is terminal its status and exit code never change.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusCancelled:
		return true
	}
	return false
}
