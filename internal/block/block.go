// Package block defines the Block entity: the record of one executed command,
// its captured output, terminal status, and execution metadata.
//
// A Block is created when a command starts (status=running), finalized exactly
// once when the executor reports stdout/stderr/exit code, and is immutable
// afterwards except for bookmark toggling and duration/branch metadata.
package block

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyFinalized is returned when Finalize or Cancel is called on a block
// whose status is already terminal. Terminal state never changes.
var ErrAlreadyFinalized = errors.New("block already finalized")

// Output holds the captured streams and exit code of a finished command.
// ExitCode is nil while the command is running and for cancelled commands.
type Output struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode *int   `json:"exit_code"`
}

// Metadata holds execution context recorded alongside the command.
type Metadata struct {
	// DurationMS is the wall-clock runtime measured by the executor.
	DurationMS uint64 `json:"duration_ms"`

	// Timestamp is the block creation time in seconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`

	// Directory is the working directory at execution time.
	Directory string `json:"directory"`

	// GitBranch is the branch checked out at execution time, if any.
	GitBranch string `json:"git_branch,omitempty"`

	// Bookmarked marks the block for retrieval via the bookmarked listing.
	Bookmarked bool `json:"bookmarked"`
}

// Block is the record of one executed command and its outcome.
type Block struct {
	// ID is a UUID assigned at creation, unique for the process lifetime.
	ID string `json:"id"`

	// Command is the literal text that was executed.
	Command string `json:"command"`

	Output Output `json:"output"`

	Status Status `json:"status"`

	// FailureReason is set only when Status is StatusFailed and embeds the
	// numeric exit code ("Exit code: 101").
	FailureReason string `json:"failure_reason,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// New creates a block for a command that just started executing.
// The block starts with status=running, empty output, and no bookmark.
func New(command, directory string) *Block {
	return &Block{
		ID:      uuid.NewString(),
		Command: command,
		Status:  StatusRunning,
		Metadata: Metadata{
			Timestamp: time.Now().Unix(),
			Directory: directory,
		},
	}
}

// Finalize records the command's output and derives the terminal status from
// the exit code: zero means success, anything else means failure with the
// code embedded in FailureReason. The duration is measured by the caller.
//
// Finalize may be called at most once; a second call (or a call after Cancel)
// returns ErrAlreadyFinalized and leaves the block unchanged.
func (b *Block) Finalize(stdout, stderr string, exitCode int, duration time.Duration) error {
	if b.Status.Terminal() {
		return ErrAlreadyFinalized
	}

	code := exitCode
	b.Output = Output{
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: &code,
	}
	b.Metadata.DurationMS = uint64(duration.Milliseconds())

	if exitCode == 0 {
		b.Status = StatusSuccess
	} else {
		b.Status = StatusFailed
		b.FailureReason = fmt.Sprintf("Exit code: %d", exitCode)
	}
	return nil
}

// Cancel marks a running block as cancelled. Cancelled blocks carry no exit
// code. Returns ErrAlreadyFinalized if the block is already terminal.
func (b *Block) Cancel() error {
	if b.Status.Terminal() {
		return ErrAlreadyFinalized
	}
	b.Status = StatusCancelled
	return nil
}

// SetGitBranch records the git branch the command ran on.
func (b *Block) SetGitBranch(branch string) {
	b.Metadata.GitBranch = branch
}

// FullOutput returns stdout followed by stderr, separated by a newline when
// both are non-empty.
func (b *Block) FullOutput() string {
	out := b.Output.Stdout
	if b.Output.Stderr != "" {
		if out != "" {
			out += "\n"
		}
		out += b.Output.Stderr
	}
	return out
}

// ToggleBookmark flips the bookmark flag. Valid in any status.
func (b *Block) ToggleBookmark() {
	b.Metadata.Bookmarked = !b.Metadata.Bookmarked
}

// IsBookmarked reports whether the block is bookmarked.
func (b *Block) IsBookmarked() bool {
	return b.Metadata.Bookmarked
}

// StatusLabel returns the status tag for display and export, including the
// failure reason for failed blocks ("Failed (Exit code: 101)").
func (b *Block) StatusLabel() string {
	if b.Status == StatusFailed && b.FailureReason != "" {
		return fmt.Sprintf("%s (%s)", b.Status, b.FailureReason)
	}
	return b.Status.String()
}
