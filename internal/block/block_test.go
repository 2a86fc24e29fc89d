package block

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	before := time.Now().Unix()
	b := New("ls -la", "/home/dev")
	after := time.Now().Unix()

	if b.ID == "" {
		t.Fatal("expected non-empty ID")
	}
	if b.Command != "ls -la" {
		t.Errorf("Command = %q, want %q", b.Command, "ls -la")
	}
	if b.Metadata.Directory != "/home/dev" {
		t.Errorf("Directory = %q, want %q", b.Metadata.Directory, "/home/dev")
	}
	if b.Status != StatusRunning {
		t.Errorf("Status = %q, want %q", b.Status, StatusRunning)
	}
	if b.Output.ExitCode != nil {
		t.Errorf("ExitCode = %v, want nil before finalize", *b.Output.ExitCode)
	}
	if b.IsBookmarked() {
		t.Error("new block should not be bookmarked")
	}
	if b.Metadata.Timestamp < before || b.Metadata.Timestamp > after {
		t.Errorf("Timestamp = %d, want within [%d, %d]", b.Metadata.Timestamp, before, after)
	}
}

func TestNewUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := New("echo hi", "/")
		if seen[b.ID] {
			t.Fatalf("duplicate ID %s", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestFinalizeSuccess(t *testing.T) {
	b := New("echo hi", "/")
	err := b.Finalize("hi\n", "", 0, 12*time.Millisecond)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if b.Status != StatusSuccess {
		t.Errorf("Status = %q, want %q", b.Status, StatusSuccess)
	}
	if b.Output.ExitCode == nil || *b.Output.ExitCode != 0 {
		t.Errorf("ExitCode = %v, want 0", b.Output.ExitCode)
	}
	if b.FailureReason != "" {
		t.Errorf("FailureReason = %q, want empty", b.FailureReason)
	}
	if b.Metadata.DurationMS != 12 {
		t.Errorf("DurationMS = %d, want 12", b.Metadata.DurationMS)
	}
}

func TestFinalizeFailure(t *testing.T) {
	b := New("cargo build", "/proj")
	if err := b.Finalize("", "compile error", 101, time.Second); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if b.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", b.Status, StatusFailed)
	}
	if b.FailureReason != "Exit code: 101" {
		t.Errorf("FailureReason = %q, want %q", b.FailureReason, "Exit code: 101")
	}
	if b.Output.ExitCode == nil || *b.Output.ExitCode != 101 {
		t.Errorf("ExitCode = %v, want 101", b.Output.ExitCode)
	}
}

func TestFinalizeTwiceRejected(t *testing.T) {
	b := New("echo hi", "/")
	if err := b.Finalize("hi", "", 0, 0); err != nil {
		t.Fatalf("first Finalize() error = %v", err)
	}

	err := b.Finalize("other", "boom", 1, 0)
	if !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("second Finalize() error = %v, want ErrAlreadyFinalized", err)
	}

	// Terminal state must be untouched by the rejected call.
	if b.Status != StatusSuccess {
		t.Errorf("Status = %q, want %q after rejected finalize", b.Status, StatusSuccess)
	}
	if b.Output.Stdout != "hi" {
		t.Errorf("Stdout = %q, want %q", b.Output.Stdout, "hi")
	}
	if *b.Output.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", *b.Output.ExitCode)
	}
}

func TestCancel(t *testing.T) {
	b := New("sleep 100", "/")
	if err := b.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	if b.Status != StatusCancelled {
		t.Errorf("Status = %q, want %q", b.Status, StatusCancelled)
	}
	if b.Output.ExitCode != nil {
		t.Errorf("ExitCode = %v, want nil for cancelled block", *b.Output.ExitCode)
	}

	if err := b.Finalize("late", "", 0, 0); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("Finalize() after Cancel() error = %v, want ErrAlreadyFinalized", err)
	}
	if err := b.Cancel(); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("second Cancel() error = %v, want ErrAlreadyFinalized", err)
	}
}

func TestFullOutput(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		stderr string
		want   string
	}{
		{"both empty", "", "", ""},
		{"stdout only", "hello", "", "hello"},
		{"stderr only", "", "oops", "oops"},
		{"both", "hello", "oops", "hello\noops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("x", "/")
			b.Output.Stdout = tt.stdout
			b.Output.Stderr = tt.stderr
			if got := b.FullOutput(); got != tt.want {
				t.Errorf("FullOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullOutputAfterFailedFinalize(t *testing.T) {
	b := New("cargo build", "/proj")
	if err := b.Finalize("building...", "error[E0001]", 101, 0); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	got := b.FullOutput()
	if !strings.Contains(got, "building...\nerror[E0001]") {
		t.Errorf("FullOutput() = %q, want stderr after stdout separated by newline", got)
	}
}

func TestToggleBookmarkInvolution(t *testing.T) {
	b := New("git status", "/repo")

	b.ToggleBookmark()
	if !b.IsBookmarked() {
		t.Error("expected bookmarked after first toggle")
	}
	b.ToggleBookmark()
	if b.IsBookmarked() {
		t.Error("expected not bookmarked after second toggle")
	}
}

func TestToggleBookmarkDoesNotTouchStatus(t *testing.T) {
	b := New("ls", "/")
	if err := b.Finalize("", "", 0, 0); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	b.ToggleBookmark()
	if b.Status != StatusSuccess {
		t.Errorf("Status = %q, want %q after bookmark toggle", b.Status, StatusSuccess)
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusRunning, false},
		{StatusSuccess, true},
		{StatusFailed, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	b := New("false", "/")
	if err := b.Finalize("", "", 3, 0); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got := b.StatusLabel(); got != "failed (Exit code: 3)" {
		t.Errorf("StatusLabel() = %q, want %q", got, "failed (Exit code: 3)")
	}

	ok := New("true", "/")
	if err := ok.Finalize("", "", 0, 0); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got := ok.StatusLabel(); got != "success" {
		t.Errorf("StatusLabel() = %q, want %q", got, "success")
	}
}

func TestSetGitBranch(t *testing.T) {
	b := New("git log", "/repo")
	b.SetGitBranch("main")
	if b.Metadata.GitBranch != "main" {
		t.Errorf("GitBranch = %q, want %q", b.Metadata.GitBranch, "main")
	}
}
