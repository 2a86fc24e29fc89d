// Package render provides read-only text views of blocks: a detailed boxed
// view, a one-line compact view, and a numbered list. Renderers never mutate
// the blocks they are given.
package render

import (
	"fmt"
	"strings"

	"github.com/zjrosen/blockdeck/internal/block"
)

// statusGlyph returns the one-rune status indicator, styled for the current
// color profile.
func statusGlyph(s block.Status) string {
	switch s {
	case block.StatusSuccess:
		return SuccessStyle.Render("✓")
	case block.StatusFailed:
		return FailedStyle.Render("✗")
	case block.StatusRunning:
		return RunningStyle.Render("⟳")
	case block.StatusCancelled:
		return CancelledStyle.Render("◯")
	}
	return "?"
}

// Detailed renders a bordered multi-line view of one block: identity,
// command, status, execution context, then prefixed stdout and stderr lines.
func Detailed(b *block.Block) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("┌─ Block ID: %s [%d]\n", b.ID, b.Metadata.Timestamp))
	sb.WriteString(fmt.Sprintf("├─ Command: %s\n", b.Command))
	sb.WriteString(fmt.Sprintf("├─ Status: %s\n", b.StatusLabel()))
	sb.WriteString(fmt.Sprintf("├─ Directory: %s\n", b.Metadata.Directory))

	if b.Metadata.GitBranch != "" {
		sb.WriteString(fmt.Sprintf("├─ Branch: %s\n", b.Metadata.GitBranch))
	}

	sb.WriteString(fmt.Sprintf("├─ Duration: %dms\n", b.Metadata.DurationMS))

	if b.IsBookmarked() {
		sb.WriteString(fmt.Sprintf("├─ [%s Bookmarked]\n", BookmarkStyle.Render("★")))
	}

	sb.WriteString("├─ Output:\n")
	for _, line := range splitLines(b.Output.Stdout) {
		sb.WriteString(fmt.Sprintf("│  %s\n", line))
	}

	if b.Output.Stderr != "" {
		sb.WriteString("├─ Stderr:\n")
		for _, line := range splitLines(b.Output.Stderr) {
			sb.WriteString(fmt.Sprintf("│  [ERR] %s\n", line))
		}
	}

	sb.WriteString("└─ End Block\n")
	return sb.String()
}

// Compact renders a block as a single line: status glyph, timestamp, command,
// duration, and a bookmark marker if set.
func Compact(b *block.Block) string {
	bookmark := ""
	if b.IsBookmarked() {
		bookmark = " " + BookmarkStyle.Render("★")
	}

	return fmt.Sprintf("%s [%d] %s %dms%s",
		statusGlyph(b.Status), b.Metadata.Timestamp, b.Command, b.Metadata.DurationMS, bookmark)
}

// Header renders the one-line title used above a block's output pane.
func Header(b *block.Block) string {
	return fmt.Sprintf("$ %s [%dms] %s", b.Command, b.Metadata.DurationMS, b.StatusLabel())
}

// List renders a numbered compact listing of the blocks in the given order.
func List(blocks []*block.Block) string {
	var sb strings.Builder
	sb.WriteString("Blocks History:\n")

	for i, b := range blocks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, Compact(b)))
	}

	return sb.String()
}

// splitLines splits text into lines without producing a trailing empty line
// for text that ends in a newline. Empty text yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
