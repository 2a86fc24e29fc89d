// Package blockops provides pure derivations from blocks: clipboard text,
// share links, shell script generation, and machine-readable metadata.
// Nothing in this package holds state or mutates a block.
package blockops

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/zjrosen/blockdeck/internal/block"
)

// CopyCommand returns the command text verbatim.
func CopyCommand(b *block.Block) string {
	return b.Command
}

// CopyOutput returns stdout verbatim, excluding stderr.
func CopyOutput(b *block.Block) string {
	return b.Output.Stdout
}

// CopyFormattedOutput returns the command prefixed with "$ " followed by its
// stdout, with a "[stderr]" section appended when stderr is non-empty.
func CopyFormattedOutput(b *block.Block) string {
	var sb strings.Builder
	sb.WriteString("$ ")
	sb.WriteString(b.Command)
	sb.WriteString("\n")

	if b.Output.Stdout != "" {
		sb.WriteString(b.Output.Stdout)
	}

	if b.Output.Stderr != "" {
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("[stderr]\n")
		sb.WriteString(b.Output.Stderr)
	}

	return sb.String()
}

// ShareLink builds a shareable URL for the block under baseURL.
func ShareLink(b *block.Block, baseURL string) string {
	return fmt.Sprintf("%s/blocks?cmd=%s&id=%s", baseURL, url.QueryEscape(b.Command), b.ID)
}

// ShellScript generates a runnable shell script replaying the given blocks in
// order. Each command is preceded by a comment carrying its status label.
func ShellScript(blocks []*block.Block) string {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n# Generated from blockdeck history\n\n")

	for _, b := range blocks {
		sb.WriteString(fmt.Sprintf("# Command: %s (Status: %s)\n", b.Command, b.StatusLabel()))
		sb.WriteString(b.Command)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ExportJSON serializes the blocks to an indented, full-fidelity JSON array.
func ExportJSON(blocks []*block.Block) (string, error) {
	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing blocks: %w", err)
	}
	return string(data), nil
}

// CommandMetadata is a flat, machine-readable summary of one block, intended
// for logging pipelines. It does not round-trip back into a Block.
type CommandMetadata struct {
	ID         string `json:"id"`
	Command    string `json:"command"`
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
	DurationMS uint64 `json:"duration_ms"`
	Directory  string `json:"directory"`
	GitBranch  string `json:"git_branch,omitempty"`
	ExitCode   *int   `json:"exit_code"`
	Bookmarked bool   `json:"bookmarked"`
}

// Metadata extracts the flat metadata record from a block.
func Metadata(b *block.Block) CommandMetadata {
	return CommandMetadata{
		ID:         b.ID,
		Command:    b.Command,
		Status:     b.StatusLabel(),
		Timestamp:  b.Metadata.Timestamp,
		DurationMS: b.Metadata.DurationMS,
		Directory:  b.Metadata.Directory,
		GitBranch:  b.Metadata.GitBranch,
		ExitCode:   b.Output.ExitCode,
		Bookmarked: b.IsBookmarked(),
	}
}
