// Package storage persists block collections to disk. JSON is the durable
// round-trip format; CSV and plain text are write-only exports for
// spreadsheets and humans. Writes are atomic (temp file + rename) so a
// failed save never truncates an existing snapshot.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zjrosen/blockdeck/internal/block"
)

// ErrDecode is returned by Load when the file content is not a valid JSON
// block collection (for example, a CSV or plain-text export).
var ErrDecode = errors.New("decoding block snapshot")

// Save writes the blocks to path in the given format.
func Save(blocks []*block.Block, path string, f Format) error {
	var data []byte
	var err error

	switch f {
	case FormatJSON:
		data, err = encodeJSON(blocks)
	case FormatCSV:
		data, err = encodeCSV(blocks)
	case FormatPlainText:
		data = encodePlainText(blocks)
	default:
		return fmt.Errorf("unknown storage format %q", f)
	}
	if err != nil {
		return err
	}

	return writeAtomic(path, data)
}

// Load reads a JSON snapshot previously written by Save with FormatJSON.
// A missing or unreadable file returns the wrapped IO error; content that is
// not a valid block array returns an error wrapping ErrDecode.
func Load(path string) ([]*block.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var blocks []*block.Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return blocks, nil
}

func encodeJSON(blocks []*block.Block) ([]byte, error) {
	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing blocks: %w", err)
	}
	return data, nil
}

func encodeCSV(blocks []*block.Block) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"ID", "Command", "Status", "Duration(ms)", "Directory", "Timestamp"}); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, b := range blocks {
		row := []string{
			b.ID,
			b.Command,
			b.StatusLabel(),
			strconv.FormatUint(b.Metadata.DurationMS, 10),
			b.Metadata.Directory,
			strconv.FormatInt(b.Metadata.Timestamp, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return []byte(sb.String()), nil
}

func encodePlainText(blocks []*block.Block) []byte {
	var sb strings.Builder

	for _, b := range blocks {
		sb.WriteString("$ ")
		sb.WriteString(b.Command)
		sb.WriteString("\n")
		sb.WriteString(b.Output.Stdout)
		if b.Output.Stderr != "" {
			sb.WriteString("\n[stderr]\n")
			sb.WriteString(b.Output.Stderr)
		}
		sb.WriteString("\n\n---\n\n")
	}

	return []byte(sb.String())
}

// writeAtomic writes data to path via a temp file in the same directory
// followed by a rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
