// Package store persists the board: the flat task file itself, the
// best-effort session state next to it, and the SQLite history sidecar.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"twodo/internal/logging"
)

// Task file line prefixes. One item per line, todo items first.
const (
	todoPrefix = "TODO: "
	donePrefix = "DONE: "
)

// ParseError reports a task-file line matching neither prefix. The file is
// rejected as a whole; there is no partial import of the well-formed lines.
type ParseError struct {
	Path string
	Line int // 1-based
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: ill-formed item line %q", e.Path, e.Line, e.Text)
}

// Load reads the task file at path into the two lists. A missing file is a
// first run, not an error: both lists come back empty.
func Load(path string) (todo, done []string, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debugf("task file %s missing, starting empty", path)
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, todoPrefix):
			todo = append(todo, strings.TrimPrefix(line, todoPrefix))
		case strings.HasPrefix(line, donePrefix):
			done = append(done, strings.TrimPrefix(line, donePrefix))
		default:
			return nil, nil, &ParseError{Path: path, Line: n, Text: line}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read task file: %w", err)
	}
	logging.Debugf("loaded %s: %d todo, %d done", path, len(todo), len(done))
	return todo, done, nil
}

// Save writes both lists back to path, all todo lines before all done
// lines. The write goes through a temp file renamed into place so a crash
// mid-write cannot truncate the previous contents.
func Save(path string, todo, done []string) error {
	var buf bytes.Buffer
	for _, title := range todo {
		buf.WriteString(todoPrefix)
		buf.WriteString(title)
		buf.WriteByte('\n')
	}
	for _, title := range done {
		buf.WriteString(donePrefix)
		buf.WriteString(title)
		buf.WriteByte('\n')
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("save task file: %w", err)
	}
	logging.Debugf("saved %s: %d todo, %d done", path, len(todo), len(done))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
