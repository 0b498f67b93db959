// Package obj reads the vertex records of a Wavefront OBJ style file.
//
// Only lines starting with "v " are interpreted; their first three fields
// are x, y and z. Every other line (faces, normals, texture coordinates,
// comments) is ignored, so a polyline exported from a modeling tool comes
// back as its ordered vertex list.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	track "github.com/lytkinsa96/101-Digital-Modeling"
)

// ParseError reports a malformed vertex record.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses vertex records from r.
//
// Input may carry a UTF-8 or UTF-16 byte order mark; UTF-16 input is
// transcoded before parsing. Returns an error matching track.ErrEmptyInput
// when no vertex record is found.
func Read(r io.Reader) (track.Polyline, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pts track.Polyline
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if !strings.HasPrefix(text, "v ") {
			continue
		}
		p, err := parseVertex(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("obj: no vertex records: %w", track.ErrEmptyInput)
	}
	return pts, nil
}

// ReadFile parses the vertex records of the named file.
func ReadFile(path string) (track.Polyline, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	track.Logger().Debug("obj: read vertices", "path", path, "count", len(pts))
	return pts, nil
}

func parseVertex(text string) (track.Point3, error) {
	fields := strings.Fields(text)[1:]
	if len(fields) < 3 {
		return track.Point3{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	var p track.Point3
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return track.Point3{}, err
		}
		p[i] = v
	}
	return p, nil
}
