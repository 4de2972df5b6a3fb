package core

// source.go reads newline-delimited JSON record files.
//
// Every line is decoded on its own. A line that is blank, not valid JSON, or
// valid JSON that is not an object is skipped and counted; it never aborts
// the rest of the file. Only I/O errors (and context cancellation) fail a
// fetch. The last line does not need a trailing newline, and a UTF-8 BOM at
// the start of the file is ignored.

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultMaxLineBytes caps a single NDJSON line; longer lines are skipped.
const DefaultMaxLineBytes = 1 << 20

// ctxCheckInterval is how many lines are decoded between context checks.
const ctxCheckInterval = 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Batch is the raw output of one fetch.
type Batch struct {
	Records []RawRecord
	Skipped int // Lines that could not be decoded into an object
}

// Source fetches raw records from somewhere.
type Source interface {
	// Name describes the source for logs, e.g. "file:data/APTAMERS.jsonl".
	Name() string
	// Fetch returns every decodable record. An error means the source as a
	// whole was unavailable.
	Fetch(ctx context.Context) (Batch, error)
}

// DecodeLines decodes newline-delimited JSON objects from r.
// Lines longer than maxLine bytes (when maxLine > 0) are skipped.
func DecodeLines(ctx context.Context, r io.Reader, maxLine int) (Batch, error) {
	var batch Batch
	br := bufio.NewReaderSize(r, 64<<10)
	buf := make([]byte, 0, 4096)

	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return batch, err
			}
		}

		line, tooLong, err := readLine(br, maxLine, buf[:0])
		if err == io.EOF {
			return batch, nil
		}
		if err != nil {
			return batch, fmt.Errorf("read line %d: %w", n+1, err)
		}
		buf = line

		if n == 0 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if tooLong {
			batch.Skipped++
			continue
		}

		var raw RawRecord
		if err := json.Unmarshal(line, &raw); err != nil || raw == nil {
			batch.Skipped++
			continue
		}
		batch.Records = append(batch.Records, raw)
	}
}

// readLine reads one line without its terminator into buf.
// If the line exceeds max bytes the rest of it is consumed and tooLong is set.
// Returns io.EOF only when no bytes remain.
func readLine(br *bufio.Reader, max int, buf []byte) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return buf, tooLong, err
		}
		if !tooLong {
			if max > 0 && len(buf)+len(chunk) > max {
				tooLong = true
				buf = buf[:0]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return buf, tooLong, nil
		}
	}
}

// FileSource reads records from an NDJSON file on disk.
type FileSource struct {
	Path         string
	MaxLineBytes int
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.Path }

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) (Batch, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Batch{}, fmt.Errorf("data source unavailable: %w", err)
	}
	defer f.Close()

	return DecodeLines(ctx, f, s.MaxLineBytes)
}

// HTTPSource fetches an NDJSON resource over HTTP.
type HTTPSource struct {
	URL          string
	Client       *http.Client
	MaxLineBytes int
}

// NewHTTPSource creates an HTTPSource. A zero timeout means no client timeout.
func NewHTTPSource(url string, timeout time.Duration, maxLine int) *HTTPSource {
	return &HTTPSource{
		URL:          url,
		Client:       &http.Client{Timeout: timeout},
		MaxLineBytes: maxLine,
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return s.URL }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) (Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Batch{}, fmt.Errorf("build request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Batch{}, fmt.Errorf("data source unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Batch{}, fmt.Errorf("data source unavailable: %s returned %s", s.URL, resp.Status)
	}

	return DecodeLines(ctx, resp.Body, s.MaxLineBytes)
}

// ErrUnsupportedSource is returned by NewSource for locations it cannot read.
var ErrUnsupportedSource = errors.New("unsupported data source")

// NewSource picks a Source for a file path or an http(s) URL.
func NewSource(location string, timeout time.Duration, maxLine int) (Source, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, timeout, maxLine), nil
	case strings.Contains(location, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	default:
		return &FileSource{Path: location, MaxLineBytes: maxLine}, nil
	}
}
