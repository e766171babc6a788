// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrMalformedHeader indicates a first line that does not match the format.
var ErrMalformedHeader = errors.New("input: malformed header")

// ErrMalformedLine indicates a record line that does not match the format.
var ErrMalformedLine = errors.New("input: malformed record")

// ErrEmpty indicates an input without a header line.
var ErrEmpty = errors.New("input: empty input")

// progressEvery is the record interval between progress log lines.
const progressEvery = 1000

var (
	edgeHeaderRe = regexp.MustCompile(`^\s*(\d+)\s*$`)
	edgeLineRe   = regexp.MustCompile(`^\s*(?P<src>\d+)\s+(?P<dest>\d+)\s+(?P<weight>-?\d+)`)
	codeHeaderRe = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s*$`)
	codeLineRe   = regexp.MustCompile(`^[01\s]+$`)
)

// EdgeSink receives parsed edges. *kcluster.Clusterer satisfies it.
type EdgeSink interface {
	AddEdge(u, v uint32, w int32)
}

// CodeSink receives parsed (vertex, code) pairs. *hamming.Clusterer satisfies it.
type CodeSink interface {
	AddVertex(vertex, code uint32) error
}

// Option configures a reader.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger reports load progress to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("input: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

func resolve(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LoadEdges parses an edge file from r into dst and returns the number of
// edges read and the vertex count declared by the header.
func LoadEdges(r io.Reader, dst EdgeSink, opts ...Option) (edges, declared int, err error) {
	o := resolve(opts)
	sc := newScanner(r)

	header, ok := nextLine(sc)
	if !ok {
		return 0, 0, firstErr(sc.Err(), ErrEmpty)
	}
	m := edgeHeaderRe.FindStringSubmatch(header)
	if m == nil {
		return 0, 0, fmt.Errorf("line 1 %q: %w", header, ErrMalformedHeader)
	}
	declared, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("line 1: %w: %v", ErrMalformedHeader, err)
	}

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		caps := edgeLineRe.FindStringSubmatch(line)
		if caps == nil {
			return edges, declared, fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}
		u, err1 := strconv.ParseUint(caps[edgeLineRe.SubexpIndex("src")], 10, 32)
		v, err2 := strconv.ParseUint(caps[edgeLineRe.SubexpIndex("dest")], 10, 32)
		w, err3 := strconv.ParseInt(caps[edgeLineRe.SubexpIndex("weight")], 10, 32)
		if err := errors.Join(err1, err2, err3); err != nil {
			return edges, declared, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
		}

		dst.AddEdge(uint32(u), uint32(v), int32(w))
		edges++
		if edges%progressEvery == 0 {
			o.logger.Debug("loading edges", zap.Int("edges", edges))
		}
	}
	if err := sc.Err(); err != nil {
		return edges, declared, err
	}
	o.logger.Info("edges loaded", zap.Int("edges", edges), zap.Int("declared_vertices", declared))

	return edges, declared, nil
}

// CodeReader parses a bit-code file. The header is read by NewCodeReader so
// the caller can size the clusterer before loading records.
type CodeReader struct {
	sc     *bufio.Scanner
	opts   options
	count  int
	width  int
	lineNo int
}

// NewCodeReader reads and validates the header of a bit-code file.
func NewCodeReader(r io.Reader, opts ...Option) (*CodeReader, error) {
	sc := newScanner(r)
	header, ok := nextLine(sc)
	if !ok {
		return nil, firstErr(sc.Err(), ErrEmpty)
	}
	m := codeHeaderRe.FindStringSubmatch(header)
	if m == nil {
		return nil, fmt.Errorf("line 1 %q: %w", header, ErrMalformedHeader)
	}
	count, err1 := strconv.Atoi(m[1])
	width, err2 := strconv.Atoi(m[2])
	if err := errors.Join(err1, err2); err != nil {
		return nil, fmt.Errorf("line 1: %w: %v", ErrMalformedHeader, err)
	}
	if width < 1 || width > 32 {
		return nil, fmt.Errorf("line 1: width %d: %w", width, ErrMalformedHeader)
	}

	return &CodeReader{sc: sc, opts: resolve(opts), count: count, width: width, lineNo: 1}, nil
}

// Count returns the vertex count declared by the header.
func (cr *CodeReader) Count() int { return cr.count }

// Width returns the code width declared by the header.
func (cr *CodeReader) Width() int { return cr.width }

// Load parses every remaining record into dst and returns the number read.
// Vertex ids are 1-based record numbers.
func (cr *CodeReader) Load(dst CodeSink) (int, error) {
	n := 0
	for cr.sc.Scan() {
		cr.lineNo++
		line := cr.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, err := cr.parseCode(line)
		if err != nil {
			return n, err
		}
		n++
		if err := dst.AddVertex(uint32(n), code); err != nil {
			return n, fmt.Errorf("line %d: %w", cr.lineNo, err)
		}
		if n%progressEvery == 0 {
			cr.opts.logger.Debug("loading codes", zap.Int("vertices", n))
		}
	}
	if err := cr.sc.Err(); err != nil {
		return n, err
	}
	if n != cr.count {
		cr.opts.logger.Warn("record count differs from header",
			zap.Int("declared", cr.count),
			zap.Int("read", n),
		)
	}
	cr.opts.logger.Info("codes loaded", zap.Int("vertices", n), zap.Int("width", cr.width))

	return n, nil
}

func (cr *CodeReader) parseCode(line string) (uint32, error) {
	if !codeLineRe.MatchString(line) {
		return 0, fmt.Errorf("line %d %q: %w", cr.lineNo, line, ErrMalformedLine)
	}
	digits := strings.Join(strings.Fields(line), "")
	if len(digits) != cr.width {
		return 0, fmt.Errorf("line %d: %d bits, want %d: %w", cr.lineNo, len(digits), cr.width, ErrMalformedLine)
	}
	code, err := strconv.ParseUint(digits, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %v", cr.lineNo, ErrMalformedLine, err)
	}

	return uint32(code), nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return sc
}

// nextLine returns the first non-blank line.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
