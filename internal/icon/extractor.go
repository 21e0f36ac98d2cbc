// Package icon extracts named glyphs from an SVG icon sheet.
//
// Every <path> with a non-empty id becomes an Icon holding the raw path data
// and its grid offset: the coordinates of the leading move-to command divided
// by GridCellSize and truncated toward zero. An Extractor is built once and
// is read-only afterwards, so concurrent lookups need no locking.
package icon

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
)

// GridCellSize is the side of one icon cell on the sheet, in SVG units.
const GridCellSize = 16

// ErrMalformedPath is wrapped by diagnostics for path data that does not
// start with a usable move-to command.
var ErrMalformedPath = errors.New("malformed path data")

const number = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

var moveTo = regexp.MustCompile(`^[Mm]\s*(` + number + `)(?:\s*,\s*|\s+)(` + number + `)`)

// Icon is one glyph of the sheet.
type Icon struct {
	ID   string
	Path string // raw path data, passed through untouched
	X, Y int    // grid offset
}

// Diagnostic describes a path that was skipped during extraction.
type Diagnostic struct {
	ID   string
	Path string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("icon %q: %v: %s", d.ID, d.Err, d.Path)
}

// Extractor maps icon ids to icons.
type Extractor struct {
	icons  map[string]Icon
	log    logrus.FieldLogger
	report func(Diagnostic)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDiagnostics routes diagnostics to fn instead of the logger.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(e *Extractor) {
		e.report = fn
	}
}

// WithLogger sets the logger used for diagnostics when no WithDiagnostics
// sink is given. The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Extractor) {
		e.log = log
	}
}

// NewExtractor walks doc depth-first in document order and collects its
// icons. A nil doc yields an empty extractor. Paths with a missing or empty
// id, or without path data, are skipped silently; paths whose data cannot be
// parsed are skipped with a diagnostic. Later duplicates replace earlier ones.
func NewExtractor(doc *Document, opts ...Option) *Extractor {
	e := &Extractor{
		icons: make(map[string]Icon),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.report == nil {
		e.report = e.logDiagnostic
	}
	if doc == nil {
		return e
	}
	for _, n := range doc.Children {
		switch n.(type) {
		case *Group, *Path:
			e.walk(n)
		}
	}
	return e
}

func (e *Extractor) walk(n Node) {
	if p, ok := n.(*Path); ok {
		e.add(p)
		return
	}
	for _, c := range children(n) {
		e.walk(c)
	}
}

func (e *Extractor) add(p *Path) {
	if p.ID == nil || *p.ID == "" || p.D == nil {
		return
	}
	id, d := *p.ID, *p.D
	x, y, err := gridOffset(d)
	if err != nil {
		e.report(Diagnostic{ID: id, Path: d, Err: err})
		return
	}
	e.icons[id] = Icon{ID: id, Path: d, X: x, Y: y}
}

func (e *Extractor) logDiagnostic(d Diagnostic) {
	e.log.WithFields(logrus.Fields{
		"id":   d.ID,
		"path": d.Path,
	}).Warnf("skipping icon: %v", d.Err)
}

// gridOffset parses the leading move-to of path data into grid cells.
func gridOffset(d string) (int, int, error) {
	m := moveTo.FindStringSubmatch(d)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: no leading move-to", ErrMalformedPath)
	}
	x, err := cell(m[1])
	if err != nil {
		return 0, 0, err
	}
	y, err := cell(m[2])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func cell(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}
	q := v / GridCellSize
	if math.IsNaN(q) || math.Abs(q) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: coordinate %s out of range", ErrMalformedPath, s)
	}
	// int conversion truncates toward zero: -5/16 is cell 0, not -1.
	return int(q), nil
}

// Get returns the icon stored under id. The boolean is false when the sheet
// has no such icon; a found icon may legitimately have a zero offset.
func (e *Extractor) Get(id string) (Icon, bool) {
	ic, ok := e.icons[id]
	return ic, ok
}

// Len returns the number of icons.
func (e *Extractor) Len() int {
	return len(e.icons)
}

// IDs returns all icon ids in lexical order.
func (e *Extractor) IDs() []string {
	ids := make([]string, 0, len(e.icons))
	for id := range e.icons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
