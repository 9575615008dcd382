package convert

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Run reads inPath, inserts the table of contents and writes the result to
// outPath. The input is closed before anything is written. When
// cfg.HTMLOut is set, an HTML rendering of the output is written there too.
func Run(ctx context.Context, inPath, outPath string, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	lines, err := loadLines(inPath)
	if err != nil {
		return Result{}, err
	}

	doc := Scan(lines, cfg)
	log.Debug("document scanned",
		"path", inPath,
		"lines", len(doc.Lines),
		"headings", len(doc.Headings),
		"marker_line", doc.Marker,
	)
	if err := ctx.Err(); err != nil {
		return Result{}, wrapContextError(err)
	}

	res := Transform(doc)
	if !res.Inserted {
		log.Debug("marker not found, table of contents skipped", "marker", cfg.Marker)
	}

	if err := writeFile(outPath, func(w io.Writer) error { return Emit(w, doc.Lines) }); err != nil {
		return Result{}, err
	}
	log.Info("document written", "path", outPath, "headings", res.Headings, "toc_inserted", res.Inserted)

	if cfg.HTMLOut != "" {
		source := []byte(strings.Join(doc.Lines, lineTerminator))
		if err := writeFile(cfg.HTMLOut, func(w io.Writer) error { return RenderHTML(w, source) }); err != nil {
			return Result{}, err
		}
		log.Info("html preview written", "path", cfg.HTMLOut)
	}
	return res, nil
}

// Process runs the whole transform over in-memory streams.
func Process(r io.Reader, w io.Writer, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	lines, err := ReadLines(r)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}
	doc := Scan(lines, cfg)
	res := Transform(doc)
	if err := Emit(w, doc.Lines); err != nil {
		return Result{}, fmt.Errorf("write document: %w", err)
	}
	return res, nil
}

// Scan classifies every line. A line starting with the marker is never
// considered a heading. The last marker line wins unless cfg.FirstMarker is
// set.
func Scan(lines []string, cfg Config) *Document {
	cfg = cfg.withDefaults()
	doc := &Document{
		Lines:    make([]string, 0, len(lines)),
		Marker:   -1,
		Headings: []Heading{},
	}
	for n, line := range lines {
		if strings.HasPrefix(line, cfg.Marker) {
			if !cfg.FirstMarker || doc.Marker < 0 {
				doc.Marker = n
			}
		} else if h, ok := matchHeading(line); ok {
			h.Position = n
			doc.Headings = append(doc.Headings, h)
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// Transform rewrites the headings of doc and, when a marker was found,
// replaces the marker line with the joined table of contents. The TOC takes
// a single slot in doc.Lines.
func Transform(doc *Document) Result {
	toc := BuildToC(doc.Headings)
	Rewrite(doc)

	res := Result{
		Lines:    len(doc.Lines),
		Headings: len(doc.Headings),
		Marker:   doc.Marker,
	}
	if doc.HasMarker() {
		doc.Lines[doc.Marker] = strings.Join(toc, lineTerminator)
		res.Inserted = true
	}
	return res
}
