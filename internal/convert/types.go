package convert

import (
	"github.com/thywilljoshua/mdtoc/internal/logging"
)

// DefaultMarker is the placeholder replaced by the table of contents.
const DefaultMarker = "INSERT-TOC-HERE"

// Heading is an ATX heading found during the scan.
type Heading struct {
	Level    int    `json:"level"`
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// Document holds the input lines, terminator-free, plus what the scan found.
// Marker is -1 when no marker line was seen.
type Document struct {
	Lines    []string
	Marker   int
	Headings []Heading
}

// HasMarker reports whether the scan recorded a marker line.
func (d *Document) HasMarker() bool {
	return d.Marker >= 0
}

type Result struct {
	Lines    int  `json:"lines"`
	Headings int  `json:"headings"`
	Marker   int  `json:"marker_line"`
	Inserted bool `json:"toc_inserted"`
}

type Config struct {
	Marker      string
	FirstMarker bool
	HTMLOut     string
	Logger      logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	if c.Logger == nil {
		c.Logger = logging.NoOp()
	}
	return c
}
