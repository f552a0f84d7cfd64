// SPDX-License-Identifier: MIT
// Package: lvmaze/export
//
// yaml.go — YAML snapshot of a generated maze.

package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNilResult is returned when no maze was supplied.
	ErrNilResult = errors.New("export: nil result")
	// ErrUnsupported is returned for a topology a writer cannot draw.
	ErrUnsupported = errors.New("export: unsupported topology")
)

// Wall is one blueprint segment in document form.
type Wall struct {
	Cell int        `yaml:"cell"`
	Slot int        `yaml:"slot"`
	A    [2]float64 `yaml:"a,flow"`
	B    [2]float64 `yaml:"b,flow"`
}

// Document is the YAML shape of a maze.
type Document struct {
	Config   maze.Config     `yaml:"config"`
	Carve    carve.Result    `yaml:"carve"`
	Stats    grid.Stats      `yaml:"stats"`
	Diameter distance.Span   `yaml:"diameter"`
	Solution []int           `yaml:"solution,flow"`
	Cells    []maze.CellInfo `yaml:"cells"`
	Walls    []Wall          `yaml:"walls"`
}

// NewDocument snapshots res.
func NewDocument(res *maze.Result) (Document, error) {
	if res == nil {
		return Document{}, ErrNilResult
	}
	doc := Document{
		Config:   res.Config,
		Carve:    res.Carve,
		Stats:    res.Stats,
		Diameter: res.Diameter,
		Solution: res.Solution,
		Cells:    res.Cells(),
		Walls:    make([]Wall, 0, len(res.Blueprint.Walls)),
	}
	for _, s := range res.Blueprint.Walls {
		doc.Walls = append(doc.Walls, Wall{
			Cell: s.Cell,
			Slot: s.Slot,
			A:    [2]float64{s.A.X, s.A.Y},
			B:    [2]float64{s.B.X, s.B.Y},
		})
	}
	return doc, nil
}

// WriteYAML encodes the document of res to w with two-space indentation.
func WriteYAML(w io.Writer, res *maze.Result) error {
	doc, err := NewDocument(res)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	return nil
}

// ReadYAML decodes a document written by WriteYAML.
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode yaml: %w", err)
	}
	return doc, nil
}
