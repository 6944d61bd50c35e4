// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// spec_yaml.go — YAML form of the Spec constructor input.
//
// Document shape:
//
//	nodes:
//	  0: [0, 0]
//	  1: [3, 4]
//	edges:
//	  0: [1]
//
// Unknown top-level keys are rejected so typos surface as ErrSpecFormat.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netopt/core"
)

// specDocument is the on-disk layout decoded by yaml.v3.
type specDocument struct {
	Nodes map[int][]float64 `yaml:"nodes"`
	Edges map[int][]int     `yaml:"edges"`
}

// ParseSpec decodes a YAML graph spec held in memory.
func ParseSpec(data []byte) (map[int]core.Point, map[int][]int, error) {
	return LoadSpec(bytes.NewReader(data))
}

// LoadSpec decodes a YAML graph spec from r into the vertex and edge-list
// maps accepted by FromSpec. An empty document yields two empty maps.
func LoadSpec(r io.Reader) (map[int]core.Point, map[int][]int, error) {
	var doc specDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%s: %v: %w", MethodParseSpec, err, ErrSpecFormat)
	}

	vertices := make(map[int]core.Point, len(doc.Nodes))
	for id, xy := range doc.Nodes {
		if len(xy) != coordsPerPoint {
			return nil, nil, fmt.Errorf("%s: node %d has %d coordinates: %w",
				MethodParseSpec, id, len(xy), ErrSpecFormat)
		}
		vertices[id] = core.Point{X: xy[0], Y: xy[1]}
	}
	edges := doc.Edges
	if edges == nil {
		edges = map[int][]int{}
	}

	return vertices, edges, nil
}

// FromYAML reads a YAML graph spec from r and builds it with FromSpec.
func FromYAML(r io.Reader) (*core.Graph, error) {
	vertices, edges, err := LoadSpec(r)
	if err != nil {
		return nil, err
	}

	return FromSpec(vertices, edges)
}
