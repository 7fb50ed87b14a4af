// SPDX-License-Identifier: MIT
// Package: lapkit/builder
//
// decode.go — cost matrices from YAML/JSON documents.
//
// Accepted shapes (JSON is valid YAML, so both parse):
//
//	[[4, 1, 3], [2, 0, 5], [3, 2, 2]]
//
//	costs:
//	  - [4, 1, 3]
//	  - [2, 0, 5]
//	  - [3, 2, 2]

package builder

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lapkit/matrix"
)

// costDocument is the mapping form of a matrix document.
type costDocument struct {
	Costs [][]int64 `yaml:"costs"`
}

// Decode reads one YAML or JSON document from r and builds a square,
// non-negative matrix from it.
//
// Errors: ErrBadDocument for empty, unparsable or wrongly shaped documents;
// otherwise the FromRows errors. All wrapped with MethodDecode.
func Decode(r io.Reader) (*matrix.Dense, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, builderErrorf(MethodDecode, fmt.Errorf("empty document: %w", ErrBadDocument))
		}

		return nil, builderErrorf(MethodDecode, fmt.Errorf("%w: %w", ErrBadDocument, err))
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var rows [][]int64
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&rows); err != nil {
			return nil, builderErrorf(MethodDecode, fmt.Errorf("%w: %w", ErrBadDocument, err))
		}
	case yaml.MappingNode:
		var doc costDocument
		if err := root.Decode(&doc); err != nil {
			return nil, builderErrorf(MethodDecode, fmt.Errorf("%w: %w", ErrBadDocument, err))
		}
		rows = doc.Costs
	default:
		return nil, builderErrorf(MethodDecode, fmt.Errorf("line %d: want a list of rows: %w", root.Line, ErrBadDocument))
	}

	m, err := FromRows(rows)
	if err != nil {
		return nil, builderErrorf(MethodDecode, err)
	}

	return m, nil
}
