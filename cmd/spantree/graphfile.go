// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanforest/core"
)

// graphFile is the YAML layout accepted by `spantree mst --file`:
//
//	vertices: 5
//	edges:
//	  - {from: 0, to: 1, weight: 8}
type graphFile struct {
	Vertices int         `yaml:"vertices"`
	Edges    []edgeEntry `yaml:"edges"`
}

type edgeEntry struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

func loadGraph(path string) (*core.WeightedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read graph file %s", path)
	}
	g, err := parseGraph(data)
	if err != nil {
		return nil, errors.Wrapf(err, "graph file %s", path)
	}

	return g, nil
}

// parseGraph decodes a graphFile and builds the weighted graph it describes.
// Unknown keys are rejected. A repeated pair keeps its first weight.
func parseGraph(data []byte) (*core.WeightedGraph, error) {
	var gf graphFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&gf); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	g, err := core.NewWeightedGraph(gf.Vertices, len(gf.Edges))
	if err != nil {
		return nil, errors.Wrapf(err, "vertices: %d", gf.Vertices)
	}
	for i, e := range gf.Edges {
		if err = g.Connect(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edges[%d]", i)
		}
	}

	return g, nil
}

// demoGraph is the five-vertex network used when no file is given.
func demoGraph() *core.WeightedGraph {
	g, _ := core.NewWeightedGraph(5, 7)
	for _, e := range []core.WeightedEdge{
		{U: 0, V: 1, Weight: 8}, {U: 0, V: 2, Weight: 2}, {U: 0, V: 3, Weight: 12},
		{U: 1, V: 3, Weight: 9}, {U: 1, V: 4, Weight: 24}, {U: 2, V: 3, Weight: 4},
		{U: 3, V: 4, Weight: 18},
	} {
		_ = g.Connect(e.U, e.V, e.Weight)
	}

	return g
}
