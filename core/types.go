// SPDX-License-Identifier: MIT
// Package core defines the shared Graph capability set, the edge types,
// and the sentinel errors used by every representation.
//
// This file declares Edge, WeightedEdge, Neighbor, sentinel errors,
// and the vertex-range guard shared by all representations.
//
// Errors:
//
//	ErrNegativeVertexCount - constructor called with vertexCount < 0.
//	ErrInvalidVertex       - vertex id outside [0, VertexCount()).
//	ErrLoopNotAllowed      - Connect(u, u); all graphs here are simple.
//	ErrEdgeNotFound        - requested weighted edge does not exist.
//	ErrUnknownKind         - NewStore called with an unknown Kind.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a constructor received a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrInvalidVertex indicates an operation referenced an id outside [0, V).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrUnknownKind indicates NewStore received a Kind it does not know.
	ErrUnknownKind = errors.New("core: unknown store kind")
)

// Edge is an undirected vertex pair in canonical form (U < V).
type Edge struct {
	U int
	V int
}

// WeightedEdge is an undirected weighted vertex pair in canonical form (U < V).
type WeightedEdge struct {
	U      int
	V      int
	Weight int64
}

// Unweighted drops the weight.
func (e WeightedEdge) Unweighted() Edge { return Edge{U: e.U, V: e.V} }

// Neighbor is one entry of a weighted adjacency container.
type Neighbor struct {
	// To is the id of the adjacent vertex.
	To int

	// Weight is the cost of the edge leading to To.
	Weight int64
}

// checkVertex reports ErrInvalidVertex (wrapped with the offending id)
// when id lies outside [0, n).
func checkVertex(id, n int) error {
	if id < 0 || id >= n {
		return fmt.Errorf("vertex %d not in [0,%d): %w", id, n, ErrInvalidVertex)
	}

	return nil
}

// checkPair validates both endpoints of an edge operation.
func checkPair(u, v, n int) error {
	if err := checkVertex(u, n); err != nil {
		return err
	}

	return checkVertex(v, n)
}
