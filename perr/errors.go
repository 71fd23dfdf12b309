// Copyright (c) 2024 The Geoplanar Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package perr defines the sentinel error kinds raised across the engine,
// following §7 of the design: InvalidArgument, TopologyException,
// UnsupportedOperation and InvalidState.
package perr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap these with fmt.Errorf("...: %w", ErrX) so
// callers can errors.Is/errors.As against a stable kind.
var (
	// ErrInvalidArgument is raised on malformed geometry construction: a
	// nil element in a collection, a non-closed LinearRing, a pattern
	// string that isn't nine symbols, NaN coordinates, a negative fixed
	// scale.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTopology is raised when noding or ring assembly cannot proceed
	// because the computed graph violates a required invariant.
	ErrTopology = errors.New("topology exception")

	// ErrUnsupportedOperation is raised when a predicate or operation is
	// invoked on an input combination whose semantics are undefined (e.g.
	// GeometryCollections containing overlapping polygons).
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidState is raised on misuse of a sealed index, such as
	// inserting into an STR-tree that has already been queried (Query
	// builds the tree on first use rather than failing).
	ErrInvalidState = errors.New("invalid state")
)

// TopologyException carries an optional witness coordinate alongside the
// ErrTopology sentinel. X and Y are the location the algorithm had
// identified when it discovered it could not proceed; it is the zero value
// when no single point pinpoints the failure (WitnessKnown reports which).
type TopologyException struct {
	Msg          string
	X, Y         float64
	WitnessKnown bool
}

// NewTopologyException builds a TopologyException without a witness point.
func NewTopologyException(msg string) *TopologyException {
	return &TopologyException{Msg: msg}
}

// NewTopologyExceptionAt builds a TopologyException with a witness point.
func NewTopologyExceptionAt(msg string, x, y float64) *TopologyException {
	return &TopologyException{Msg: msg, X: x, Y: y, WitnessKnown: true}
}

func (e *TopologyException) Error() string {
	if e.WitnessKnown {
		return fmt.Sprintf("%s: %s at (%g, %g)", ErrTopology, e.Msg, e.X, e.Y)
	}
	return fmt.Sprintf("%s: %s", ErrTopology, e.Msg)
}

// Unwrap allows errors.Is(err, ErrTopology) to succeed.
func (e *TopologyException) Unwrap() error { return ErrTopology }

// InvalidArgument wraps ErrInvalidArgument with a contract-naming message.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// UnsupportedOperation wraps ErrUnsupportedOperation with a message.
func UnsupportedOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}

// InvalidState wraps ErrInvalidState with a message.
func InvalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
