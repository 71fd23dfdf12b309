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

package op

import (
	"github.com/rs/zerolog"

	"github.com/geoplanar/engine/pm"
)

type config struct {
	model  pm.Model
	srid   int
	logger zerolog.Logger
}

// Option configures an Engine built by NewEngine.
type Option func(*config)

// WithPrecisionModel sets the coordinate quantization policy every
// operation's result geometry is built under. Defaults to FLOATING.
func WithPrecisionModel(model pm.Model) Option {
	return func(c *config) { c.model = model }
}

// WithSRID sets the spatial reference id propagated to result geometries.
// Opaque to the engine; defaults to 0.
func WithSRID(srid int) Option {
	return func(c *config) { c.srid = srid }
}

// WithLogger attaches a zerolog.Logger the engine uses for structured
// diagnostics (overlay logs a warning when it cannot link a result edge
// into a ring). Silent
// by default: a disabled logger, so the library never writes anywhere
// unless the caller opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
