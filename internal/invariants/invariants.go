// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates runtime checks of preconditions that hold in any
// correct program but are too expensive, or too hot, to verify in normal
// builds. Call sites test Enabled before checking; in normal builds the
// check compiles away.
package invariants

import "github.com/cockroachdb/bitrev/internal/buildtags"

// Enabled is true if we were built with the "invariants" or "race" build
// tags.
const Enabled = buildtags.Invariants || buildtags.Race

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race
