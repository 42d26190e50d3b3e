// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators rejects malformed forms before they reach the Riegum
// API: registrations, plants, waterings, indoor settings and calendar
// reminder times. The rules follow what the server enforces, so most bad
// input is caught without a round trip.
package validators

import "context"

// Validator checks a form value. When fields are given only those fields
// are checked; an empty list checks the whole value. Failures are the
// sentinel errors of this package, such as ErrEmptyPlantName.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
