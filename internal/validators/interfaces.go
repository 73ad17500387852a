// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks diary input before it reaches the services:
// entries being saved, export requests, credentials and timeline sections.
//
// A Validator accepts optional field names restricting which rules run;
// without them the type's default rule set applies.
package validators

import "context"

// Validator validates an input value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
