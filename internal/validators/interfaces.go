// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it reaches crypto or storage.
//
// Two validators exist: [NewCredentialsValidator] for sign-up usernames and
// passwords, and [NewUserDataValidator] for notes, health diary entries,
// personal info and export date ranges. Both return sentinel errors from
// errors.go that services wrap in their own ErrValidation.
package validators

import "context"

// Validator checks v and returns the first rule it breaks. fields limits the
// check to the named fields. Value types a validator does not know fail with
// [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
