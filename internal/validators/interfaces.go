// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of request bodies before they reach
// the services: well-formed emails, password and name limits.
//
// Rules that need the database or the caller, such as list ownership or an
// empty list name, stay in the service layer where the specific error for
// the client is known.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked, e.g. login checks the email and password of a
// models.User while registration checks the whole of it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
