// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (id, user_id, email, token, saved_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			email    = excluded.email,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT user_id, email, token
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
