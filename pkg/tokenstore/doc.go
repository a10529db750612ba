// Package tokenstore keeps the guest and admin session tokens in ephemeral
// storage, the way the browser app keeps them in session storage.
//
// The two tokens live under distinct fixed keys so the guest and admin
// sessions are fully independent. A missing token reads back as an empty
// string rather than an error; presence of a value is the only signal of an
// active session.
//
//	tokens := tokenstore.NewTokens(tokenstore.NewMemory())
//	defer tokens.Close()
//
//	tokens.SetToken(ctx, accessToken)
//	if tokens.Token(ctx) != "" {
//		// guest is logged in
//	}
//	tokens.ClearToken(ctx) // logout, admin session untouched
//
// The Memory store optionally expires tokens after a session TTL, with a
// background janitor sweeping expired entries.
package tokenstore
