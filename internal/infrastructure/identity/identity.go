// Package identity is the identity-provider boundary: it owns credentials
// and bearer tokens, nothing else. Domain services treat it as an external
// collaborator and never inspect its storage.
package identity

import "context"

// Provider issues user ids on registration, verifies credentials and
// resolves bearer tokens back to a user id.
type Provider interface {
	// Register creates credentials for email and returns the new user id.
	Register(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies a password against the stored credentials.
	Authenticate(ctx context.Context, email, password string) error
	// IssueToken creates a bearer token for an authenticated user.
	IssueToken(ctx context.Context, userID string) (string, error)
	// Verify resolves a bearer token to the user id it was issued for.
	Verify(ctx context.Context, token string) (string, error)
	// Revoke invalidates every outstanding token of a user.
	Revoke(ctx context.Context, userID string) error
	// Remove deletes the credentials stored for email.
	Remove(ctx context.Context, email string) error
}
