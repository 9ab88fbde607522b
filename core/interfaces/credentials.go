// ABOUTME: Credential source interface for authenticated provider calls
// ABOUTME: Implementations must return fast and never block on user input

package interfaces

import "context"

// CredentialSource supplies bearer tokens for outbound provider requests.
// An empty token means the call proceeds anonymously.
type CredentialSource interface {
	// Token returns the current bearer token, or "" when none is available.
	// Implementations must not block waiting for credentials to appear.
	Token(ctx context.Context) string
}
