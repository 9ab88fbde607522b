// ABOUTME: Static credential source backed by configuration
// ABOUTME: Returns a fixed bearer token, or nothing for anonymous calls

package credentials

import "context"

// StaticTokenSource supplies a fixed bearer token. An empty token means every
// outbound call proceeds anonymously.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a credential source with a fixed token
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the configured token; never blocks
func (s *StaticTokenSource) Token(ctx context.Context) string {
	return s.token
}
