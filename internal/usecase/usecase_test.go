package usecase

import (
	"context"
	"fmt"
	"io"

	"maternacare/internal/infrastructure/identity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubProvider is an in-memory identity provider for tests. Tokens are
// "token:{userID}" so Verify can resolve them without signing.
type stubProvider struct {
	passwords map[string]string
	userIDs   map[string]string
	revoked   []string
	removed   []string
}

var _ identity.Provider = (*stubProvider)(nil)

func newStubProvider() *stubProvider {
	return &stubProvider{
		passwords: make(map[string]string),
		userIDs:   make(map[string]string),
	}
}

func (p *stubProvider) Register(_ context.Context, email, password string) (string, error) {
	userID := uuid.NewString()
	p.passwords[email] = password
	p.userIDs[email] = userID
	return userID, nil
}

func (p *stubProvider) Authenticate(_ context.Context, email, password string) error {
	stored, ok := p.passwords[email]
	if !ok || stored != password {
		return identity.ErrInvalidCredentials
	}
	return nil
}

func (p *stubProvider) IssueToken(_ context.Context, userID string) (string, error) {
	return fmt.Sprintf("token:%s", userID), nil
}

func (p *stubProvider) Verify(_ context.Context, token string) (string, error) {
	var userID string
	if _, err := fmt.Sscanf(token, "token:%s", &userID); err != nil {
		return "", identity.ErrInvalidToken
	}
	return userID, nil
}

func (p *stubProvider) Revoke(_ context.Context, userID string) error {
	p.revoked = append(p.revoked, userID)
	return nil
}

func (p *stubProvider) Remove(_ context.Context, email string) error {
	p.removed = append(p.removed, email)
	return nil
}
