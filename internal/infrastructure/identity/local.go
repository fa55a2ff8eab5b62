package identity

import (
	"context"
	"encoding/json"

	"maternacare/internal/infrastructure/kv"
	"maternacare/pkg/jwt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

const (
	credentialPrefix = "auth:credential:"
	sessionPrefix    = "auth:session:"
)

type credential struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

// localProvider keeps bcrypt-hashed credentials and active session tokens
// in its own KV namespace. Tokens are signed JWTs; a token is only valid
// while its session record exists, so logout can revoke it.
type localProvider struct {
	store  kv.Store
	tokens *jwt.TokenService
}

func NewLocalProvider(store kv.Store, tokens *jwt.TokenService) Provider {
	return &localProvider{store: store, tokens: tokens}
}

func (p *localProvider) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	userID := uuid.NewString()
	raw, err := json.Marshal(credential{UserID: userID, PasswordHash: string(hash)})
	if err != nil {
		return "", errors.Wrap(err, "encode credential")
	}
	if err := p.store.Set(ctx, credentialPrefix+email, raw); err != nil {
		return "", errors.Wrap(err, "store credential")
	}
	return userID, nil
}

func (p *localProvider) Authenticate(ctx context.Context, email, password string) error {
	cred, err := p.credential(ctx, email)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (p *localProvider) IssueToken(ctx context.Context, userID string) (string, error) {
	token, tokenID, err := p.tokens.Generate(userID)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	if err := p.store.Set(ctx, sessionKey(userID, tokenID), []byte(`"valid"`)); err != nil {
		return "", errors.Wrap(err, "store session")
	}
	return token, nil
}

func (p *localProvider) Verify(ctx context.Context, token string) (string, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	session, err := p.store.Get(ctx, sessionKey(claims.UserID, claims.TokenID))
	if err != nil {
		return "", errors.Wrap(err, "check session")
	}
	if session == nil {
		return "", ErrTokenRevoked
	}
	return claims.UserID, nil
}

func (p *localProvider) Revoke(ctx context.Context, userID string) error {
	entries, err := p.store.GetByPrefix(ctx, sessionPrefix+userID+":")
	if err != nil {
		return errors.Wrap(err, "list sessions")
	}
	for _, e := range entries {
		if err := p.store.Delete(ctx, e.Key); err != nil {
			return errors.Wrapf(err, "delete session %s", e.Key)
		}
	}
	return nil
}

func (p *localProvider) Remove(ctx context.Context, email string) error {
	return p.store.Delete(ctx, credentialPrefix+email)
}

func (p *localProvider) credential(ctx context.Context, email string) (*credential, error) {
	raw, err := p.store.Get(ctx, credentialPrefix+email)
	if err != nil {
		return nil, errors.Wrap(err, "get credential")
	}
	if raw == nil {
		return nil, nil
	}
	var cred credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, errors.Wrap(err, "decode credential")
	}
	return &cred, nil
}

func sessionKey(userID, tokenID string) string {
	return sessionPrefix + userID + ":" + tokenID
}
