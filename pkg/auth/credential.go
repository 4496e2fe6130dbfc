package auth

import (
	"context"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Credential is the caller's bearer token. It is passed explicitly to every
// ledger call instead of being read from shared state.
type Credential struct {
	Token string
}

type ContextKey string

const CredentialKey ContextKey = "credential"

func NewCredential(token string) Credential {
	return Credential{Token: strings.TrimSpace(token)}
}

func (c Credential) Empty() bool {
	return c.Token == ""
}

func (c Credential) Bearer() string {
	return "Bearer " + c.Token
}

// Fingerprint identifies the credential without retaining the raw token.
func (c Credential) Fingerprint() string {
	sum := blake2b.Sum256([]byte(c.Token))
	return hex.EncodeToString(sum[:])
}

func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, CredentialKey, cred)
}

func CredentialFrom(ctx context.Context) Credential {
	cred, _ := ctx.Value(CredentialKey).(Credential)
	return cred
}
