package tokens

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/pkg/utils"
)

const sep = "|"

// New returns a fresh secret and its lookup hash.
func New() (secret string, hash string, err error) {
	secret, err = utils.GenerateKey("")
	if err != nil {
		return "", "", err
	}
	return secret, SHA256Hex(secret), nil
}

// Format builds the bearer string handed to clients: "<token id>|<secret>".
func Format(id uuid.UUID, secret string) string {
	return id.String() + sep + secret
}

// Parse splits a bearer string produced by Format.
func Parse(raw string) (uuid.UUID, string, bool) {
	idPart, secret, ok := strings.Cut(strings.TrimSpace(raw), sep)
	if !ok || secret == "" {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", false
	}
	return id, secret, true
}

func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
