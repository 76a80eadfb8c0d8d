package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/radheonline/storefront/internal/core/domain"
)

var errNoUsername = errors.New("identity has no username")

// storedIdentity mirrors domain.Identity on disk. The id is kept raw because
// older blobs carry it as a JSON number.
type storedIdentity struct {
	ID       json.RawMessage `json:"id"`
	Username string          `json:"username"`
	Role     string          `json:"role"`
	IsActive bool            `json:"is_active"`
}

func encodeIdentity(id domain.Identity) (string, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeIdentity(raw string) (*domain.Identity, error) {
	var s storedIdentity
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Username) == "" {
		return nil, errNoUsername
	}

	id, err := decodeID(s.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{
		ID:       id,
		Username: s.Username,
		Role:     s.Role,
		IsActive: s.IsActive,
	}, nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
