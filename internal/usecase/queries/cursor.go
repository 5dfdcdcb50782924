package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// Public listings order by (code, id); the cursor carries both keys.
// Codes may contain '-', so '|' separates code from id.
func EncodeAfterCursor(code string, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s|%s", CursorVersionV1, code, id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (string, uuid.UUID, error) {
	if cursor == "" {
		return "", uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	sep := strings.LastIndex(payload, "|")
	if sep < 0 {
		return "", uuid.Nil, fmt.Errorf("invalid cursor format: expected '<code>|<uuid>'")
	}

	id, err := uuid.Parse(payload[sep+1:])
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return payload[:sep], id, nil
}
