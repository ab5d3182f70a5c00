package trelloClient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	bc "github.com/egobogo/trelloboard/internal/board"
)

// avatarURL builds the image URL for a hash on the avatar host.
func avatarURL(baseURL, hash string, size bc.AvatarSize) string {
	if size == 0 {
		size = bc.DefaultAvatarSize
	}
	return fmt.Sprintf("%s/%s/%d.png", strings.TrimRight(baseURL, "/"), hash, size)
}

// firstAvatarHash returns the first value of an avatarHash response.
// The API answers {"_value": "<hash>"}; arrays and bare strings are accepted too.
// Object members are taken in document order.
func firstAvatarHash(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("failed to read avatar hash: %w", err)
	}

	if delim, ok := tok.(json.Delim); ok {
		if !dec.More() {
			return "", ErrNoAvatarHash
		}
		if delim == '{' {
			// skip the member name
			if _, err := dec.Token(); err != nil {
				return "", fmt.Errorf("failed to read avatar hash: %w", err)
			}
		}
		if tok, err = dec.Token(); err != nil {
			return "", fmt.Errorf("failed to read avatar hash: %w", err)
		}
	}

	hash, ok := tok.(string)
	if !ok || hash == "" {
		return "", ErrNoAvatarHash
	}
	return hash, nil
}
