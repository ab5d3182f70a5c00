package trelloClient

import (
	"testing"

	"github.com/stretchr/testify/require"

	bc "github.com/egobogo/trelloboard/internal/board"
)

func TestFirstAvatarHash(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "array", body: `["abc123"]`, want: "abc123"},
		{name: "array takes first", body: `["abc123","def456"]`, want: "abc123"},
		{name: "object value", body: `{"_value":"abc123"}`, want: "abc123"},
		{name: "object takes first member in document order", body: `{"z":"first","a":"second"}`, want: "first"},
		{name: "bare string", body: `"abc123"`, want: "abc123"},
		{name: "empty array", body: `[]`, wantErr: ErrNoAvatarHash},
		{name: "empty object", body: `{}`, wantErr: ErrNoAvatarHash},
		{name: "null value", body: `{"_value":null}`, wantErr: ErrNoAvatarHash},
		{name: "empty string", body: `[""]`, wantErr: ErrNoAvatarHash},
		{name: "nested value", body: `[["abc123"]]`, wantErr: ErrNoAvatarHash},
		{name: "number", body: `42`, wantErr: ErrNoAvatarHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := firstAvatarHash([]byte(tt.body))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAvatarURL(t *testing.T) {
	require.Equal(t, "https://trello-avatars.s3.amazonaws.com/abc123/30.png",
		avatarURL(DefaultAvatarBaseURL, "abc123", bc.AvatarSmall))
	require.Equal(t, "https://trello-avatars.s3.amazonaws.com/abc123/170.png",
		avatarURL(DefaultAvatarBaseURL+"/", "abc123", 0))
	require.Equal(t, "https://trello-avatars.s3.amazonaws.com/abc123/64.png",
		avatarURL(DefaultAvatarBaseURL, "abc123", bc.AvatarSize(64)))
}
