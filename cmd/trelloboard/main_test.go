package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egobogo/trelloboard/internal/config"
)

func newFakeTrello(t *testing.T) *httptest.Server {
	t.Helper()
	routes := map[string]string{
		"/1/boards/board1/lists":   `[{"id":"l1","name":"Inbox"},{"id":"l2","name":"Progress"},{"id":"l3","name":"Blocked"}]`,
		"/1/board/board1/members":  `[{"id":"m1","username":"is"},{"id":"m2","username":"super"}]`,
		"/1/members/m1/avatarHash": `{"_value":"abc123"}`,
		"/1/list/l2/cards":         `[{"id":"c1","name":"Fix login","idList":"l2"}]`,
		"/1/cards/c1/actions":      `[{"id":"a1","type":"commentCard","data":{"text":"on it"}},{"id":"a2","type":"updateCard"}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "env-key" || r.URL.Query().Get("token") != "env-token" {
			http.Error(w, "invalid key", http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCommands(t *testing.T) {
	srv := newFakeTrello(t)
	dir := t.TempDir()

	for _, key := range []string{config.EnvAPIKey, config.EnvToken, config.EnvBoardID, config.EnvLogLevel} {
		unsetEnv(t, key)
	}
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRELLO_API_KEY=env-key\nTRELLO_TOKEN=env-token\nTRELLO_BOARD_ID=board1\n"), 0644))

	configFile := filepath.Join(dir, "main.cfg.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logLevel: error\ntrello:\n  baseUrl: "+srv.URL+"/1\n"), 0644))

	common := []string{"--config", configFile, "--env-file", envFile}

	t.Run("lists", func(t *testing.T) {
		out := run(t, append(common, "lists", "--name", "Inbox")...)
		var lists []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &lists))
		require.Len(t, lists, 1)
		require.Equal(t, "l1", lists[0]["id"])
	})

	t.Run("members", func(t *testing.T) {
		out := run(t, append(common, "members")...)
		var members []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &members))
		require.Len(t, members, 2)
	})

	t.Run("list-key", func(t *testing.T) {
		out := run(t, append(common, "list-key", "Blocked")...)
		require.Equal(t, "2", strings.TrimSpace(out))
	})

	t.Run("avatar", func(t *testing.T) {
		out := run(t, append(common, "avatar", "m1", "--size", "30")...)
		require.Equal(t, "https://trello-avatars.s3.amazonaws.com/abc123/30.png", strings.TrimSpace(out))
	})

	t.Run("cards", func(t *testing.T) {
		out := run(t, append(common, "cards", "--list", "Progress")...)
		var grouped []struct {
			List  map[string]interface{}   `json:"list"`
			Cards []map[string]interface{} `json:"cards"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &grouped))
		require.Len(t, grouped, 1)
		require.Equal(t, "Progress", grouped[0].List["name"])
		require.Len(t, grouped[0].Cards, 1)
		require.Equal(t, "c1", grouped[0].Cards[0]["id"])
	})

	t.Run("comments", func(t *testing.T) {
		out := run(t, append(common, "comments", "c1")...)
		var comments []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &comments))
		require.Len(t, comments, 1)
		require.Equal(t, "a1", comments[0]["id"])
	})

	t.Run("refresh", func(t *testing.T) {
		out := run(t, append(common, "refresh")...)
		var summary map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &summary))
		require.Equal(t, "board1", summary["board"])
		require.EqualValues(t, 3, summary["lists"])
		require.EqualValues(t, 2, summary["members"])
	})
}
