package trelloClient

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestLiveBoard runs against the real Trello API when TRELLO_* credentials are available.
func TestLiveBoard(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		t.Log("No .env file found; using system environment variables")
	}

	apiKey := os.Getenv("TRELLO_API_KEY")
	token := os.Getenv("TRELLO_TOKEN")
	boardID := os.Getenv("TRELLO_BOARD_ID")
	if apiKey == "" || token == "" || boardID == "" {
		t.Skip("TRELLO_API_KEY, TRELLO_TOKEN or TRELLO_BOARD_ID not set, skipping test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tc, err := NewTrelloClient(ctx, Options{APIKey: apiKey, Token: token, BoardID: boardID})
	require.NoError(t, err)

	lists := tc.ListAll()
	t.Logf("Board %s has %d lists and %d members", boardID, len(lists), len(tc.MembersAll()))
	if len(lists) == 0 {
		return
	}

	cards, err := tc.CardsForLists(ctx, lists[:1])
	require.NoError(t, err)
	require.Len(t, cards, 1)
	t.Logf("List %q has %d cards", lists[0].Name, len(cards[0]))

	if len(cards[0]) > 0 {
		comments, err := tc.CardComments(ctx, cards[0][0].ID)
		require.NoError(t, err)
		t.Logf("Card %s has %d comments", cards[0][0].ID, len(comments))
	}
}
