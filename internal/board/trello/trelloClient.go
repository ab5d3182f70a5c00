// internal/board/trello/trelloClient.go
package trelloClient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/adlio/trello"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	bc "github.com/egobogo/trelloboard/internal/board"
)

// -------------------------
// Concrete TrelloBoardClient
// -------------------------

// TrelloClient implements the bc.BoardClient interface using the adlio/trello library.
// Lists and members are fetched once at construction and kept until the next refresh.
type TrelloClient struct {
	Client *trello.Client

	boardID       string
	avatarBaseURL string
	concurrency   int
	logger        hclog.Logger

	mu       sync.RWMutex
	lists    []bc.List
	members  []bc.Member
	snapshot uuid.UUID
}

var _ bc.BoardClient = (*TrelloClient)(nil)

// NewTrelloClient constructs a new TrelloClient and populates its list and member cache.
// No client is returned if either fetch fails.
func NewTrelloClient(ctx context.Context, opts Options) (*TrelloClient, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trello options: %w", err)
	}
	opts = opts.withDefaults()

	client := trello.NewClient(opts.APIKey, opts.Token)
	client.BaseURL = opts.BaseURL
	client.Client = &http.Client{Timeout: opts.Timeout}
	client.Logger = hclogAdapter{logger: opts.Logger}

	tc := &TrelloClient{
		Client:        client,
		boardID:       opts.BoardID,
		avatarBaseURL: opts.AvatarBaseURL,
		concurrency:   opts.Concurrency,
		logger:        opts.Logger,
	}
	if err := tc.RefreshListsAndMembers(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize board %s: %w", opts.BoardID, err)
	}
	return tc, nil
}

func (tc *TrelloClient) BoardID() string {
	return tc.boardID
}

func (tc *TrelloClient) SnapshotID() uuid.UUID {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.snapshot
}

// RefreshListsAndMembers refetches both collections. The cache is replaced only when both succeed.
func (tc *TrelloClient) RefreshListsAndMembers(ctx context.Context) error {
	var lists []bc.List
	if err := tc.get(ctx, fmt.Sprintf("boards/%s/lists", url.PathEscape(tc.boardID)), &lists); err != nil {
		tc.logError("failed to get lists", err)
		return fmt.Errorf("failed to get lists: %w", err)
	}
	var members []bc.Member
	if err := tc.get(ctx, fmt.Sprintf("board/%s/members", url.PathEscape(tc.boardID)), &members); err != nil {
		tc.logError("failed to get board members", err)
		return fmt.Errorf("failed to get board members: %w", err)
	}
	if lists == nil {
		lists = []bc.List{}
	}
	if members == nil {
		members = []bc.Member{}
	}

	snapshot := uuid.New()
	tc.mu.Lock()
	tc.lists = lists
	tc.members = members
	tc.snapshot = snapshot
	tc.mu.Unlock()

	tc.log().Debug("board cache refreshed",
		"board", tc.boardID,
		"lists", len(lists),
		"members", len(members),
		"snapshot", snapshot.String(),
	)
	return nil
}

func (tc *TrelloClient) ListAll() []bc.List {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return append([]bc.List{}, tc.lists...)
}

func (tc *TrelloClient) ListsByName(names ...string) []bc.List {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return bc.FilterListsByName(tc.lists, names...)
}

func (tc *TrelloClient) ListKeyByName(name string) (int, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return bc.IndexOfList(tc.lists, name)
}

func (tc *TrelloClient) MembersAll() []bc.Member {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return append([]bc.Member{}, tc.members...)
}

func (tc *TrelloClient) MembersByUsername(usernames ...string) []bc.Member {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return bc.FilterMembersByUsername(tc.members, usernames...)
}

// MemberAvatarURL resolves a member's avatar hash and builds the image URL for size.
// A zero size selects bc.DefaultAvatarSize.
func (tc *TrelloClient) MemberAvatarURL(ctx context.Context, memberID string, size bc.AvatarSize) (string, error) {
	var raw json.RawMessage
	if err := tc.get(ctx, fmt.Sprintf("members/%s/avatarHash", url.PathEscape(memberID)), &raw); err != nil {
		return "", fmt.Errorf("failed to get avatar hash: %w", err)
	}
	hash, err := firstAvatarHash(raw)
	if err != nil {
		return "", fmt.Errorf("member %s: %w", memberID, err)
	}
	return avatarURL(tc.avatarBaseURL, hash, size), nil
}

// CardsForLists fetches the cards of every list, at most tc.concurrency at a time.
// A concurrency of zero leaves the fetches unbounded.
// The first failure cancels the remaining fetches and no partial result is returned.
func (tc *TrelloClient) CardsForLists(ctx context.Context, lists []bc.List) ([][]bc.Card, error) {
	if tc.Client == nil {
		return nil, ErrNotInitialized
	}
	results := make([][]bc.Card, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	if tc.concurrency > 0 {
		g.SetLimit(tc.concurrency)
	}
	for i, l := range lists {
		i, l := i, l // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			var cards []bc.Card
			if err := tc.get(gctx, fmt.Sprintf("list/%s/cards", url.PathEscape(l.ID)), &cards); err != nil {
				return fmt.Errorf("failed to get cards for list %s: %w", l.ID, err)
			}
			if cards == nil {
				cards = []bc.Card{}
			}
			results[i] = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tc.logError("failed to get cards", err)
		return nil, err
	}
	return results, nil
}

// CardComments returns the comment actions of a card in the order the API lists them.
func (tc *TrelloClient) CardComments(ctx context.Context, cardID string) ([]bc.Action, error) {
	var actions []bc.Action
	if err := tc.get(ctx, fmt.Sprintf("cards/%s/actions", url.PathEscape(cardID)), &actions); err != nil {
		return nil, fmt.Errorf("failed to get card actions: %w", err)
	}
	return bc.FilterComments(actions), nil
}

// get issues a GET for path relative to the API base URL and decodes the body into target.
func (tc *TrelloClient) get(ctx context.Context, path string, target interface{}) error {
	if tc.Client == nil {
		return ErrNotInitialized
	}
	if err := tc.Client.WithContext(ctx).Get(path, trello.Defaults(), target); err != nil {
		return newRequestError(path, err)
	}
	return nil
}

func (tc *TrelloClient) log() hclog.Logger {
	if tc.logger == nil {
		return hclog.NewNullLogger()
	}
	return tc.logger
}

func (tc *TrelloClient) logError(msg string, err error) {
	tc.log().Error(msg, "board", tc.boardID, "error", err)
}
