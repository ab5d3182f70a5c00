package board

import (
	"context"

	"github.com/google/uuid"
)

// AvatarSize is the edge length in pixels of a member avatar image.
// The avatar host serves 30, 50 and 170; other values are passed through unchecked.
type AvatarSize int

const (
	AvatarSmall  AvatarSize = 30
	AvatarMedium AvatarSize = 50
	AvatarLarge  AvatarSize = 170

	// DefaultAvatarSize is used when a zero size is requested.
	DefaultAvatarSize = AvatarLarge
)

// CommentActionType is the action type the board service records for card comments.
const CommentActionType = "commentCard"

// Lists defines read access to the cached lists (columns) of a board.
type Lists interface {
	// ListAll returns every cached list in the order the server returned them.
	ListAll() []List
	// ListsByName returns the cached lists whose name equals one of names exactly.
	ListsByName(names ...string) []List
	// ListKeyByName returns the position of the first cached list named name.
	// The position is only valid until the next refresh.
	ListKeyByName(name string) (int, bool)
}

// Members defines read access to the cached members of a board.
type Members interface {
	// MembersAll returns every cached member.
	MembersAll() []Member
	// MembersByUsername returns the cached members whose username equals one of usernames exactly.
	MembersByUsername(usernames ...string) []Member
	// MemberAvatarURL resolves the avatar image URL of a member.
	MemberAvatarURL(ctx context.Context, memberID string, size AvatarSize) (string, error)
}

// Cards defines on-demand (uncached) card reads.
type Cards interface {
	// CardsForLists fetches the cards of each list; the result has one entry per input list, in order.
	CardsForLists(ctx context.Context, lists []List) ([][]Card, error)
	// CardComments fetches the comment actions of a card.
	CardComments(ctx context.Context, cardID string) ([]Action, error)
}

// BoardClient is the main dependency injection interface for board connectors.
type BoardClient interface {
	Lists
	Members
	Cards

	// BoardID returns the identifier of the board the client is bound to.
	BoardID() string
	// SnapshotID identifies the current contents of the list and member cache.
	SnapshotID() uuid.UUID
	// RefreshListsAndMembers refetches lists and members, replacing the cache.
	RefreshListsAndMembers(ctx context.Context) error
}
