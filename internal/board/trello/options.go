package trelloClient

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

const (
	DefaultBaseURL       = "https://api.trello.com/1"
	DefaultAvatarBaseURL = "https://trello-avatars.s3.amazonaws.com"
	DefaultTimeout       = 30 * time.Second
	DefaultConcurrency   = 4
)

// Options configures a TrelloClient. APIKey, Token and BoardID are required.
type Options struct {
	APIKey  string
	Token   string
	BoardID string

	// BaseURL of the REST API, including the version segment.
	// Default: DefaultBaseURL
	BaseURL string

	// AvatarBaseURL is the host avatar image URLs are built on.
	// Default: DefaultAvatarBaseURL
	AvatarBaseURL string

	// Timeout applied to each HTTP request.
	// Default: DefaultTimeout
	Timeout time.Duration

	// Concurrency bounds the parallel card fetches of CardsForLists.
	// Default: DefaultConcurrency
	Concurrency int

	Logger hclog.Logger
}

// Validate checks if the options are usable.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.APIKey, validation.Required),
		validation.Field(&o.Token, validation.Required),
		validation.Field(&o.BoardID, validation.Required),
		validation.Field(&o.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&o.Concurrency, validation.Min(0)),
	)
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.AvatarBaseURL == "" {
		o.AvatarBaseURL = DefaultAvatarBaseURL
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	return o
}
