package trelloClient

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoAvatarHash is returned when the avatar hash response holds no usable value.
	ErrNoAvatarHash = errors.New("avatar hash not found in response")
	// ErrNotInitialized is returned by network calls on a client not built with NewTrelloClient.
	ErrNotInitialized = errors.New("trello client not initialized")
)

// ErrorKind classifies a failed upstream call.
type ErrorKind int

const (
	// KindTransport covers connection failures, timeouts and non-2xx responses.
	KindTransport ErrorKind = iota + 1
	// KindDecode covers response bodies that are not the expected JSON.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RequestError wraps a failed GET against the Trello API.
type RequestError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("trello %s error on %s: %v", e.Kind, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(path string, err error) *RequestError {
	kind := KindTransport
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		kind = KindDecode
	}
	return &RequestError{Kind: kind, Path: path, Err: err}
}

// IsTransportError reports whether err comes from a call that could not complete.
func IsTransportError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == KindTransport
}

// IsDecodeError reports whether err comes from an undecodable response body.
func IsDecodeError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == KindDecode
}
