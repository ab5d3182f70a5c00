package board

import (
	"encoding/json"
	"fmt"
)

// List represents a board column. Raw holds the item exactly as the server sent it.
type List struct {
	ID   string
	Name string
	Raw  json.RawMessage
}

// Member represents a board member.
type Member struct {
	ID       string
	Username string
	FullName string
	Raw      json.RawMessage
}

// Card represents a card inside a list.
type Card struct {
	ID     string
	Name   string
	ListID string
	Raw    json.RawMessage
}

// Action represents an event recorded on a card, such as a comment.
type Action struct {
	ID              string
	Type            string
	Date            string
	MemberCreatorID string

	// Text is the comment body for comment actions and empty otherwise.
	Text string
	Raw  json.RawMessage
}

func (l *List) UnmarshalJSON(data []byte) error {
	var v struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode list: %w", err)
	}
	*l = List{ID: v.ID, Name: v.Name, Raw: cloneRaw(data)}
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	return marshalRaw(l.Raw, struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{l.ID, l.Name})
}

func (m *Member) UnmarshalJSON(data []byte) error {
	var v struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		FullName string `json:"fullName"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode member: %w", err)
	}
	*m = Member{ID: v.ID, Username: v.Username, FullName: v.FullName, Raw: cloneRaw(data)}
	return nil
}

func (m Member) MarshalJSON() ([]byte, error) {
	return marshalRaw(m.Raw, struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		FullName string `json:"fullName,omitempty"`
	}{m.ID, m.Username, m.FullName})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var v struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		ListID string `json:"idList"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode card: %w", err)
	}
	*c = Card{ID: v.ID, Name: v.Name, ListID: v.ListID, Raw: cloneRaw(data)}
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	return marshalRaw(c.Raw, struct {
		ID     string `json:"id"`
		Name   string `json:"name,omitempty"`
		ListID string `json:"idList,omitempty"`
	}{c.ID, c.Name, c.ListID})
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var v struct {
		ID              string `json:"id"`
		Type            string `json:"type"`
		Date            string `json:"date"`
		MemberCreatorID string `json:"idMemberCreator"`
		Data            struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode action: %w", err)
	}
	*a = Action{
		ID:              v.ID,
		Type:            v.Type,
		Date:            v.Date,
		MemberCreatorID: v.MemberCreatorID,
		Text:            v.Data.Text,
		Raw:             cloneRaw(data),
	}
	return nil
}

func (a Action) MarshalJSON() ([]byte, error) {
	return marshalRaw(a.Raw, struct {
		ID   string `json:"id,omitempty"`
		Type string `json:"type"`
	}{a.ID, a.Type})
}

// cloneRaw copies data; the decoder reuses its buffer after UnmarshalJSON returns.
func cloneRaw(data []byte) json.RawMessage {
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out
}

// marshalRaw emits the server's bytes when present and the decoded fields otherwise.
func marshalRaw(raw json.RawMessage, fallback interface{}) ([]byte, error) {
	if len(raw) > 0 {
		return raw, nil
	}
	return json.Marshal(fallback)
}
