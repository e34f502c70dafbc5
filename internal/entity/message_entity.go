package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeImage  MessageType = "image"
	MessageTypeFile   MessageType = "file"
	MessageTypeJson   MessageType = "json"
	MessageTypeSystem MessageType = "system"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeJson, MessageTypeSystem:
		return true
	}
	return false
}

type Message struct {
	Id        uuid.UUID
	SenderId  string
	ChatId    uuid.UUID
	SessionId uuid.UUID
	Timestamp time.Time
	Type      MessageType
	Text      *string
	Url       *string
	Json      map[string]interface{}
	Metadata  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidatePayload enforces the one-of payload contract: text and system
// messages carry text, image and file messages carry a url, json messages
// carry a json document. The other two slots must be empty.
func (m *Message) ValidatePayload() error {
	hasText := m.Text != nil && *m.Text != ""
	hasUrl := m.Url != nil && *m.Url != ""
	hasJson := len(m.Json) > 0

	populated := 0
	for _, ok := range []bool{hasText, hasUrl, hasJson} {
		if ok {
			populated++
		}
	}
	if populated != 1 {
		return errExactlyOnePayload
	}

	switch m.Type {
	case MessageTypeText, MessageTypeSystem:
		if !hasText {
			return errPayloadMismatch
		}
	case MessageTypeImage, MessageTypeFile:
		if !hasUrl {
			return errPayloadMismatch
		}
	case MessageTypeJson:
		if !hasJson {
			return errPayloadMismatch
		}
	default:
		return errPayloadMismatch
	}
	return nil
}
