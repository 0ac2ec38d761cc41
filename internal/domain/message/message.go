// internal/domain/message/message.go
package message

import "time"

// Message is a single directed mur between two users. Murs carry no text
// body: the record itself is the message. Created once, never updated,
// never deleted.
type Message struct {
	ID          int64
	SenderID    int64 // reference to users.id
	RecipientID int64 // reference to users.id
	Timestamp   time.Time
}
