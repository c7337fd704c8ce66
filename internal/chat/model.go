package chat

import "time"

// Channel is a named conversation. Unread, LastMessage, LastMessageTime,
// Online and Typing are denormalized display state; LastMessage and
// LastMessageTime are overwritten as a side effect of sending a message
// and are not independently authoritative.
type Channel struct {
	ID              string
	Name            string
	Type            string // "team", "campus_leads" or "general"
	Unread          int
	LastMessage     string
	LastMessageTime string
	Online          bool
	Typing          bool
	CreatedAt       time.Time
}

// Message is one entry in a channel's chronological history. Display
// fields (Timestamp, Time, Date) are computed once at send time. File
// fields are opaque strings supplied by the caller.
type Message struct {
	ID        string
	ChannelID string
	Sender    string
	Role      string
	Content   string
	Timestamp string // "03:04 PM"
	Time      string // "15:04"
	Date      string // "2006-01-02"
	Read      bool
	Starred   bool
	FileName  *string
	FileType  *string
	FileURL   *string
	ReplyToID *string
}
