package domain

// Message sender markers, persisted as single-character codes.
const (
	SenderUser = "U"
	SenderAI   = "A"
)

// MaxMessageContentLength bounds the content accepted on message creation.
const MaxMessageContentLength = 10000

// Message is one chat entry, either a user's message or the advice
// generated in response to it. Messages belong to exactly one user.
type Message struct {
	AuditFields

	MessageID string `json:"-" gorm:"size:36;uniqueIndex;not null"`
	UserID    string `json:"-" gorm:"size:36;index;not null"`
	Content   string `json:"content" gorm:"type:text;not null"`
	Sender    string `json:"sender" gorm:"size:2;not null"`
}
