package domain

// User is an account identity. UserID is the external identifier carried
// in tokens and message rows; RecordID stays internal to the store.
// Password holds the bcrypt digest, never the plaintext.
type User struct {
	AuditFields

	UserID   string `json:"userId" gorm:"size:36;uniqueIndex;not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
}
