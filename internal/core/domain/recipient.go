package domain

// Recipient is one institution contact row from the recipient source.
type Recipient struct {
	Institution string
	ContactName string
	// Emails holds the trimmed, de-blanked addresses from the source row.
	Emails []string
}
