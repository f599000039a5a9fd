// internal/models/contact.go
package models

// ContactRequest is a message from a user to a mentor.
type ContactRequest struct {
	MentorID     string `json:"mentorId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Message      string `json:"message"`
	BusinessName string `json:"businessName,omitempty"`
}

// ContactResult reports how a contact request was delivered. MailtoURL is
// always set so a client can fall back to the user's own mail program.
type ContactResult struct {
	ContactID string `json:"contactId"`
	MentorID  string `json:"mentorId"`
	MailtoURL string `json:"mailtoUrl"`
	EmailSent bool   `json:"emailSent"`
	SMSSent   bool   `json:"smsSent"`
	MessageID string `json:"messageId,omitempty"`
	SentAt    string `json:"sentAt"`
}
