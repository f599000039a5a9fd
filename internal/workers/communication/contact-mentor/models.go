// internal/workers/communication/contact-mentor/models.go
package contactmentor

import "business-recommender/internal/models"

// Input is the contact form as submitted. A top-level mentorId overrides the
// one inside the form.
type Input struct {
	MentorID       string                 `json:"mentorId"`
	ContactRequest map[string]interface{} `json:"contactRequest"`
}

type Output struct {
	ContactResult *models.ContactResult `json:"contactResult"`
}
