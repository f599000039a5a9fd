// internal/workers/recommendation/validate-user-profile/models.go
package validateuserprofile

import "business-recommender/internal/models"

// Input carries the profile exactly as the user submitted it.
type Input struct {
	Profile   map[string]interface{} `json:"profile"`
	Algorithm string                 `json:"algorithm"`
}

type Output struct {
	Profile   models.UserProfile `json:"profile"`
	Algorithm models.Algorithm   `json:"algorithm"`
	Valid     bool               `json:"valid"`
}
