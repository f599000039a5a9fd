package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileSchemaJSON is the request schema for a user profile.
const ProfileSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {"type": "string", "minLength": 1, "maxLength": 100, "pattern": "\\S"}
    },
    "experience": {"type": "string", "enum": ["", "none", "beginner", "intermediate", "expert"]},
    "location": {"type": "string", "enum": ["", "urban", "semi-urban", "rural"]},
    "businessType": {"type": "string", "enum": ["", "goods", "service", "both"]},
    "workEnvironment": {"type": "string", "enum": ["", "solo", "team"]}
  }
}`

// ContactSchemaJSON is the request schema for a mentor contact message.
const ContactSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "email", "message"],
  "properties": {
    "mentorId": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1, "maxLength": 120},
    "email": {"type": "string", "format": "email"},
    "phone": {"type": "string", "pattern": "^\\+?[0-9 ()-]{7,20}$"},
    "message": {"type": "string", "minLength": 1, "maxLength": 2000},
    "businessName": {"type": "string", "maxLength": 200}
  }
}`

// ResponseSchemaJSON bounds what a recommendation response may contain before
// it leaves a worker.
const ResponseSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["requestId", "generatedAt", "algorithm", "recommendations", "modelInfo"],
  "properties": {
    "requestId": {"type": "string", "minLength": 1},
    "generatedAt": {"type": "string", "format": "date-time"},
    "algorithm": {"type": "string", "enum": ["default", "ml"]},
    "recommendations": {
      "type": "array",
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["id", "name", "type", "confidenceScore", "guidance", "financials", "workforcePlan"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "type": {"type": "string", "enum": ["goods", "service", "both"]},
          "confidenceScore": {"type": "integer", "minimum": 65, "maximum": 98},
          "skillScore": {"type": "number", "minimum": 0.25, "maximum": 1},
          "workforcePlan": {
            "type": "object",
            "required": ["initialTeamSize", "roles", "growthPlan"],
            "properties": {"initialTeamSize": {"type": "integer", "minimum": 1}}
          }
        }
      }
    },
    "modelInfo": {
      "type": "object",
      "required": ["model", "accuracy"]
    }
  }
}`

var (
	profileSchema  = mustCompile(ProfileSchemaJSON)
	contactSchema  = mustCompile(ContactSchemaJSON)
	responseSchema = mustCompile(ResponseSchemaJSON)
)

func mustCompile(schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("validation: compile schema: %v", err))
	}
	return schema
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateProfile checks a decoded JSON document against ProfileSchemaJSON.
func ValidateProfile(doc interface{}) *ValidationResult {
	return validate(profileSchema, doc)
}

// ValidateContactRequest checks a decoded JSON document against ContactSchemaJSON.
func ValidateContactRequest(doc interface{}) *ValidationResult {
	return validate(contactSchema, doc)
}

// ValidateResponse checks an outgoing recommendation response.
func ValidateResponse(resp models.RecommendationResponse) *ValidationResult {
	return validate(responseSchema, resp)
}

func validate(schema *gojsonschema.Schema, doc interface{}) *ValidationResult {
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: err.Error(),
			Code:    "INVALID_DOCUMENT",
		}}}
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldName(re),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	sort.SliceStable(out.Errors, func(i, j int) bool { return out.Errors[i].Field < out.Errors[j].Field })
	return out
}

// fieldName reports missing required properties under their own name rather than "(root)".
func fieldName(re gojsonschema.ResultError) string {
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if re.Field() == gojsonschema.STRING_CONTEXT_ROOT {
				return prop
			}
			return re.Field() + "." + prop
		}
	}
	return re.Field()
}

// GetErrorMessages returns "field: message" for every error.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) HasErrors(field string) bool {
	return len(vr.GetErrorsForField(field)) > 0
}

// GetErrorsForField returns the errors on field and on anything nested under it.
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// AsError converts a failed result into a VALIDATION_FAILED error, or nil.
func (vr *ValidationResult) AsError(subject string) error {
	if vr.Valid {
		return nil
	}
	return apperrors.NewValidationFailedError(
		fmt.Sprintf("%s failed schema validation", subject),
		vr.GetErrorMessages(),
	)
}

// DecodeProfile validates raw and converts it into a UserProfile.
func DecodeProfile(raw map[string]interface{}) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := ValidateProfile(raw).AsError("profile"); err != nil {
		return profile, err
	}
	if err := remarshal(raw, &profile); err != nil {
		return profile, apperrors.NewValidationFailedError(err.Error(), nil)
	}
	profile.BusinessType = profile.BusinessType.Normalize()
	return profile, nil
}

// DecodeContactRequest validates raw and converts it into a ContactRequest.
func DecodeContactRequest(raw map[string]interface{}) (models.ContactRequest, error) {
	var req models.ContactRequest
	if err := ValidateContactRequest(raw).AsError("contact request"); err != nil {
		return req, err
	}
	if err := remarshal(raw, &req); err != nil {
		return req, apperrors.NewValidationFailedError(err.Error(), nil)
	}
	return req, nil
}

func remarshal(in interface{}, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
