// pkg/registry/default.go
package registry

import "time"

// Default returns the activities served by cmd/recommender. The
// registry-updater tool writes it out with the init command.
func Default() *ActivityRegistry {
	profileErrors := []string{"PROFILE_INVALID"}
	recommendation := []string{WorkflowRecommendation}

	reg := &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Activities: []Activity{
			{
				ID:           "validate-user-profile",
				DisplayName:  "Validate User Profile",
				Description:  "Checks the submitted profile and resolves the algorithm hint",
				Category:     CategoryRecommendation,
				TaskType:     "validate-user-profile",
				InputSchema:  objectSchema("profile", "algorithm"),
				OutputSchema: objectSchema("profile", "algorithm", "valid"),
				ErrorCodes:   profileErrors,
				Timeout:      "5s",
				Tags:         []string{"validation"},
			},
			{
				ID:           "generate-business-ideas",
				DisplayName:  "Generate Business Ideas",
				Description:  "Produces candidate templates from the profile's skills",
				Category:     CategoryRecommendation,
				TaskType:     "generate-business-ideas",
				InputSchema:  objectSchema("profile"),
				OutputSchema: objectSchema("candidates", "strategy", "candidateCount"),
				ErrorCodes:   profileErrors,
				Timeout:      "5s",
				Tags:         []string{"engine"},
			},
			{
				ID:           "calculate-match-score",
				DisplayName:  "Calculate Match Score",
				Description:  "Scores every candidate against the profile",
				Category:     CategoryRecommendation,
				TaskType:     "calculate-match-score",
				InputSchema:  objectSchema("profile", "candidates", "algorithm"),
				OutputSchema: objectSchema("scoredCandidates", "algorithm"),
				ErrorCodes:   profileErrors,
				Timeout:      "5s",
				Tags:         []string{"engine"},
			},
			{
				ID:           "apply-relevance-ranking",
				DisplayName:  "Apply Relevance Ranking",
				Description:  "Filters weak matches and keeps the top three",
				Category:     CategoryRecommendation,
				TaskType:     "apply-relevance-ranking",
				InputSchema:  objectSchema("scoredCandidates"),
				OutputSchema: objectSchema("rankedCandidates", "rankedCount", "filteredCount"),
				Timeout:      "5s",
				Tags:         []string{"engine"},
			},
			{
				ID:           "build-response",
				DisplayName:  "Build Response",
				Description:  "Enriches ranked candidates and builds the response envelope",
				Category:     CategoryRecommendation,
				TaskType:     "build-response",
				InputSchema:  objectSchema("profile", "rankedCandidates", "algorithm", "strategy"),
				OutputSchema: objectSchema("response"),
				ErrorCodes:   []string{"PROFILE_INVALID", "INTERNAL_ERROR"},
				Timeout:      "10s",
				Tags:         []string{"enrichment"},
			},
			{
				ID:           "record-recommendation",
				DisplayName:  "Record Recommendation",
				Description:  "Appends the served response to the recommendation log",
				Category:     CategoryRecommendation,
				TaskType:     "record-recommendation",
				InputSchema:  objectSchema("profile", "response", "strategy"),
				OutputSchema: objectSchema("recordId", "recordSink"),
				ErrorCodes:   []string{"RECOMMENDATION_LOG_FAILED"},
				Timeout:      "10s",
				Retries:      3,
				Tags:         []string{"storage"},
			},
			{
				ID:           "contact-mentor",
				DisplayName:  "Contact Mentor",
				Description:  "Delivers a user's message to a mentor by email and SMS",
				Category:     CategoryCommunication,
				TaskType:     "contact-mentor",
				InputSchema:  objectSchema("mentorId", "contactRequest"),
				OutputSchema: objectSchema("contactResult"),
				ErrorCodes:   []string{"PROFILE_INVALID", "MENTOR_NOT_FOUND", "NOTIFICATION_SEND_FAILED"},
				Timeout:      "15s",
				Retries:      3,
				Workflows:    []string{WorkflowMentorContact},
				Tags:         []string{"notification", "aws"},
			},
		},
	}
	return reg.withDefaults(recommendation)
}

func (r *ActivityRegistry) withDefaults(workflows []string) *ActivityRegistry {
	for i := range r.Activities {
		fillDefaults(&r.Activities[i], workflows)
	}
	return r
}

func fillDefaults(a *Activity, workflows []string) {
	if a.Version == "" {
		a.Version = "1.0.0"
	}
	if a.ImplementationStatus == "" {
		a.ImplementationStatus = "completed"
	}
	if a.ErrorCodes == nil {
		a.ErrorCodes = []string{}
	}
	if a.Workflows == nil {
		a.Workflows = workflows
	}
}

func objectSchema(props ...string) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	for _, p := range props {
		properties[p] = map[string]interface{}{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
}
