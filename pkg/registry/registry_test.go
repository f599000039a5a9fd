package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	reg := Default()
	require.NoError(t, reg.Validate())
	assert.Len(t, reg.Activities, 7)

	a, ok := reg.Find("record-recommendation")
	require.True(t, ok)
	assert.Equal(t, 3, a.Retries)
	assert.Equal(t, []string{WorkflowRecommendation}, a.Workflows)
	assert.Equal(t, "completed", a.ImplementationStatus)

	contact, ok := reg.Find("contact-mentor")
	require.True(t, ok)
	assert.Equal(t, []string{WorkflowMentorContact}, contact.Workflows)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "activity-registry.json")

	require.NoError(t, Default().Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.NoError(t, loaded.Validate())
	assert.Equal(t, Default().Activities[0].ID, loaded.Activities[0].ID)
}

func TestValidate(t *testing.T) {
	valid := Activity{ID: "a", DisplayName: "A", TaskType: "a", Category: "c", Timeout: "5s"}

	tests := []struct {
		name       string
		activities []Activity
		wantErr    string
	}{
		{name: "empty", wantErr: "no activities"},
		{name: "missing id", activities: []Activity{{DisplayName: "A"}}, wantErr: "ID"},
		{name: "duplicate id", activities: []Activity{valid, valid}, wantErr: "duplicate activity ID"},
		{
			name: "duplicate task type",
			activities: []Activity{valid, {ID: "b", DisplayName: "B", TaskType: "a", Category: "c"}},
			wantErr:    "duplicate task type",
		},
		{name: "missing category", activities: []Activity{{ID: "a", DisplayName: "A", TaskType: "a"}}, wantErr: "Category"},
		{name: "bad timeout", activities: []Activity{{ID: "a", DisplayName: "A", TaskType: "a", Category: "c", Timeout: "soon"}}, wantErr: "timeout"},
		{name: "valid", activities: []Activity{valid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ActivityRegistry{Activities: tt.activities}).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMissing(t *testing.T) {
	reg := Default()
	assert.Empty(t, reg.Missing("build-response", "contact-mentor"))
	assert.Equal(t, []string{"send-notification"}, reg.Missing("build-response", "send-notification"))
}

func TestOpen_MissingFileGivesEmptyRegistry(t *testing.T) {
	reg, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, reg.Activities)
}

func TestAdd(t *testing.T) {
	reg := Default()

	require.NoError(t, reg.Add(Activity{ID: "score-audit", DisplayName: "Score Audit", TaskType: "score-audit"}))
	a, ok := reg.Find("score-audit")
	require.True(t, ok)
	assert.Equal(t, CategoryRecommendation, a.Category)
	assert.Equal(t, "10s", a.Timeout)
	assert.Equal(t, "planned", a.ImplementationStatus)
	assert.Equal(t, []string{WorkflowRecommendation}, a.Workflows)
	assert.NotEmpty(t, reg.LastUpdated)
	assert.NoError(t, reg.Validate())

	require.NoError(t, reg.Add(Activity{ID: "mentor-followup", DisplayName: "Follow up", TaskType: "mentor-followup", Category: CategoryCommunication}))
	f, _ := reg.Find("mentor-followup")
	assert.Equal(t, []string{WorkflowMentorContact}, f.Workflows)

	assert.Error(t, reg.Add(Activity{ID: "score-audit", DisplayName: "Again", TaskType: "other"}))
	assert.Error(t, reg.Add(Activity{ID: "dup-type", DisplayName: "Dup", TaskType: "build-response"}))
}

func TestSet(t *testing.T) {
	reg := Default()

	require.NoError(t, reg.Set("build-response", "status", "verified"))
	require.NoError(t, reg.Set("build-response", "retries", "4"))
	require.NoError(t, reg.Set("build-response", "timeout", "45s"))
	a, _ := reg.Find("build-response")
	assert.Equal(t, "verified", a.ImplementationStatus)
	assert.Equal(t, 4, a.Retries)
	assert.Equal(t, "45s", a.Timeout)

	assert.ErrorIs(t, reg.Set("missing", "status", "x"), ErrActivityNotFound)
	assert.Error(t, reg.Set("build-response", "retries", "-1"))
	assert.Error(t, reg.Set("build-response", "timeout", "soon"))
	assert.Error(t, reg.Set("build-response", "color", "red"))
}

func TestTaskTypes(t *testing.T) {
	types := Default().TaskTypes()
	assert.Len(t, types, 7)
	assert.Contains(t, types, "validate-user-profile")
	assert.Contains(t, types, "contact-mentor")
}
