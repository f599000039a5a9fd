package registry

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrActivityNotFound = errors.New("activity not found")

// Open loads the registry at path, or returns an empty one when the file does
// not exist yet.
func Open(path string) (*ActivityRegistry, error) {
	reg, err := LoadRegistry(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ActivityRegistry{Version: "1.0.0", Activities: []Activity{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return reg, nil
}

// Add appends a, filling the defaults a recommendation task gets when the
// caller leaves them empty.
func (r *ActivityRegistry) Add(a Activity) error {
	for _, existing := range r.Activities {
		if existing.ID == a.ID {
			return fmt.Errorf("activity with ID %s already exists", a.ID)
		}
		if existing.TaskType == a.TaskType {
			return fmt.Errorf("task type %s already registered by %s", a.TaskType, existing.ID)
		}
	}
	if a.Category == "" {
		a.Category = CategoryRecommendation
	}
	if a.Timeout == "" {
		a.Timeout = "10s"
	}
	if a.InputSchema == nil {
		a.InputSchema = objectSchema()
	}
	if a.OutputSchema == nil {
		a.OutputSchema = objectSchema()
	}
	if a.ImplementationStatus == "" {
		a.ImplementationStatus = "planned"
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}

	var workflows []string
	if a.Category == CategoryCommunication {
		workflows = []string{WorkflowMentorContact}
	} else {
		workflows = []string{WorkflowRecommendation}
	}

	fillDefaults(&a, workflows)
	r.Activities = append(r.Activities, a)
	r.touch()
	return nil
}

// Set changes a single named field of the activity with the given ID.
func (r *ActivityRegistry) Set(id, field, value string) error {
	var a *Activity
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			a = &r.Activities[i]
			break
		}
	}
	if a == nil {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}

	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		a.Timeout = value
	case "retries":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid retries value %q", value)
		}
		a.Retries = n
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	r.touch()
	return nil
}

// TaskTypes lists the task types in registry order.
func (r *ActivityRegistry) TaskTypes() []string {
	out := make([]string, len(r.Activities))
	for i, a := range r.Activities {
		out[i] = a.TaskType
	}
	return out
}

func (r *ActivityRegistry) touch() {
	r.LastUpdated = time.Now().UTC().Format(time.RFC3339)
}
