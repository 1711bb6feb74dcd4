package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// resolveProjectID resolves user input to a project UUID. The input can be a
// short ID (case-insensitive), a full UUID, or a UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveItemID turns a dotted WBS reference into item_id form within the
// given project. References already in item_id form pass through.
func resolveItemID(projectID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item reference is required")
	}
	return domain.ResolveParentRef(projectID, input), nil
}
