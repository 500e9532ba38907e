// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

// stubRender swaps the glamour renderer for a passthrough so card content
// can be asserted without ANSI escapes.
func stubRender(t *testing.T) {
	t.Helper()

	orig := render
	render = func(in, stylePath string) (string, error) { return in, nil }
	t.Cleanup(func() { render = orig })
}

func TestGet(t *testing.T) {
	tests := []struct {
		id    Id
		title string
	}{
		{DefinitionsNotFoundId, "No definition files found"},
		{InvalidExtensionId, "Unrecognized definition file extension"},
		{MissingDefinitionId, "Missing definition file"},
		{UnrecognizedKindId, "Unrecognized definition kind"},
		{ToolNotFoundId, "Generation tool not found"},
		{ToolFailedId, "Generation tool failed"},
		{ConfigLoadFailedId, "Failed to load configuration"},
		{OutputWriteFailedId, "Failed to write build files"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			iss := Get(tt.id)
			if iss == nil {
				t.Fatalf("Get(%d) = nil", tt.id)
			}
			if iss.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", iss.Id(), tt.id)
			}
			if !strings.Contains(string(iss.MarkdownMsg()), tt.title) {
				t.Errorf("card %d does not carry its title %q", tt.id, tt.title)
			}
		})
	}
}

func TestGet_UnknownId(t *testing.T) {
	if iss := Get(Id(9999)); iss != nil {
		t.Errorf("Get(9999) = %v, want nil", iss)
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) != 8 {
		t.Fatalf("Values() returned %d issues, want 8", len(issues))
	}

	for i, iss := range issues {
		if i > 0 && issues[i-1].Id() >= iss.Id() {
			t.Errorf("Values() not ordered by id: %d before %d", issues[i-1].Id(), iss.Id())
		}
		if iss.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty card", iss.Id())
		}
	}
}

// Every card must leave the user with something to do next.
func TestValues_AllCardsSuggestRemediation(t *testing.T) {
	for _, iss := range Values() {
		if !strings.Contains(string(iss.MarkdownMsg()), "Things you can try") {
			t.Errorf("card %d offers no remediation section", iss.Id())
		}
	}
}

func TestRender(t *testing.T) {
	// Not parallel: stubRender swaps the package-level render func.
	stubRender(t)

	for _, iss := range Values() {
		rendered, err := iss.Render("")
		if err != nil {
			t.Errorf("Render() for issue %d: %v", iss.Id(), err)
			continue
		}
		if rendered != string(iss.MarkdownMsg()) {
			t.Errorf("Render() for issue %d did not pass the card through", iss.Id())
		}
	}
}

func TestRender_ToolFailedMentionsExitCode(t *testing.T) {
	// Not parallel: stubRender swaps the package-level render func.
	stubRender(t)

	rendered, err := Get(ToolFailedId).Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rendered, "exit code") {
		t.Errorf("tool-failed card should explain the exit code:\n%s", rendered)
	}
}
