package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "job-requirements")

	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobText}}")
	assert.Contains(t, prompt, "required_skills")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("extraction.json", "nonexistent-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "any-key")

	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "nonexistent-key")
	})
}

func TestAllPipelinePromptsPresent(t *testing.T) {
	keys := map[string][]string{
		"extraction.json": {"job-requirements-system", "job-requirements", "candidate-profile-system", "candidate-profile"},
		"scoring.json":    {"semantic-validation-system", "semantic-validation"},
		"recommend.json":  {"report-system", "report"},
	}

	for filename, fileKeys := range keys {
		for _, key := range fileKeys {
			_, err := Get(filename, key)
			assert.NoError(t, err, "%s/%s", filename, key)
		}
	}
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := "Analyze {{.JobText}} against {{.CVText}}"
	result := Format(template, map[string]string{
		"JobText": "the posting",
		"CVText":  "the resume",
	})

	assert.Equal(t, "Analyze the posting against the resume", result)
}

func TestFormat_RepeatedPlaceholder(t *testing.T) {
	result := Format("{{.X}} and {{.X}}", map[string]string{"X": "twice"})
	assert.Equal(t, "twice and twice", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "v"})
	assert.Equal(t, "v {{.Unknown}}", result)
}

func TestPromptsForbidMarkdown(t *testing.T) {
	// System prompts instruct the model to return bare JSON; the cleanup in
	// the llm package is a fallback, not the expected path.
	for _, key := range []string{"job-requirements-system", "candidate-profile-system"} {
		prompt, err := Get("extraction.json", key)
		require.NoError(t, err)
		assert.True(t, strings.Contains(prompt, "JSON"), key)
	}
}
