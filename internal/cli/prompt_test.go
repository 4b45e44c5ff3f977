package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	result, err := confirm("anything")

	require.NoError(t, err)
	assert.True(t, result)
}

func TestPromptInt(t *testing.T) {
	answers := []string{" 42 "}
	n, err := promptInt(func(string) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}, "Calories")

	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestPromptIntPropagatesError(t *testing.T) {
	aborted := errors.New("user aborted")
	_, err := promptInt(func(string) (string, error) { return "", aborted }, "Calories")
	assert.ErrorIs(t, err, aborted)
}

func TestNewPromptKitIsComplete(t *testing.T) {
	kit := NewPromptKit()
	assert.NotNil(t, kit.Prompt)
	assert.NotNil(t, kit.Confirm)
	assert.NotNil(t, kit.Select)
	assert.NotNil(t, kit.Password)
}
