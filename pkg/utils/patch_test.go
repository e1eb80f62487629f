package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentFields(t *testing.T) {
	sent, err := SentFields([]byte(`{"name": "Acme", "website": null}`))
	require.NoError(t, err)

	// Присланный null тоже считается присланным полем.
	assert.Contains(t, sent, "name")
	assert.Contains(t, sent, "website")
	assert.NotContains(t, sent, "description")
}

func TestSentFields_EmptyObject(t *testing.T) {
	sent, err := SentFields([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSentFields_InvalidJSON(t *testing.T) {
	_, err := SentFields([]byte(`{"name":`))
	assert.Error(t, err)
}
