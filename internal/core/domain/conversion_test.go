package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnchanged(t *testing.T) {
	result := Unchanged()
	assert.False(t, result.Changed)
	assert.Empty(t, result.Text)
}

func TestConverted(t *testing.T) {
	result := Converted("héllo")
	assert.True(t, result.Changed)
	assert.Equal(t, "héllo", result.Text)
}

func TestConverted_EmptyTextIsStillChanged(t *testing.T) {
	result := Converted("")
	assert.True(t, result.Changed)
	assert.Empty(t, result.Text)
}
