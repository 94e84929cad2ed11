package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidator_ValidateProjectName(t *testing.T) {
	pv := NewProjectValidator()

	t.Run("should accept a normal project name", func(t *testing.T) {
		assert.NoError(t, pv.ValidateProjectName("Website Redesign"))
	})

	t.Run("should reject an empty name as required", func(t *testing.T) {
		err := pv.ValidateProjectName("   ")
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Len(t, validationErr.Errors, 1)
		assert.Equal(t, "project_name", validationErr.Errors[0].Field)
		assert.Equal(t, ErrorTypeRequired, validationErr.Errors[0].Type)
	})

	t.Run("should reject a name over the length limit", func(t *testing.T) {
		err := pv.ValidateProjectName(strings.Repeat("x", 256))
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidLength, validationErr.Errors[0].Type)
	})
}

func TestProjectValidator_GetValidProjectName(t *testing.T) {
	pv := NewProjectValidator()

	name, err := pv.GetValidProjectName("  Website Redesign  ")
	require.NoError(t, err)
	assert.Equal(t, "Website Redesign", name)

	_, err = pv.GetValidProjectName("")
	assert.Error(t, err)
}

func TestProjectValidator_ValidateProjectID(t *testing.T) {
	pv := NewProjectValidator()

	assert.NoError(t, pv.ValidateProjectID(1))
	assert.Error(t, pv.ValidateProjectID(0))
	assert.Error(t, pv.ValidateProjectID(-5))
}
