package enumgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewSettingError("weight", "preset", "Shuffle", "unknown preset")

		assert.Contains(t, err.Error(), "enumgen: invalid setting")
		assert.Contains(t, err.Error(), `"preset"`)
		assert.Contains(t, err.Error(), "property weight")
		assert.Contains(t, err.Error(), "Shuffle")
		assert.Contains(t, err.Error(), "unknown preset")
	})

	t.Run("Missing variant selects the other sentinel", func(t *testing.T) {
		err := NewMissingSettingError("kind", "kind", "numeric properties declare a width")

		assert.Contains(t, err.Error(), "enumgen: missing required setting")
		assert.True(t, errors.Is(err, ErrMissingRequiredSetting))
		assert.False(t, errors.Is(err, ErrInvalidSetting))
	})

	t.Run("Is matches ErrInvalidSetting", func(t *testing.T) {
		err := NewSettingError("weight", "start", 5, "requires the Serial preset")
		assert.True(t, errors.Is(err, ErrInvalidSetting))
		assert.True(t, IsInvalidSetting(err))
		assert.False(t, IsMissingRequiredSetting(err))
	})
}

func TestDuplicatePropertyError(t *testing.T) {
	err := NewDuplicatePropertyError("Column", "header")

	assert.Contains(t, err.Error(), `duplicate property "header"`)
	assert.Contains(t, err.Error(), "interface Column")
	assert.True(t, IsDuplicateProperty(err))
	assert.False(t, IsDuplicateProperty(errors.New("other")))
}

func TestTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("ReportColumn", "Amount", "width", "uint", "wide")

	assert.Contains(t, err.Error(), "enumgen: type mismatch")
	assert.Contains(t, err.Error(), "property width")
	assert.Contains(t, err.Error(), "ReportColumn::Amount")
	assert.Contains(t, err.Error(), "want uint")
	assert.True(t, IsTypeMismatch(err))
}

func TestUnsupportedPresetError(t *testing.T) {
	err := NewUnsupportedPresetError("label", "Ordinal", "string")

	assert.Contains(t, err.Error(), `unsupported preset "Ordinal"`)
	assert.Contains(t, err.Error(), "string property label")
	assert.True(t, IsUnsupportedPreset(err))
}

func TestMissingValueError(t *testing.T) {
	err := NewMissingValueError("ReportColumn", "Amount", "header")

	assert.Equal(t, `enumgen: missing value for property "header" on ReportColumn::Amount`, err.Error())
	assert.True(t, IsMissingValue(err))
	assert.False(t, IsMissingValue(ErrTypeMismatch))
}

func TestUnresolvedRelationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewUnresolvedRelationError("Parent", "First", "children", "Child", "dependency cycle")

		assert.Contains(t, err.Error(), `unresolved relation "children"`)
		assert.Contains(t, err.Error(), "Parent::First")
		assert.Contains(t, err.Error(), "target: Child")
		assert.Contains(t, err.Error(), "dependency cycle")
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := NewUnresolvedRelationError("A", "", "rel", "B", "")
		assert.True(t, IsUnresolvedRelation(err))
	})
}
