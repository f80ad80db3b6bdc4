package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("accumulates in order", func(t *testing.T) {
		c := New()
		c.Error(Coordinate{Enum: "A"}, errors.New("first"))
		c.Warn(Coordinate{Enum: "B"}, errors.New("second"))
		c.Error(Coordinate{Enum: "C"}, errors.New("third"))

		require.Len(t, c.Records(), 3)
		assert.Equal(t, 2, c.ErrorCount())
		assert.True(t, c.HasErrors())
		assert.Equal(t, "A", c.Records()[0].Coord.Enum)
		assert.Equal(t, "C", c.Records()[2].Coord.Enum)
	})

	t.Run("warnings alone are not errors", func(t *testing.T) {
		c := New()
		c.Warn(Coordinate{}, errors.New("heads up"))

		assert.False(t, c.HasErrors())
		assert.NoError(t, c.Err())
		assert.Len(t, c.Records(), 1)
		assert.Empty(t, c.Errors())
	})

	t.Run("Err joins error records only", func(t *testing.T) {
		sentinel := errors.New("boom")
		c := New()
		c.Warn(Coordinate{}, errors.New("warn"))
		c.Error(Coordinate{Enum: "A", Variant: "X"}, sentinel)

		err := c.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Contains(t, err.Error(), "enum A, variant X")
		assert.NotContains(t, err.Error(), "warn")
	})

	t.Run("Merge keeps counts", func(t *testing.T) {
		a := New()
		a.Error(Coordinate{}, errors.New("one"))
		b := New()
		b.Error(Coordinate{}, errors.New("two"))
		b.Warn(Coordinate{}, errors.New("three"))

		a.Merge(b)
		assert.Equal(t, 2, a.ErrorCount())
		assert.Len(t, a.Records(), 3)
	})
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "", Coordinate{}.String())
	assert.Equal(t, "interface Column, property header", Coordinate{Interface: "Column", Property: "header"}.String())
	assert.Equal(t,
		"interface Column, enum ReportColumn, variant Amount, property header",
		Coordinate{Interface: "Column", Enum: "ReportColumn", Variant: "Amount", Property: "header"}.String(),
	)
}

func TestRecordString(t *testing.T) {
	r := Record{Severity: Error, Coord: Coordinate{Enum: "A"}, Err: errors.New("bad")}
	assert.Equal(t, "error: enum A: bad", r.String())

	r = Record{Severity: Warning, Err: errors.New("odd")}
	assert.Equal(t, "warning: odd", r.String())
}
