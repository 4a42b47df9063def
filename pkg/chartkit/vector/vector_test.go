package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Arithmetic(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(0.5, 0.5)

	assert.Equal(t, Vector{1.5, 2.5, 3}, a.Add(b))
	assert.Equal(t, Vector{0.5, 1.5, 3}, a.Sub(b))
	assert.Equal(t, Vector{-0.5, -1.5, -3}, b.Sub(a))
	assert.Equal(t, Vector{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 14.0, a.MagnitudeSquared())
	assert.Equal(t, 6.0, a.Sum())

	// Operands are unchanged.
	assert.Equal(t, Vector{1, 2, 3}, a)
	assert.Equal(t, Vector{0.5, 0.5}, b)
}

func TestVector_CloneAndAt(t *testing.T) {
	var nilVec Vector
	c := nilVec.Clone()
	assert.NotNil(t, c)
	assert.Equal(t, 0, c.Len())

	v := Of(4, 5)
	assert.Equal(t, 4.0, v.At(0))
	assert.Equal(t, 0.0, v.At(2))
	assert.Equal(t, 0.0, v.At(-1))
	assert.Equal(t, 5.0, v.Last())
	assert.Equal(t, 0.0, Vector{}.Last())
}

func TestVector_Equal(t *testing.T) {
	assert.True(t, Of(1, 2).Equal(Of(1, 2)))
	assert.False(t, Of(1, 2).Equal(Of(1, 2, 0)))
	assert.True(t, Of(1, 2).EqualApprox(Of(1+1e-12, 2), 1e-9))
	assert.False(t, Of(1).EqualApprox(Of(1, 1), 1e-9))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "[0.50 1.00]", Of(0.5, 1).String())
	assert.Equal(t, "[]", Vector{}.String())
}
