package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationTypeApply(t *testing.T) {
	cases := []struct {
		name string
		a    ActivationType
		in   float64
		want float64
	}{
		{"linear", Linear, 2.5, 2.5},
		{"linear negative", Linear, -3.0, -3.0},
		{"relu positive", ReLU, 2.0, 2.0},
		{"relu negative", ReLU, -2.0, 0.0},
		{"relu zero", ReLU, 0.0, 0.0},
		{"sigmoid zero", Sigmoid, 0.0, 0.5},
		{"tanh zero", Tanh, 0.0, 0.0},
		{"softmax behaves linear", Softmax, 4.2, 4.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.a.Apply(c.in), 1e-9)
		})
	}
}

func TestSigmoidBounded(t *testing.T) {
	for _, x := range []float64{-50, -1, 0, 1, 50} {
		v := Sigmoid.Apply(x)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestTanhMatchesMath(t *testing.T) {
	assert.InDelta(t, math.Tanh(0.33), Tanh.Apply(0.33), 1e-12)
}

func TestActivationTypeFromName(t *testing.T) {
	for _, a := range []ActivationType{Linear, Sigmoid, Tanh, ReLU, Softmax} {
		parsed, ok := ActivationTypeFromName(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}
	_, ok := ActivationTypeFromName("BOGUS")
	assert.False(t, ok)
}

func TestMutableActivationTypesExcludesSoftmax(t *testing.T) {
	for _, a := range MutableActivationTypes {
		assert.NotEqual(t, Softmax, a)
	}
	assert.Len(t, MutableActivationTypes, 4)
}
