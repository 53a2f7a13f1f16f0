package apdv3_test

import (
	"testing"

	apd "github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kinrany/exemplars/apdv3"
)

func Test_Exemplar_IsOne(t *testing.T) {
	one := apd.New(1, 0)

	assert.Zero(t, apdv3.Exemplar().Cmp(one))
}

func Test_Exemplars_YieldsExactlyOneValue(t *testing.T) {
	var collected []*apd.Decimal
	for v := range apdv3.Exemplars() {
		collected = append(collected, v)
	}

	require.Len(t, collected, 1)
	assert.Zero(t, collected[0].Cmp(apd.New(1, 0)))
}

func Test_Exemplars_ProducesFreshValuesPerConsumption(t *testing.T) {
	set := apdv3.Exemplars()

	var first, second *apd.Decimal
	for v := range set {
		first = v
	}
	for v := range set {
		second = v
	}

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}
