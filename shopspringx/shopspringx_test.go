package shopspringx_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kinrany/exemplars/shopspringx"
)

func Test_Exemplar_IsOne(t *testing.T) {
	assert.True(t, shopspringx.Exemplar().Equal(decimal.New(1, 0)))
}

func Test_Exemplars_YieldsExactlyOneValue(t *testing.T) {
	var collected []decimal.Decimal
	for v := range shopspringx.Exemplars() {
		collected = append(collected, v)
	}

	require.Len(t, collected, 1)
	assert.True(t, collected[0].Equal(decimal.New(1, 0)))
}

func Test_Exemplar_IsIdempotent(t *testing.T) {
	assert.True(t, shopspringx.Exemplar().Equal(shopspringx.Exemplar()))
}
