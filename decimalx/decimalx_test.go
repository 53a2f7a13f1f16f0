package decimalx_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kinrany/exemplars/decimalx"
)

func Test_Exemplar_IsOne(t *testing.T) {
	assert.True(t, decimalx.Exemplar().IsOne())
}

func Test_Exemplars_YieldsExactlyOneValue(t *testing.T) {
	var collected []decimal.Decimal
	for v := range decimalx.Exemplars() {
		collected = append(collected, v)
	}

	require.Len(t, collected, 1)
	assert.True(t, collected[0].IsOne())
}

func Test_Exemplar_IsIdempotent(t *testing.T) {
	assert.Equal(t, decimalx.Exemplar(), decimalx.Exemplar())
}
