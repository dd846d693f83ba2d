package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultKind(t *testing.T) {
	assert.Equal(t, KindNull, Result(nil).Kind())
	assert.Equal(t, KindNull, Result(`null`).Kind())
	assert.Equal(t, KindString, Result(`"0xabc"`).Kind())
	assert.Equal(t, KindBool, Result(`true`).Kind())
	assert.Equal(t, KindBool, Result(` false`).Kind())
	assert.Equal(t, KindNumber, Result(`123`).Kind())
	assert.Equal(t, KindNumber, Result(`-1.5`).Kind())
	assert.Equal(t, KindArray, Result(`[]`).Kind())
	assert.Equal(t, KindObject, Result(`{}`).Kind())
}

func TestResultAsString(t *testing.T) {
	s, err := Result(`"0xabc"`).AsString("m")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", s)

	_, err = Result(`123`).AsString("m")
	var resultErr *UnexpectedResultTypeError
	require.ErrorAs(t, err, &resultErr)
	assert.Equal(t, &UnexpectedResultTypeError{Method: "m", Expected: "string", Actual: "number"}, resultErr)
}

func TestResultAsBool(t *testing.T) {
	v, err := Result(`true`).AsBool("m")
	require.NoError(t, err)
	assert.True(t, v)

	var resultErr *UnexpectedResultTypeError
	_, err = Result(`"true"`).AsBool("m")
	require.ErrorAs(t, err, &resultErr)
	assert.Equal(t, "string", resultErr.Actual)

	_, err = Result(nil).AsBool("m")
	require.ErrorAs(t, err, &resultErr)
	assert.Equal(t, "null", resultErr.Actual)
}

func TestResultAsStrings(t *testing.T) {
	v, err := Result(`["a","b"]`).AsStrings("m")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	var resultErr *UnexpectedResultTypeError
	_, err = Result(`[1,2]`).AsStrings("m")
	require.ErrorAs(t, err, &resultErr)
	assert.Equal(t, "array", resultErr.Expected)
}
