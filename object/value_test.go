package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Nil{}))
	assert.False(t, IsTruthy(Number{Value: 0}))
	assert.True(t, IsTruthy(Number{Value: 0.5}))
	assert.True(t, IsTruthy(Number{Value: -1}))
	assert.False(t, IsTruthy(Boolean{Value: false}))
	assert.True(t, IsTruthy(Boolean{Value: true}))
	assert.True(t, IsTruthy(String{Value: ""}), "empty string is truthy")
	assert.True(t, IsTruthy(Absent{}))
}

func TestEqualNilRules(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.False(t, Equal(Nil{}, Number{Value: 0}))
	assert.False(t, Equal(Number{Value: 0}, Nil{}))
}

func TestEqualByValue(t *testing.T) {
	assert.True(t, Equal(Number{Value: 1}, Number{Value: 1}))
	assert.False(t, Equal(Number{Value: 1}, Number{Value: 2}))
	assert.True(t, Equal(String{Value: "a"}, String{Value: "a"}))
	assert.False(t, Equal(String{Value: "a"}, Number{Value: 1}))
	assert.True(t, Equal(Boolean{Value: true}, Boolean{Value: true}))
}

func TestNumberStringKeepsTrailingZero(t *testing.T) {
	assert.Equal(t, "7.0", Number{Value: 7}.String())
	assert.Equal(t, "1.5", Number{Value: 1.5}.String())
}

func TestNumberTruncated(t *testing.T) {
	assert.Equal(t, int64(5), Number{Value: 5.9}.Truncated())
	assert.Equal(t, int64(-5), Number{Value: -5.9}.Truncated())
}

func TestAbsentStringIsEmpty(t *testing.T) {
	assert.Equal(t, "", Absent{}.String())
}
