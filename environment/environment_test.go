package environment

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkarthik/quill/object"
)

func TestDefineAndGet(t *testing.T) {
	var diag bytes.Buffer
	env := New(nil)
	env.Define("x", object.Number{Value: 10})

	got := env.Get("x", &diag)
	require.Equal(t, object.Number{Value: 10}, got)
	assert.Empty(t, diag.String())
}

func TestGetWalksOutward(t *testing.T) {
	var diag bytes.Buffer
	global := New(nil)
	global.Define("x", object.Number{Value: 1})
	child := New(global)

	got := child.Get("x", &diag)
	assert.Equal(t, object.Number{Value: 1}, got)
}

func TestGetUndefinedIsLenient(t *testing.T) {
	var diag bytes.Buffer
	env := New(nil)

	got := env.Get("missing", &diag)
	assert.Equal(t, object.Absent{}, got)
	assert.Contains(t, diag.String(), "Undefined variable")
}

func TestGetUninitializedIsLenient(t *testing.T) {
	var diag bytes.Buffer
	env := New(nil)
	env.Define("x", object.Absent{})

	got := env.Get("x", &diag)
	assert.Equal(t, object.Absent{}, got)
	assert.Contains(t, diag.String(), "used before assignment")
}

func TestAssignUpdatesNearestBinding(t *testing.T) {
	var diag bytes.Buffer
	global := New(nil)
	global.Define("x", object.Number{Value: 1})
	child := New(global)

	child.Assign("x", object.Number{Value: 2}, &diag)

	assert.Equal(t, object.Number{Value: 2}, global.Get("x", &diag))
	assert.Empty(t, diag.String())
}

func TestAssignUndefinedIsLenientAndDoesNotDefine(t *testing.T) {
	var diag bytes.Buffer
	env := New(nil)

	env.Assign("never_declared", object.Number{Value: 1}, &diag)

	assert.Contains(t, diag.String(), "Can't (re-)assign undefined variable")
	got := env.Get("never_declared", &diag)
	assert.Equal(t, object.Absent{}, got, "assign to an undefined name must not define it")
}

func TestChildShadowsParentWithoutMutatingIt(t *testing.T) {
	var diag bytes.Buffer
	global := New(nil)
	global.Define("x", object.Number{Value: 1})
	child := New(global)
	child.Define("x", object.Number{Value: 99})

	assert.Equal(t, object.Number{Value: 99}, child.Get("x", &diag))
	assert.Equal(t, object.Number{Value: 1}, global.Get("x", &diag))
}
