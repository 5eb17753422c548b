package classfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classkit "github.com/reoring/classkit"
	"github.com/reoring/classkit/classfile"
)

const yamlDoc = `
classes:
  - name: Estimator
    params:
      - name: x
        type: number
      - name: tol
        type: number
        default: 0.001
        protected: true
    attrs:
      solver: lbfgs
    protect: [solver]
  - name: Ridge
    bases: [Estimator]
    params:
      - name: alpha
        type: number
        default: 1.0
`

func TestLoad_YAML(t *testing.T) {
	reg, err := classfile.Load([]byte(yamlDoc), classfile.YAML)
	require.NoError(t, err)
	require.Equal(t, []string{"Estimator", "Ridge"}, reg.Names())

	est, ok := reg.Get("Estimator")
	require.True(t, ok)
	assert.True(t, classkit.IsParamClass(est, false))

	owner, protected := est.Meta().Owner("tol")
	require.True(t, protected)
	assert.Equal(t, est, owner)

	ridge, ok := reg.Get("Ridge")
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "tol", "x"}, ridge.Meta().ParamNames())

	// inherited protection holds across the loaded hierarchy
	err = ridge.Set("solver", "other")
	require.Error(t, err)
	iss, ok := classkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, classkit.CodeProtected, iss[0].Code)

	in, err := ridge.New(classkit.KV{"x": 2})
	require.NoError(t, err)
	missing, err := in.MissingParams()
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLoad_JSON(t *testing.T) {
	doc := `{
  "classes": [
    {
      "name": "Job",
      "params": [
        {"name": "retries", "type": "integer", "default": 3},
        {"name": "queue", "type": "string"}
      ]
    }
  ]
}`
	reg, err := classfile.Load([]byte(doc), classfile.JSON)
	require.NoError(t, err)
	job, ok := reg.Get("Job")
	require.True(t, ok)
	v, err := job.Get("retries")
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
}

func TestLoad_TOML(t *testing.T) {
	doc := `
[[classes]]
name = "Node"

[[classes.params]]
name = "weight"
type = "number"
default = 1.5
`
	reg, err := classfile.Load([]byte(doc), classfile.TOML)
	require.NoError(t, err)
	node, ok := reg.Get("Node")
	require.True(t, ok)
	v, err := node.Get("weight")
	require.NoError(t, err)
	assert.EqualValues(t, 1.5, v)
}

func TestLoad_UnknownBase(t *testing.T) {
	doc := `
classes:
  - name: Orphan
    bases: [Nowhere]
`
	_, err := classfile.Load([]byte(doc), classfile.YAML)
	require.Error(t, err)
	iss, ok := classkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, classkit.CodeUnknownBase, iss[0].Code)
}

func TestLoad_DuplicateClass(t *testing.T) {
	doc := `
classes:
  - name: A
  - name: A
`
	_, err := classfile.Load([]byte(doc), classfile.YAML)
	require.Error(t, err)
	iss, _ := classkit.AsIssues(err)
	assert.Equal(t, classkit.CodeDuplicateClass, iss[0].Code)
}

func TestLoad_InvalidParamType(t *testing.T) {
	doc := `
classes:
  - name: A
    params:
      - name: x
        type: quantum
`
	_, err := classfile.Load([]byte(doc), classfile.YAML)
	require.Error(t, err)
	iss, _ := classkit.AsIssues(err)
	assert.Equal(t, classkit.CodeInvalidType, iss[0].Code)
}

func TestLoad_ProtectedWithoutDefault(t *testing.T) {
	doc := `
classes:
  - name: A
    params:
      - name: x
        type: number
        protected: true
`
	_, err := classfile.Load([]byte(doc), classfile.YAML)
	require.Error(t, err)
	iss, _ := classkit.AsIssues(err)
	assert.Equal(t, classkit.CodeInvalidParam, iss[0].Code)
}

func TestLoad_MalformedDocument(t *testing.T) {
	_, err := classfile.Load([]byte("classes: ["), classfile.YAML)
	require.Error(t, err)
	iss, ok := classkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, classkit.CodeParseError, iss[0].Code)
}

func TestLoad_RawBaseHierarchy(t *testing.T) {
	doc := `
classes:
  - name: Minimal
    bases: [RawBase]
    params:
      - name: x
        type: any
`
	reg, err := classfile.Load([]byte(doc), classfile.YAML)
	require.NoError(t, err)
	min, _ := reg.Get("Minimal")
	assert.True(t, classkit.IsParamClass(min, true))
	assert.False(t, classkit.IsParamClass(min, false))
}
