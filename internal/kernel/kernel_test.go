package kernel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFragment() Fragment {
	return Fragment{
		FunctionName: "prop_test_fn",
		GuardSymbol:  "PROP_TEST_FN",
		Params:       []string{"scale"},
		Body: `double prop_test_fn(const double current, const double scale){
    return current * scale;
}`,
	}
}

func TestFragmentRenderWrapsGuards(t *testing.T) {
	rendered := testFragment().Render()

	assert.True(t, strings.HasPrefix(rendered, "#ifndef PROP_TEST_FN\n#define PROP_TEST_FN\n"))
	assert.Contains(t, rendered, "double prop_test_fn(")
	assert.Contains(t, rendered, "#endif // PROP_TEST_FN")
}

func TestFragmentRenderIdempotent(t *testing.T) {
	f := testFragment()
	assert.Equal(t, f.Render(), f.Render())
}

func TestFragmentQualify(t *testing.T) {
	qualified := testFragment().Qualify("theta")

	assert.Equal(t, "theta_prop_test_fn", qualified.FunctionName)
	assert.Equal(t, "THETA_PROP_TEST_FN", qualified.GuardSymbol)
	assert.Contains(t, qualified.Body, "double theta_prop_test_fn(")
	assert.NotContains(t, qualified.Body, "double prop_test_fn(")

	// empty prefix is a no-op
	assert.Equal(t, testFragment(), testFragment().Qualify(""))
}

func TestProgramRejectsDuplicateNames(t *testing.T) {
	p := NewProgram()
	require.NoError(t, p.Add(testFragment()))

	err := p.Add(testFragment())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate kernel function name prop_test_fn")
}

func TestProgramAcceptsQualifiedCopies(t *testing.T) {
	p := NewProgram()
	require.NoError(t, p.Add(testFragment().Qualify("theta")))
	require.NoError(t, p.Add(testFragment().Qualify("sigma")))

	src := p.Source()
	assert.Contains(t, src, "theta_prop_test_fn")
	assert.Contains(t, src, "sigma_prop_test_fn")
	assert.True(t, p.Contains("theta_prop_test_fn"))
	assert.False(t, p.Contains("prop_test_fn"))
}

func TestProgramRejectsNonASCII(t *testing.T) {
	f := testFragment()
	f.Body = "// séparation\n" + f.Body

	err := NewProgram().Add(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-ASCII")
}

func TestProgramRejectsUnnamedFragment(t *testing.T) {
	err := NewProgram().Add(Fragment{Body: "double f(){return 0;}"})
	require.Error(t, err)
}

func TestProgramSourceOrder(t *testing.T) {
	p := NewProgram()
	first := testFragment().Qualify("a")
	second := testFragment().Qualify("b")
	require.NoError(t, p.Add(first))
	require.NoError(t, p.Add(second))

	src := p.Source()
	assert.Less(t, strings.Index(src, "a_prop_test_fn"), strings.Index(src, "b_prop_test_fn"))
}
