package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualCommand(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"1,2,3", "1,2,3", "true\n"},
		{"1,2,3", "1,9,3", "false\n"},
		{"1,2", "1,2,3", "false\n"},
		{"", "", "true\n"},
		{" 1 , 2 ", "1,2", "true\n"},
	}
	for _, tc := range tests {
		t.Run(tc.a+"|"+tc.b, func(t *testing.T) {
			out, _, err := execute(t, "equal", tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestEqualCommandJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "equal", "1", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"equal":false}}`, out)
}

func TestEqualCommandBadInput(t *testing.T) {
	_, _, err := execute(t, "equal", "1,x", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "equal", "1")
	require.Error(t, err, "exactly two arguments are required")
}

func TestSumCommandGolden(t *testing.T) {
	out, _, err := execute(t, "sum", "1,2.5,-4", "10,20,1")
	require.NoError(t, err)
	newGolden(t).Assert(t, "sum_text", []byte(out))
}

func TestSumCommandJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "sum", "1,2", "3,4")
	require.NoError(t, err)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.JSONEq(t, `{"status":"ok","data":{"values":[4,6]}}`, out)
}

func TestSumCommandMismatch(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "sum", "1,2", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMismatch, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "dimension mismatch")
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, 2.5 ,-3")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, v.Values())

	v, err = parseVector("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())

	_, err = parseVector("1,,2")
	require.Error(t, err)
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes([]string{"-1", " 10 ", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 10, 0}, sizes)

	_, err = parseSizes([]string{"1.5"})
	require.Error(t, err)
}
