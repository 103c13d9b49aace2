package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/probe"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestProbeDefaultGolden(t *testing.T) {
	out, stderr, err := execute(t, "probe")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "2 of 3 probe(s) failed", err.Error())

	newGolden(t).Assert(t, "probe_default", []byte(out))

	// diagnostics go to stderr, never stdout
	assert.Contains(t, stderr, "vector construction failed")
	assert.NotContains(t, out, "level=")
}

func TestProbePlanGolden(t *testing.T) {
	out, _, err := execute(t, "probe", "--plan", "testdata/plan.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGolden(t).Assert(t, "probe_plan", []byte(out))
}

func TestProbeArgsOverridePlan(t *testing.T) {
	out, _, err := execute(t, "probe", "--plan", "testdata/plan.yaml", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "size=2 outcome=ok len=2\nsize=3 outcome=ok len=3\n2 probe(s), 0 failed\n", out)
}

func TestProbeNegativeAfterDash(t *testing.T) {
	out, _, err := execute(t, "probe", "--", "-7")
	require.Error(t, err)
	assert.Contains(t, out, "size=-7 outcome=invalid_size")
}

func TestProbeMaxLenFlag(t *testing.T) {
	out, _, err := execute(t, "probe", "--max-len", "2", "3")
	require.Error(t, err)
	assert.Contains(t, out, "outcome=allocation_failure")

	_, stderr, err := execute(t, "probe", "--max-len", "-2", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error [E001]")
}

func TestProbeBadInput(t *testing.T) {
	_, stderr, err := execute(t, "probe", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error [E001]: invalid size")

	_, stderr, err = execute(t, "probe", "--plan", "testdata/missing.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error [E002]")
}

func TestProbeJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "probe", "10", "0")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   probe.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data.ID, 36)
	require.Len(t, resp.Data.Results, 2)
	assert.Equal(t, probe.OutcomeOK, resp.Data.Results[0].Outcome)
	assert.Equal(t, 10, resp.Data.Results[0].Length)
}

func TestProbeVerboseLogsDebug(t *testing.T) {
	_, stderr, err := execute(t, "-v", "probe", "4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "size=4 len=4")

	_, stderr, err = execute(t, "probe", "4")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")
}
