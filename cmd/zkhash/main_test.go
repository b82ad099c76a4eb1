package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vocdoni/zkhash"
)

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("proves a circuit")
	}
	var out bytes.Buffer
	o := options{depth: 1, backend: "groth16", logLevel: "disabled"}
	require.NoError(t, run(&out, zkhash.Griffin(), o))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "griffin[0] = 7850381445267394143251677270502161431642142046831728318861434979430573866212", lines[0])
	require.Contains(t, lines[2], "griffin constructing proof with")
	require.Contains(t, lines[3], "proof length:")
}

func TestOptions(t *testing.T) {
	f := zkhash.MiMC()
	cfg, err := options{backend: "PLONK", emulated: true}.config(f)
	require.NoError(t, err)
	require.True(t, cfg.Emulated)
	require.Equal(t, "plonk", strings.ToLower(cfg.Backend.String()))

	_, err = options{backend: "stark"}.config(f)
	require.Error(t, err)

	err = run(&bytes.Buffer{}, f, options{depth: 0, backend: "groth16"})
	require.Error(t, err)
}
