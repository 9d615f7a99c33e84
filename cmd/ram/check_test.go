package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	good := writeSource(t, "good.ram", "display \"Hello World!\"\n")
	bad := writeSource(t, "bad.ram", "frobnicate 1\n")

	out, err := execute(t, "check", good, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)
	require.Contains(t, err.Error(), "Keyword 'frobnicate' invalid.")
	require.NotContains(t, err.Error(), good)
	require.Contains(t, out, good+": ok")
	require.NotContains(t, out, bad+": ok")
}

func TestCheckCommandAllGood(t *testing.T) {
	first := writeSource(t, "first.ram", "display 1\n")
	second := writeSource(t, "second.ram", "set integer x to 2\ndisplay x\n")

	out, err := execute(t, "check", first, second)
	require.NoError(t, err)
	require.Contains(t, out, first+": ok")
	require.Contains(t, out, second+": ok")
}
