package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	quote "github.com/shabbyrobe/go-quote"
	"github.com/shabbyrobe/go-quote/internal/diffcheck"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, 100000, cfg.Iterations)
	require.Equal(t, "apd", cfg.Oracle)
	require.Equal(t, 20, cfg.MaxFailures)
	require.Greater(t, cfg.Workers, 0)
	require.False(t, cfg.Dump)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{"--iterations=10", "--seed=99", "--ops=add,mul", "--oracle=decimal", "-v"})
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Iterations)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, "add,mul", cfg.Ops)
	require.Equal(t, "decimal", cfg.Oracle)
	require.True(t, cfg.Verbose)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("QUOTECHECK_MAX_FAILURES", "3")
	t.Setenv("QUOTECHECK_ORACLE", "decimal")

	cfg, err := loadConfig([]string{"--oracle=apd"})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxFailures)
	require.Equal(t, "apd", cfg.Oracle)
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "quotecheck.yaml")
	require.NoError(t, os.WriteFile(file, []byte("iterations: 7\noracle: decimal\ndump: true\n"), 0o600))

	cfg, err := loadConfig([]string{"--config", file})
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Iterations)
	require.Equal(t, "decimal", cfg.Oracle)
	require.True(t, cfg.Dump)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--iterations=50", "--seed=3", "--workers=2", "--ops=quo,add"}, &out, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[2], "add "), lines[2])
	require.True(t, strings.HasPrefix(lines[3], "quo "), lines[3])
	require.True(t, strings.HasPrefix(lines[4], "total "), lines[4])
	require.Contains(t, lines[4], " 100 ")
}

func TestRunBadOps(t *testing.T) {
	err := run([]string{"--ops=pow"}, io.Discard, io.Discard)
	require.True(t, diffcheck.Error.Has(err))
}

func TestPrintReportDump(t *testing.T) {
	rep := diffcheck.Report{
		Seed:   1,
		Oracle: "apd",
		Counts: map[diffcheck.Op]*diffcheck.Count{diffcheck.OpAdd: {Checked: 1, Failed: 1}},
		Failures: []diffcheck.Failure{{
			Op:     diffcheck.OpAdd,
			In:     diffcheck.Operands{A: quote.Quotation{Units: 1}, B: quote.Quotation{Units: 2}},
			Oracle: "apd",
			Want:   "3000000000",
			Got:    "[4; 0]",
		}},
	}

	var out bytes.Buffer
	printReport(&out, rep, true)
	require.Contains(t, out.String(), "FAIL add(a=[1; 0], b=[2; 0], n=0) [apd]")
	require.Contains(t, out.String(), "(diffcheck.Failure)")
}
