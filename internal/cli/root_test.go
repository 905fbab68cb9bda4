package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/max-metric/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	log := "{\"psnr\": 30.1, \"cfg\": \"a\"}\n{\"psnr\": 42.5, \"cfg\": \"b\"}\n{\"psnr\": 42.5, \"cfg\": \"c\"}\n"

	t.Run("reports best record", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", log)

		out, _, err := execute(t, "-i", path, "--no-color")

		require.NoError(t, err)
		assert.Equal(t, "Parameters for maximum PSNR:\n{\"psnr\":42.5,\"cfg\":\"b\"}\n", out)
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", "{\"psnr\":1,\"ssim\":0.9}\n{\"psnr\":2,\"ssim\":0.8}\n")
		cfgPath := writeFile(t, "max_metric.yaml", "input: "+path+"\nmetric: ssim\nformat: json\n")

		out, _, err := execute(t, "--config", cfgPath, "--format", "csv")

		require.NoError(t, err)
		assert.Contains(t, out, "line,metric,value,record\n1,ssim,0.9,")
	})

	t.Run("skip policy from flag", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", "oops\n{\"psnr\":7}\n")

		out, _, err := execute(t, "-i", path, "--on-error", "skip", "--no-color")

		require.NoError(t, err)
		assert.Equal(t, "Parameters for maximum PSNR:\n{\"psnr\":7}\n", out)
	})

	t.Run("skipped lines are logged to command stderr", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", "oops\n{\"psnr\":7}\n")

		_, stderr, err := execute(t, "-i", path, "--on-error", "skip")

		require.NoError(t, err)
		assert.Contains(t, stderr, "level=WARN")
		assert.Contains(t, stderr, "line=1")
		assert.NotContains(t, stderr, "level=DEBUG")
	})

	t.Run("verbose logs debug to command stderr", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", log)

		out, stderr, err := execute(t, "-i", path, "-v", "--no-color")

		require.NoError(t, err)
		assert.Contains(t, stderr, "level=DEBUG")
		assert.Contains(t, stderr, "New maximum")
		assert.NotContains(t, out, "New maximum")
	})

	t.Run("verbose does not leak into later runs", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", log)

		_, verboseErr, err := execute(t, "-i", path, "-v")
		require.NoError(t, err)
		_, quietErr, err := execute(t, "-i", path)
		require.NoError(t, err)
		_, verboseAgain, err := execute(t, "-i", path, "-v")
		require.NoError(t, err)

		assert.Empty(t, quietErr)
		assert.Equal(t, strings.Count(verboseErr, "\n"), strings.Count(verboseAgain, "\n"))
	})

	t.Run("malformed line fails by default", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "log.jsonl", "oops\n")

		_, _, err := execute(t, "-i", path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("missing input file fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "-i", filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.txt")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "extra")

		assert.Error(t, err)
	})
}
