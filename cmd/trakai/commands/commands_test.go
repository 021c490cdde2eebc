package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := &CLI{}
	var out bytes.Buffer
	g := &Global{Out: &out}

	parser, err := kong.New(cli,
		kong.Name("trakai"),
		kong.Vars{"version": "test"},
		kong.Bind(g),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	err = ctx.Run(g, cli)
	return out.String(), err
}

func TestInitBuildList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--path", dir, "init", "--templates")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(dir, "resources", "trakai.json"))
	require.DirExists(t, filepath.Join(dir, "resources", "content"))

	post := "Title: Hello\nDate: 2021-04-05\nTags: go\n\nFirst *post*.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resources", "content", "hello.md"), []byte(post), 0o600))

	out, err = run(t, "--path", dir, "build")
	require.NoError(t, err)
	require.Contains(t, out, "Built 1 posts")
	require.FileExists(t, filepath.Join(dir, "blog", "index.html"))
	require.FileExists(t, filepath.Join(dir, "blog", "feed.xml"))
	data, err := os.ReadFile(filepath.Join(dir, "blog", "posts", "hello.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), "<em>post</em>")

	out, err = run(t, "--path", dir, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "2021-04-05")
	require.Contains(t, lines[1], "hello")
	require.Equal(t, "1 records, 0 tags", lines[2])
}

func TestBuildIsDefaultCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--path", dir, "init", "--templates")
	require.NoError(t, err)

	out, err := run(t, "--path", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Built 0 posts")
}

func TestBuild_WritesMetricsFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--path", dir, "init", "--templates")
	require.NoError(t, err)
	metricsFile := filepath.Join(dir, "metrics.prom")

	_, err = run(t, "--path", dir, "build", "--metrics-file", metricsFile)
	require.NoError(t, err)
	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `trakai_build_outcomes_total{outcome="success"} 1`)
	require.Contains(t, string(data), `trakai_pages_rendered_total{kind="index"} 1`)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--path", dir, "init")
	require.NoError(t, err)

	_, err = run(t, "--path", dir, "init")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))

	_, err = run(t, "--path", dir, "init", "--force")
	require.NoError(t, err)
}

func TestBuild_MissingTemplates(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--path", dir, "build")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryTemplate))
	require.Equal(t, 11, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestBuild_ExplicitConfigMissing(t *testing.T) {
	_, err := run(t, "--path", t.TempDir(), "-c", "nope.json", "build")
	require.Error(t, err)
	require.Equal(t, 7, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}
