package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/errdefs"
	"github.com/depscope/depscope/fsio"
)

func TestAnalyzeProjectDiscoversByPattern(t *testing.T) {
	fs := fsio.NewMemFS()
	now := time.Now()
	fs.WriteFile("/proj/src/app.ts", []byte("import ./util"), now)
	fs.WriteFile("/proj/src/util.ts", []byte(""), now)
	fs.WriteFile("/proj/README.md", []byte("# readme"), now)
	fs.WriteFile("/proj/node_modules/lodash/index.js", []byte(""), now)

	a, _ := newTestAnalyzer(t, DefaultConfig(), fs)

	project, err := a.AnalyzeProject(context.Background(), "/proj")
	require.NoError(t, err)

	assert.Len(t, project.Files, 2)
	assert.Contains(t, project.Files, "/proj/src/app.ts")
	assert.Contains(t, project.Files, "/proj/src/util.ts")
	assert.NotContains(t, project.Files, "/proj/README.md")
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "/proj", project.Root)
	assert.False(t, project.AnalyzedAt.IsZero())
}

func TestAnalyzeProjectRootIsFile(t *testing.T) {
	fs := fsio.NewMemFS()
	fs.WriteFile("/proj/only.ts", []byte(""), time.Now())

	a, _ := newTestAnalyzer(t, DefaultConfig(), fs)

	project, err := a.AnalyzeProject(context.Background(), "/proj/only.ts")
	require.NoError(t, err)

	assert.Len(t, project.Files, 1)
	assert.Contains(t, project.Files, "/proj/only.ts")
}

func TestAnalyzeProjectMissingRoot(t *testing.T) {
	a, _ := newTestAnalyzer(t, DefaultConfig(), fsio.NewMemFS())

	_, err := a.AnalyzeProject(context.Background(), "/nowhere")

	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestAnalyzeProjectHonorsMaxDepth(t *testing.T) {
	fs := fsio.NewMemFS()
	now := time.Now()
	fs.WriteFile("/proj/top.ts", []byte(""), now)
	fs.WriteFile("/proj/a/mid.ts", []byte(""), now)
	fs.WriteFile("/proj/a/b/deep.ts", []byte(""), now)

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	a, _ := newTestAnalyzer(t, cfg, fs)

	project, err := a.AnalyzeProject(context.Background(), "/proj")
	require.NoError(t, err)

	assert.Contains(t, project.Files, "/proj/top.ts")
	assert.Contains(t, project.Files, "/proj/a/mid.ts")
	assert.NotContains(t, project.Files, "/proj/a/b/deep.ts")
}

func TestAnalyzeProjectOneBadFileDoesNotAbort(t *testing.T) {
	fs := fsio.NewMemFS()
	now := time.Now()
	fs.WriteFile("/proj/good.ts", []byte("import ./other"), now)
	fs.WriteFile("/proj/other.ts", []byte(""), now)
	fs.WriteFile("/proj/broken.ts", []byte("malformed!"), now)

	a, _ := newTestAnalyzer(t, DefaultConfig(), fs)

	project, err := a.AnalyzeProject(context.Background(), "/proj")
	require.NoError(t, err)

	assert.Len(t, project.Files, 3)
	assert.Empty(t, project.Files["/proj/broken.ts"].Dependencies)
}

func TestAnalyzeProjectCancelledContext(t *testing.T) {
	fs := fsio.NewMemFS()
	fs.WriteFile("/proj/a.ts", []byte(""), time.Now())

	a, _ := newTestAnalyzer(t, DefaultConfig(), fs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeProject(ctx, "/proj")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeProjectSequentialGroupsCoverAllFiles(t *testing.T) {
	fs := fsio.NewMemFS()
	now := time.Now()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		fs.WriteFile("/proj/"+name+".ts", []byte(""), now)
	}

	cfg := DefaultConfig()
	cfg.Concurrency = 2
	a, _ := newTestAnalyzer(t, cfg, fs)

	project, err := a.AnalyzeProject(context.Background(), "/proj")
	require.NoError(t, err)

	assert.Len(t, project.Files, 7)
}
