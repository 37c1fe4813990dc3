package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkFiles(t *testing.T, dir Directory, skip string) []string {
	t.Helper()
	var files []string
	err := dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() {
			if file.Info().Name() == skip {
				return fs.SkipDir
			}
			return nil
		}
		files = append(files, file.RelativePath())
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("index.html", "<p>home</p>")
	mfs.AddFile("blog/post.html", "<p>post</p>")
	mfs.AddFile("blog/notes.txt", "notes")

	dir, err := mfs.Open("/site")
	require.NoError(t, err)
	require.Equal(t, "/site", dir.Path())

	assert.Equal(t, []string{"blog/notes.txt", "blog/post.html", "index.html"}, walkFiles(t, dir, ""))
}

func TestMemoryFileSystem_WalkSubdirectoryRelativePaths(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("blog/2024/post.html", "x")

	dir, err := mfs.Open("blog")
	require.NoError(t, err)

	assert.Equal(t, []string{"2024/post.html"}, walkFiles(t, dir, ""))
}

func TestMemoryFileSystem_WalkSkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("index.html", "x")
	mfs.AddFile("node_modules/pkg/readme.html", "x")
	mfs.AddFile("node_modules/pkg/deep/more.html", "x")
	mfs.AddFile("zeta/page.html", "x")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html", "zeta/page.html"}, walkFiles(t, dir, "node_modules"))
}

func TestMemoryFileSystem_WalkStopsOnError(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("a.html", "x")
	mfs.AddFile("b.html", "x")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	boom := errors.New("boom")
	visited := 0
	err = dir.Walk(func(file File, err error) error {
		if file.Info().IsDir() {
			return nil
		}
		visited++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, visited)
}

func TestMemoryFileSystem_WalkRecoversPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("a.html", "x")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(file File, err error) error {
		if !file.Info().IsDir() {
			panic("callback bug")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_ReadWrite(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("index.html", "cafÃ©")

	content, err := mfs.ReadFile("/site/index.html")
	require.NoError(t, err)
	assert.Equal(t, "cafÃ©", string(content))

	require.NoError(t, mfs.WriteFile("index.html", []byte("café"), 0600))

	got, ok := mfs.Content("index.html")
	require.True(t, ok)
	assert.Equal(t, "café", got)

	info, err := mfs.Stat("index.html")
	require.NoError(t, err)
	assert.Equal(t, int64(len("café")), info.Size())
	assert.Equal(t, fs.FileMode(0644), info.Mode(), "existing mode is kept")
}

func TestMemoryFileSystem_WalkSeesWrites(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("index.html", "old")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(file File, err error) error {
		if file.Info().IsDir() {
			return nil
		}
		require.NoError(t, mfs.WriteFile(file.Path(), []byte("new"), 0644))
		return nil
	})
	require.NoError(t, err)

	content, ok := mfs.Content("index.html")
	require.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestMemoryFileSystem_FailWrites(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("locked.html", "x")

	denied := errors.New("permission denied")
	mfs.FailWrites("locked.html", denied)

	err := mfs.WriteFile("/site/locked.html", []byte("y"), 0644)
	assert.ErrorIs(t, err, denied)

	got, _ := mfs.Content("locked.html")
	assert.Equal(t, "x", got)
}

func TestMemoryFileSystem_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("index.html", "x")
	mfs.AddDir("empty")

	_, err := mfs.Open("missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = mfs.Open("index.html")
	assert.Error(t, err)

	_, err = mfs.ReadFile("missing.html")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = mfs.ReadFile("empty")
	assert.Error(t, err)

	assert.Error(t, mfs.WriteFile("empty", []byte("x"), 0644))

	info, err := mfs.Stat("empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
