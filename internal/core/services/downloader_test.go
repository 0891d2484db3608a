package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkivio/docload/internal/connectors"
	"github.com/arkivio/docload/internal/core/domain"
)

// fakeConnector serves canned bytes and can be told to fail specific
// files.
type fakeConnector struct {
	files   []domain.RemoteFile
	content map[string][]byte
	fail    map[string]bool
	listErr error
}

func (f *fakeConnector) Type() string { return "fake" }

func (f *fakeConnector) List(_ context.Context, _ string) ([]domain.RemoteFile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files, nil
}

func (f *fakeConnector) Fetch(_ context.Context, file domain.RemoteFile, destDir string) (domain.DownloadedFile, error) {
	if f.fail[file.SourceID] {
		return domain.DownloadedFile{}, errors.New("connection reset by peer")
	}
	return connectors.WriteTemp(file.SourceID, file.Suffix, destDir, bytes.NewReader(f.content[file.SourceID]))
}

func (f *fakeConnector) Close() error { return nil }

func remoteTxt(id string) domain.RemoteFile {
	return domain.RemoteFile{SourceID: id, Suffix: ".txt"}
}

func TestTempScope(t *testing.T) {
	scope, err := NewTempScope(t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(scope.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = os.WriteFile(filepath.Join(scope.Dir(), "a.txt"), []byte("hello"), 0o600)
	require.NoError(t, err)

	require.NoError(t, scope.Release())

	_, err = os.Stat(scope.Dir())
	assert.True(t, os.IsNotExist(err))
}

func TestFetchMany_PartialFailure(t *testing.T) {
	conn := &fakeConnector{
		files: []domain.RemoteFile{remoteTxt("one.txt"), remoteTxt("two.txt"), remoteTxt("three.txt")},
		content: map[string][]byte{
			"one.txt":   []byte("first"),
			"two.txt":   []byte("second"),
			"three.txt": []byte("third"),
		},
		fail: map[string]bool{"two.txt": true},
	}

	downloaded := FetchMany(context.Background(), conn, conn.files, t.TempDir())

	require.Len(t, downloaded, 2)
	sources := []string{downloaded[0].SourcePath, downloaded[1].SourcePath}
	assert.ElementsMatch(t, []string{"one.txt", "three.txt"}, sources)
	for _, df := range downloaded {
		assert.FileExists(t, df.LocalPath)
		assert.Positive(t, df.Size)
		assert.Positive(t, df.IndexedOn)
	}
}

func TestFetchMany_Empty(t *testing.T) {
	conn := &fakeConnector{}
	downloaded := FetchMany(context.Background(), conn, nil, t.TempDir())
	assert.Empty(t, downloaded)
}

func TestFetch(t *testing.T) {
	conn := &fakeConnector{content: map[string][]byte{"a.txt": []byte("abc")}}

	df, err := Fetch(context.Background(), conn, remoteTxt("a.txt"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "a.txt", df.SourcePath)
	assert.Equal(t, int64(3), df.Size)
}
