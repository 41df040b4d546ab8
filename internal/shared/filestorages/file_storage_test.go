package filestorages

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("  ")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"output.txt",
		"output.csv",
		"reports/01HZX3NDEKTSV4RRFFQ69G5FAV/output.txt",
		"..hidden-but-inside.txt",
		"nested/deep/path/file.txt",
	}

	for _, key := range validKeys {
		key := key
		t.Run(key, func(t *testing.T) {
			data := "Request Summary:\n"
			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)
			assert.Equal(t, filepath.Join(storage.(*fileStorage).dir, key), result.Path)

			content, err := os.ReadFile(result.Path)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../output.txt",
		"../../etc/passwd",
		"reports/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		key := key
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "output.txt", strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "output.txt", strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	assertFileContent(t, storage, "output.txt", "first")
}

func TestPut_AllowOverwriteTrue_ReplacesFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "output.csv", strings.NewReader("first"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "output.csv", strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	assertFileContent(t, storage, "output.csv", "second")
}

func TestPut_ReaderFailure_LeavesNoFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	readErr := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("partial"), &failingReader{err: readErr})

	_, err := storage.Put(ctx, "output.txt", r, PutOptions{AllowOverwrite: true})
	assert.ErrorIs(t, err, readErr)

	_, err = storage.Get(ctx, "output.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	entries, err := os.ReadDir(storage.(*fileStorage).dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be cleaned up")
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "reports/missing/output.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGet_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "../secret")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	data := "Request Summary\nGET,2\n"
	_, err := storage.Put(ctx, "reports/abc/output.csv", strings.NewReader(data), PutOptions{})
	require.NoError(t, err)

	assertFileContent(t, storage, "reports/abc/output.csv", data)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func assertFileContent(t *testing.T, storage FileStorage, key, expected string) {
	t.Helper()

	readCloser, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
}

func newTestStorage(t *testing.T) FileStorage {
	t.Helper()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
