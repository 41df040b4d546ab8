package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"log-report/internal/models"
	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read([]byte) (int, error) { return 0, errors.New("i/o timeout") }
func (failingReadCloser) Close() error             { return nil }

func TestReportKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reports/01J2Z6Y5N3K8Q7W4E9R0T1Y2V3/output.txt", ReportKey("01J2Z6Y5N3K8Q7W4E9R0T1Y2V3", models.OutputPlain))
	assert.Equal(t, "reports/abc/output.csv", ReportKey("abc", models.OutputCSV))
}

func TestReportStore_Save_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	content := []byte("Request Summary:\nGET: 1\n")

	mockFileStorage.EXPECT().
		Put(ctx, "output.txt", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, content, data)
			return &filestorages.PutResult{FileKey: key, Path: "/data/output.txt"}, nil
		})

	path, err := store.Save(ctx, "output.txt", content)
	require.NoError(t, err)
	assert.Equal(t, "/data/output.txt", path)
}

func TestReportStore_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		putErr       error
		expectedErr  error
		expectedPath string
	}{
		{name: "created", expectedPath: "/data/reports/r1/output.csv"},
		{name: "key taken", putErr: filestorages.ErrFileAlreadyExists, expectedErr: ErrReportAlreadyExists},
		{name: "storage failure", putErr: filestorages.ErrInvalidKey, expectedErr: filestorages.ErrInvalidKey},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewReportStore(mockFileStorage)

			call := mockFileStorage.EXPECT().
				Put(gomock.Any(), "reports/r1/output.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false})
			if tt.putErr != nil {
				call.Return(nil, tt.putErr)
			} else {
				call.Return(&filestorages.PutResult{FileKey: "reports/r1/output.csv", Path: tt.expectedPath}, nil)
			}

			path, err := store.Create(context.Background(), "reports/r1/output.csv", []byte("x"))
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath, path)
		})
	}
}

func TestReportStore_Save_Failure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	storageErr := errors.New("permission denied")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), "output.csv", gomock.Any(), gomock.Any()).
		Return(nil, storageErr)

	path, err := store.Save(context.Background(), "output.csv", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.Empty(t, path)
}

func TestReportStore_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(m *mocks.MockFileStorage)
		expected    []byte
		expectedErr error
		wantErr     bool
	}{
		{
			name: "found",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "reports/r1/output.csv").
					Return(io.NopCloser(strings.NewReader("Request Summary\n")), nil)
			},
			expected: []byte("Request Summary\n"),
		},
		{
			name: "not found",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "reports/r1/output.csv").
					Return(nil, filestorages.ErrFileNotFound)
			},
			expectedErr: ErrReportNotFound,
			wantErr:     true,
		},
		{
			name: "invalid key",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "reports/r1/output.csv").
					Return(nil, filestorages.ErrInvalidKey)
			},
			expectedErr: filestorages.ErrInvalidKey,
			wantErr:     true,
		},
		{
			name: "read failure",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "reports/r1/output.csv").
					Return(failingReadCloser{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			tt.setup(mockFileStorage)
			store := NewReportStore(mockFileStorage)

			content, err := store.Get(context.Background(), "reports/r1/output.csv")
			if tt.wantErr {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, content)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, content)
		})
	}
}

func TestReportStore_RoundTripOnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewReportStore(fileStorage)
	ctx := context.Background()

	_, err = store.Save(ctx, "output.txt", []byte("first"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "output.txt", []byte("second"))
	require.NoError(t, err)

	content, err := store.Get(ctx, "output.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)

	_, err = store.Get(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrReportNotFound)

	key := ReportKey("01J2Z6Y5N3K8Q7W4E9R0T1Y2V3", models.OutputCSV)
	_, err = store.Create(ctx, key, []byte("first"))
	require.NoError(t, err)
	_, err = store.Create(ctx, key, []byte("second"))
	assert.ErrorIs(t, err, ErrReportAlreadyExists)

	content, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), content)
}
