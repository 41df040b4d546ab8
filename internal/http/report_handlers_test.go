package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log-report/internal/models"
	"log-report/internal/reporters"
	reportermocks "log-report/internal/reporters/mocks"
	"log-report/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testReportID = "01J2Z6Y5N3K8Q7W4E9R0T1Y2V3"

func TestGenerateReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportService := reportermocks.NewMockReportService(ctrl)
	handler := NewGenerateReportHandler(mockReportService, 1024)

	body := "[2024-07-05 05:13:35] POST /user/session 404 54\n"
	req := httptest.NewRequest(http.MethodPost, "/reports?format=csv", strings.NewReader(body))
	rr := httptest.NewRecorder()

	mockReportService.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, genReq reporters.GenerateReportRequest) (*reporters.ReportResult, error) {
			assert.Equal(t, "csv", genReq.Format)
			assert.Len(t, genReq.ReportID, 26)

			line, err := genReq.Source.Next()
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSuffix(body, "\n"), line.Text)
			_, err = genReq.Source.Next()
			assert.ErrorIs(t, err, io.EOF)

			return &reporters.ReportResult{
				ReportID: genReq.ReportID,
				Format:   models.OutputCSV,
				Content:  []byte("Request Summary\nPOST,1\n"),
			}, nil
		})

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get(headerContentType))
	assert.Len(t, rr.Header().Get(headerReportID), 26)
	assert.Equal(t, "Request Summary\nPOST,1\n", rr.Body.String())
}

func TestGenerateReportHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportService := reportermocks.NewMockReportService(ctrl)
	handler := NewGenerateReportHandler(mockReportService, 1024)

	req := httptest.NewRequest(http.MethodPost, "/reports?format=json", strings.NewReader(""))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("RPT_1000", `unsupported output format: "json"`, nil)
	mockReportService.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get(headerReportID))
}

func TestGenerateReportHandler_Handle_BodyTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportService := reportermocks.NewMockReportService(ctrl)
	handler := NewGenerateReportHandler(mockReportService, 16)

	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(strings.Repeat("x", 64)+"\n"))
	rr := httptest.NewRecorder()

	mockReportService.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, genReq reporters.GenerateReportRequest) (*reporters.ReportResult, error) {
			var err error
			for err == nil {
				_, err = genReq.Source.Next()
			}
			var maxBytesErr *http.MaxBytesError
			assert.ErrorAs(t, err, &maxBytesErr)
			return nil, svcerrors.NewInvalidArgumentError("RPT_1001", "log input could not be read", err)
		})

	err := handler.Handle(rr, req)
	require.Error(t, err)
}

func serveGetReport(handler AppHttpHandler, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/reports/{reportID}", errorHandlingAdapter(handler))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetReportHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		target              string
		expectedFormat      string
		result              *reporters.ReportResult
		err                 error
		expectedStatus      int
		expectedContentType string
		expectedBody        string
	}{
		{
			name:           "plain",
			target:         "/reports/" + testReportID,
			expectedFormat: "",
			result: &reporters.ReportResult{
				ReportID: testReportID,
				Format:   models.OutputPlain,
				Content:  []byte("Request Summary:\n"),
			},
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/plain; charset=utf-8",
			expectedBody:        "Request Summary:\n",
		},
		{
			name:           "csv",
			target:         "/reports/" + testReportID + "?format=csv",
			expectedFormat: "csv",
			result: &reporters.ReportResult{
				ReportID: testReportID,
				Format:   models.OutputCSV,
				Content:  []byte("Request Summary\n"),
			},
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/csv; charset=utf-8",
			expectedBody:        "Request Summary\n",
		},
		{
			name:                "not found",
			target:              "/reports/" + testReportID,
			expectedFormat:      "",
			err:                 svcerrors.NewNotFoundError("RPT_1002", "report not found", nil),
			expectedStatus:      http.StatusNotFound,
			expectedContentType: "application/json",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReportService := reportermocks.NewMockReportService(ctrl)
			mockReportService.EXPECT().
				GetReport(gomock.Any(), testReportID, tt.expectedFormat).
				Return(tt.result, tt.err)

			rr := serveGetReport(NewGetReportHandler(mockReportService), tt.target)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedContentType, rr.Header().Get(headerContentType))
			if tt.err == nil {
				assert.Equal(t, testReportID, rr.Header().Get(headerReportID))
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
