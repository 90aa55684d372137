package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/hydration/pkg/httputil"
)

func TestWriteErrorResponse(t *testing.T) {
	testCases := []struct {
		Name            string
		Details         error
		ExpectedDetails []string
	}{
		{
			Name:            "no details",
			ExpectedDetails: nil,
		},
		{
			Name:            "single error",
			Details:         errors.New("invalid date"),
			ExpectedDetails: []string{"invalid date"},
		},
		{
			Name: "joined errors",
			Details: errors.Join(
				errors.New("validation error"),
				errors.Join(errors.New("Name: notblank"), errors.New("Weight: decimal_gt")),
			),
			ExpectedDetails: []string{"validation error", "Name: notblank", "Weight: decimal_gt"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httputil.WriteErrorResponse(rr, http.StatusBadRequest, "bad request", tc.Details)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp httputil.ErrorResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "bad request", resp.Message)
			assert.Equal(t, tc.ExpectedDetails, resp.Details)
		})
	}
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusCreated, map[string]string{"quantity": "500.00"})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"quantity":"500.00"}`, rr.Body.String())
	})
	t.Run("no body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusOK, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
