package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCheckSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		expected string
		query    string
		header   string
		wantErr  error
	}{
		{
			name: "check disabled when no secret is configured",
		},
		{
			name:     "missing secret",
			expected: "s3cret",
			wantErr:  ErrInvalidSecret,
		},
		{
			name:     "wrong query secret",
			expected: "s3cret",
			query:    "nope",
			wantErr:  ErrInvalidSecret,
		},
		{
			name:     "query secret",
			expected: "s3cret",
			query:    "s3cret",
		},
		{
			name:     "header secret",
			expected: "s3cret",
			header:   "s3cret",
		},
		{
			name:     "query wins over header",
			expected: "s3cret",
			query:    "nope",
			header:   "s3cret",
			wantErr:  ErrInvalidSecret,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ginCtx, _ := newTestGinContext(testCase.query, testCase.header)

			err := CheckSecret(ginCtx, testCase.expected)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestAbortWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, recorder := newTestGinContext("", "")
	AbortWithUnauthorized(ginCtx, ErrInvalidSecret)

	if !ginCtx.IsAborted() {
		t.Fatalf("expected request to be aborted")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["error"] != ErrInvalidSecret.Error() {
		t.Fatalf("expected error message %q, got %q", ErrInvalidSecret.Error(), body["error"])
	}
	if body["hint"] == "" {
		t.Fatalf("expected a hint")
	}
}

func newTestGinContext(secret, header string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)

	target := "/"
	if secret != "" {
		target += "?secret=" + secret
	}
	request := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		request.Header.Set(HeaderCronSecret, header)
	}
	ginCtx.Request = request

	return ginCtx, recorder
}
