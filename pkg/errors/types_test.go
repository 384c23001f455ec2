package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeValidation, "bad input")
	assert.Equal(t, "VALIDATION: bad input", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), ErrCodeExternalService, "engine call failed")
	assert.Equal(t, "EXTERNAL_SERVICE: engine call failed (caused by: boom)", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrCodeDatabaseQuery, "insert failed")

	assert.True(t, stderrors.Is(err, cause))
}

func TestDefaultHTTPCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeMissingField, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeServiceDown, http.StatusServiceUnavailable},
		{ErrCodeExternalService, http.StatusBadGateway},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").GetHTTPCode())
		})
	}
}

func TestIdentityConflictError(t *testing.T) {
	err := IdentityConflictError("audio_ver_2.mp3", 3)

	assert.True(t, Is(err, ErrCodeConflict))
	assert.Equal(t, http.StatusConflict, GetHTTPCode(err))
	assert.Contains(t, err.Error(), "audio_ver_2.mp3")
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Equal(t, "audio_ver_2.mp3", err.Details["name"])
}

func TestTranscriptionError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := TranscriptionError("openai", cause)

	require.True(t, Is(err, ErrCodeExternalService))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "openai", err.Details["provider"])
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(fmt.Errorf("plain")))
}
