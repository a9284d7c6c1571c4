package survey

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "NotFoundSentinel",
			err:        ErrCaseNotFound,
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "case not found",
		},
		{
			name:       "WrappedNotFound",
			err:        fmt.Errorf("lookup: %w", ErrCaseNotFound),
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "lookup: case not found",
		},
		{
			name:       "Validation",
			err:        ErrInvalidStatus,
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "invalid status value",
		},
		{
			name:       "SyncInProgress",
			err:        ErrSyncInProgress,
			wantStatus: fiber.StatusConflict,
			wantMsg:    "a sync run is already in progress",
		},
		{
			name:       "Timeout",
			err:        errors.New("context deadline exceeded"),
			wantStatus: fiber.StatusGatewayTimeout,
			wantMsg:    "context deadline exceeded",
		},
		{
			name:       "InternalDetailsSanitized",
			err:        errors.New("dial tcp 10.0.0.5:3306: connection refused"),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "internal processing error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
