package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"inn/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			result:  failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			message: "custom bad request",
		},
		{
			name:    "Unauthorized",
			result:  failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "InternalError",
			result:  failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
		{
			name:    "NotFound",
			result:  failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			result:  failure.Conflict("room is already booked for the requested dates"),
			code:    http.StatusConflict,
			message: "room is already booked for the requested dates",
		},
		{
			name:    "InvalidTransition",
			result:  failure.InvalidTransition("cannot confirm a cancelled booking"),
			code:    http.StatusUnprocessableEntity,
			message: "cannot confirm a cancelled booking",
		},
		{
			name:    "Forbidden",
			result:  failure.Forbidden("Access denied"),
			code:    http.StatusForbidden,
			message: "Access denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		code     int
		expected bool
	}{
		{
			name:     "matching code",
			input:    failure.Conflict("conflict"),
			code:     http.StatusConflict,
			expected: true,
		},
		{
			name:     "non-matching code",
			input:    failure.Conflict("conflict"),
			code:     http.StatusNotFound,
			expected: false,
		},
		{
			name:     "regular error",
			input:    errors.New("plain"),
			code:     http.StatusInternalServerError,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.IsCode(tt.input, tt.code); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
