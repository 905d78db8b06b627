// Package testutil provides test fixtures and helpers for skilldoc.
package testutil

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sdd-stack/skilldoc/internal/errors"
)

// AssertEqual asserts that two values are equal.
func AssertEqual(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := formatMessage("Expected values to be equal", msgAndArgs...)
		t.Errorf("%s\nExpected: %v\nActual: %v", msg, expected, actual)
	}
}

// AssertError asserts that an error is not nil.
func AssertError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%s", formatMessage("Expected an error", msgAndArgs...))
	}
}

// AssertNoError asserts that an error is nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		msg := formatMessage("Expected no error", msgAndArgs...)
		t.Errorf("%s\nError: %v", msg, err)
	}
}

// AssertErrorCode asserts that err is a DocError with the given code.
func AssertErrorCode(t *testing.T, err error, code string, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%s", formatMessage(fmt.Sprintf("Expected error with code %s, got nil", code), msgAndArgs...))
		return
	}
	if !errors.HasCode(err, code) {
		msg := formatMessage("Unexpected error code", msgAndArgs...)
		t.Errorf("%s\nExpected code: %s\nActual error: %v", msg, code, err)
	}
}

// AssertContains asserts that haystack contains needle.
func AssertContains(t *testing.T, haystack, needle string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		msg := formatMessage("Expected string to contain substring", msgAndArgs...)
		t.Errorf("%s\nNeedle: %q\nHaystack: %q", msg, needle, haystack)
	}
}

func formatMessage(defaultMsg string, msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return defaultMsg
	}
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
