package validation

import (
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/selfhash/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_WrapsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(validation.NewError("code", "bad value"))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "bad value")
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})
}

func TestBase64(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "Success_Valid", value: "YWJj"},
		{name: "Success_Empty", value: ""},
		{name: "Error_Invalid", value: "not base64!", shouldErr: true},
		{name: "Error_URLAlphabet", value: "-_-_", shouldErr: true},
		{name: "Error_NotString", value: 42, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, Base64)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxDecodedLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "Success_UnderLimit", value: "YWJj"},
		{name: "Success_AtLimit", value: "YWJjZA=="},
		{name: "Error_OverLimit", value: "YWJjZGU=", shouldErr: true},
		{name: "Success_MalformedIgnored", value: strings.Repeat("!", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, MaxDecodedLength(4))
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("sess_", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("", NotBlank))
}
