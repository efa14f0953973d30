// Package dto provides data transfer objects for the hash endpoints.
package dto

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
	customValidation "github.com/allisson/selfhash/internal/validation"
)

// DataRequest carries base64-encoded input bytes. An absent or empty field hashes the
// empty byte string.
type DataRequest struct {
	Data string `json:"data"`
}

// Validate checks that Data is standard base64 within the size limit.
func (r *DataRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data,
			customValidation.Base64,
			customValidation.MaxDecodedLength(hashidDomain.MaxDataSize),
		),
	)
}

// Bytes returns the decoded payload. Call Validate first.
func (r *DataRequest) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Data)
}

// VerifyRequest checks a plain hash against its input.
type VerifyRequest struct {
	Data string `json:"data"`
	Hash string `json:"hash"`
}

// Validate checks the data encoding and requires a hash.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data,
			customValidation.Base64,
			customValidation.MaxDecodedLength(hashidDomain.MaxDataSize),
		),
		validation.Field(&r.Hash, validation.Required, customValidation.NotBlank),
	)
}

// Bytes returns the decoded payload. Call Validate first.
func (r *VerifyRequest) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Data)
}

// HashRequest carries a self-validating hash.
type HashRequest struct {
	Hash string `json:"hash"`
}

// Validate requires a non-blank hash.
func (r *HashRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Hash, validation.Required, customValidation.NotBlank),
	)
}
