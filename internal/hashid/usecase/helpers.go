package usecase

import (
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// validateData enforces the maximum input size.
func validateData(data []byte) error {
	if len(data) > hashidDomain.MaxDataSize {
		return hashidDomain.ErrDataTooLarge
	}
	return nil
}
