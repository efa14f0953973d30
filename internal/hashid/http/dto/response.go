package dto

import (
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// HashResponse is returned by every generation endpoint.
type HashResponse struct {
	Hash string `json:"hash"`
}

// CrcResponse is returned by the checksum endpoint.
type CrcResponse struct {
	Crc string `json:"crc"`
}

// VerifyResponse is returned by both verification endpoints.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ProfileResponse describes the active profile.
type ProfileResponse struct {
	Prefix         string `json:"prefix"`
	Algorithm      string `json:"algorithm"`
	Encoding       string `json:"encoding"`
	CrcLength      int    `json:"crc_length"`
	DigestLength   int    `json:"digest_length"`
	ChecksumLength int    `json:"checksum_length"`
}

// InspectResponse exposes the parts of a self-validating hash.
type InspectResponse struct {
	Hash     string `json:"hash"`
	MainHash string `json:"main_hash"`
	Checksum string `json:"checksum"`
	Valid    bool   `json:"valid"`
}

// MapProfileToResponse converts a domain ProfileInfo to its API representation.
func MapProfileToResponse(info *hashidDomain.ProfileInfo) ProfileResponse {
	return ProfileResponse{
		Prefix:         info.Prefix,
		Algorithm:      info.Algorithm.String(),
		Encoding:       info.Encoding.String(),
		CrcLength:      info.CrcLength,
		DigestLength:   info.DigestLength,
		ChecksumLength: info.ChecksumLength,
	}
}

// MapInspectionToResponse converts a domain Inspection to its API representation.
func MapInspectionToResponse(inspection *hashidDomain.Inspection) InspectResponse {
	return InspectResponse{
		Hash:     inspection.Hash,
		MainHash: inspection.MainHash,
		Checksum: inspection.Checksum,
		Valid:    inspection.Valid,
	}
}
