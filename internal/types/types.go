package types

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// IntPtr converts an int to a pointer to an int
func IntPtr(i int) *int {
	return &i
}

// Uint64Ptr converts a uint64 to a pointer to a uint64
func Uint64Ptr(u uint64) *uint64 {
	return &u
}

// BoolPtr converts a bool to a pointer to a bool
func BoolPtr(b bool) *bool {
	return &b
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsPositiveNumeric checks if a string is a valid positive numeric value
func IsPositiveNumeric(s string) bool {
	regex := regexp.MustCompile(`^[1-9][0-9]*$`)
	return regex.MatchString(s)
}

// IsEthereumAddress checks if a string is a valid Ethereum address
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ChecksumAddress normalizes an address to its EIP-55 checksummed form
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}
