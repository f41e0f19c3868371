package utils

import "unicode"

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/' || r == '\''
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars reports runes that are neither letters, digits nor separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if a prefix is worth a lookup.
// Empty strings, pure numbers, special characters and runs of one repeated
// character ("aaaa") are rejected.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	return !IsRepetitive(s)
}

// IsRepetitive checks if a string is the same rune repeated 3+ times
func IsRepetitive(s string) bool {
	runes := []rune(s)
	if len(runes) <= 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
