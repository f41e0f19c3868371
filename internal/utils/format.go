package utils

import "strconv"

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}

	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return string(result)
}
