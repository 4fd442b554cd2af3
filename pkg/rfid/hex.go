package rfid

import "strconv"

// defaultPassword is used when a tag access request leaves the password empty.
const defaultPassword = "00"

// decodeHex parses s as a base-16 integer. Anything strconv rejects,
// including a "0x" prefix, is reported as a ParameterError naming field.
func decodeHex(s, field string) (int64, error) {
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, &ParameterError{Name: field}
	}
	return v, nil
}

func decodePassword(s string) (int64, error) {
	if s == "" {
		s = defaultPassword
	}
	return decodeHex(s, "password")
}

// validateHexText checks data that is passed to the SDK as hex text
// rather than as an integer. Empty text is rejected.
func validateHexText(s, field string) error {
	if s == "" {
		return &ParameterError{Name: field}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return &ParameterError{Name: field}
		}
	}
	return nil
}
