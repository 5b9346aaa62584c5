package der

/*
charset.go contains the character-class validators shared by the
restricted-alphabet string wrappers (NumericString, PrintableString,
IA5String, VisibleString); each wrapper's file otherwise stands alone.
*/

func validateNumericString(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && c != ' ' {
			return invalidDataf("NumericString contains disallowed character at index ", i)
		}
	}
	return nil
}

func isPrintableChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func validatePrintableString(s string) error {
	for i := 0; i < len(s); i++ {
		if !isPrintableChar(s[i]) {
			return invalidDataf("PrintableString contains disallowed character at index ", i)
		}
	}
	return nil
}

func validateIA5String(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return invalidDataf("IA5String contains a non-ASCII octet at index ", i)
		}
	}
	return nil
}

func validateVisibleString(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7E {
			return invalidDataf("VisibleString contains a non-printable octet at index ", i)
		}
	}
	return nil
}
