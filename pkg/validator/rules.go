package validator

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Letters accepted in personal names: ASCII letters, Spanish accented vowels,
// ñ and whitespace. RE2's \s is ASCII-only, so Unicode separators (such as
// U+00A0), VT and NEL are listed explicitly.
const nameClass = `[A-Za-zÁÉÍÓÚáéíóúÑñ\s\p{Z}\x{0B}\x{85}]`

// nationalIDLetters maps N mod 23 to the expected DNI control letter.
const nationalIDLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

var (
	emailRegex      = regexp.MustCompile(`(?i)^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	nameRegex       = regexp.MustCompile(`(?i)^` + nameClass + `{2,50}$`)
	surnameRegex    = regexp.MustCompile(`(?i)^` + nameClass + `{2,100}$`)
	phoneRegex      = regexp.MustCompile(`^[0-9]{9}$`)
	postalCodeRegex = regexp.MustCompile(`^[0-9]{5}$`)
	nationalIDRegex = regexp.MustCompile(`(?i)^[0-9]{8}[A-Z]$`)

	// RE2 has no look-ahead, so the password policy is split into a length
	// pattern and one pattern per required character class.
	passwordLenRegex = regexp.MustCompile(`^.{8,}$`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
)

func checkEmail(value string) error {
	if !emailRegex.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}

// checkName and checkSurname compare the NFC form so that a decomposed accent
// ("e" + U+0301) counts as the single letter "é".
func checkName(value string) error {
	if !nameRegex.MatchString(norm.NFC.String(value)) {
		return ErrInvalidCharacters
	}
	return nil
}

func checkSurname(value string) error {
	if !surnameRegex.MatchString(norm.NFC.String(value)) {
		return ErrInvalidCharacters
	}
	return nil
}

func checkPhone(value string) error {
	if !phoneRegex.MatchString(value) {
		return ErrInvalidFormat
	}
	return nil
}

func checkPassword(value string) error {
	if !passwordLenRegex.MatchString(value) ||
		!uppercaseRegex.MatchString(value) ||
		!lowercaseRegex.MatchString(value) ||
		!digitRegex.MatchString(value) {
		return ErrWeakPassword
	}
	return nil
}

func checkPostalCode(value string) error {
	if !postalCodeRegex.MatchString(value) {
		return ErrInvalidFormat
	}
	return nil
}

// checkNationalID validates a Spanish DNI: eight digits followed by the
// control letter for those digits. A well-formed value with the wrong letter
// fails the same way as a malformed one.
func checkNationalID(value string) error {
	if !nationalIDRegex.MatchString(value) {
		return ErrInvalidFormat
	}
	if value[8] != NationalIDLetter(value[:8]) {
		return ErrInvalidFormat
	}
	return nil
}

// NationalIDLetter returns the DNI control letter for an 8-digit string,
// or 0 if digits is not a number.
func NationalIDLetter(digits string) byte {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return nationalIDLetters[n%uint64(len(nationalIDLetters))]
}

// CompilePattern compiles a custom pattern exactly the way Validate does,
// so callers can reject a bad Custom kind before using it.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}
