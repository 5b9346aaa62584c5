package der

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	atoi       func(string) (int, error)           = strconv.Atoi
	fmtUint    func(uint64, int) string            = strconv.FormatUint
	puint      func(string, int, int) (uint64, error) = strconv.ParseUint
	split      func(string, string) []string        = strings.Split
	join       func([]string, string) string        = strings.Join
	hexEnc     func([]byte) string                  = hex.EncodeToString
	hexDec     func(string) ([]byte, error)         = hex.DecodeString
	b64Enc     func([]byte) string                  = base64.StdEncoding.EncodeToString
	b64Dec     func(string) ([]byte, error)         = base64.StdEncoding.DecodeString
	trimS      func(string) string                  = strings.TrimSpace
	cntns      func(string, string) bool            = strings.Contains
	eqFold     func(string, string) bool            = strings.EqualFold
	strrpt     func(string, int) string             = strings.Repeat
	utf16Enc   func([]rune) []uint16                = utf16.Encode
	utf8OK     func(string) bool                    = utf8.ValidString
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func isNumber(x string) bool {
	if len(x) == 0 {
		return false
	}
	for _, c := range x {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validClass(class int) bool {
	return ClassUniversal <= class && class <= ClassPrivate
}
