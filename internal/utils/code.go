package utils

import (
	"crypto/rand" // secure random source for the code suffix
	"strconv"
	"time"
)

// codeAlphabet holds the characters used for the random suffix of a
// confirmation code. Uppercase alphanumerics only, so the code can be
// read over the phone without ambiguity about case.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewConfirmationCode generates a reservation confirmation code in the
// documented format: the fixed "LB" prefix, the trailing eight digits of
// the current unix-millisecond timestamp, and four random uppercase
// alphanumeric characters. Example: LB56789012X4QZ.
//
// The format keeps collisions unlikely but does not guarantee uniqueness;
// the unique index on reservations.confirmation_code is the actual
// guarantee, and callers retry generation on a conflict.
func NewConfirmationCode() (string, error) {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return "LB" + ms + string(buf), nil
}
