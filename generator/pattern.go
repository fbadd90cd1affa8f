// Package generator synthesizes example values from normalized schemas.
package generator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var faker = gofakeit.New(0)

const (
	lettersMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lettersLower = "abcdefghijklmnopqrstuvwxyz"
	alphanumeric = lettersMixed + "0123456789"
)

var (
	// anchored fixed-count runs, e.g. `^\d{6}$` or `[A-Za-z]{3}$`
	anchoredDigitsRe  = regexp.MustCompile(`\\d\{(\d+)\}\$`)
	anchoredLettersRe = regexp.MustCompile(`\[[a-zA-Z\-]+\]\{(\d+)\}\$`)

	// generic shape markers
	dateShapeRe = regexp.MustCompile(`\\d\{4\}-\\d\{2\}-\\d\{2\}`)
	timeShapeRe = regexp.MustCompile(`\\d\{2\}:\\d\{2\}:\\d\{2\}`)

	// whole-pattern shapes checked after a successful compile
	allDigitsRe  = regexp.MustCompile(`^\^?\\d\+?\$?$`)
	allLettersRe = regexp.MustCompile(`^\^?[a-zA-Z]+\+?\$?$`)
)

// PatternExample derives an example string from a regular expression using a
// fixed battery of recognizers; the first match wins. It is a best-effort
// heuristic, not a regex generator: outputs are only guaranteed to satisfy
// the recognized common shapes. An empty result means no recognizer matched
// and the pattern did not compile.
func PatternExample(pattern string) string {
	if strings.TrimSpace(pattern) == "" {
		return ""
	}

	if m := anchoredDigitsRe.FindStringSubmatch(pattern); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return faker.DigitN(uint(n))
		}
	}

	if strings.Contains(pattern, `\d+`) {
		return faker.DigitN(4)
	}

	if m := anchoredLettersRe.FindStringSubmatch(pattern); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return randomString(lettersMixed, n)
		}
	}

	if strings.Contains(pattern, "email") || strings.Contains(pattern, "@") {
		return "example@test.com"
	}

	if strings.Contains(pattern, `1[3-9]\d{9}`) || strings.Contains(pattern, "phone") {
		return "13800138000"
	}

	if strings.Contains(pattern, "uuid") || strings.Contains(pattern, "UUID") {
		return faker.UUID()
	}

	if strings.Contains(pattern, "yyyy-MM-dd") || dateShapeRe.MatchString(pattern) {
		return "2024-01-01"
	}

	if strings.Contains(pattern, "HH:mm:ss") || timeShapeRe.MatchString(pattern) {
		return "12:00:00"
	}

	if _, err := regexp.Compile(pattern); err != nil {
		return ""
	}

	switch {
	case allDigitsRe.MatchString(pattern):
		return faker.DigitN(6)
	case allLettersRe.MatchString(pattern):
		return randomString(lettersLower, 6)
	case strings.Contains(pattern, "[a-zA-Z0-9]"):
		return randomString(alphanumeric, 8)
	default:
		return randomString(alphanumeric, 8)
	}
}

func randomString(charset string, n int) string {
	res := make([]byte, n)
	for i := range res {
		res[i] = charset[faker.Number(0, len(charset)-1)]
	}
	return string(res)
}
