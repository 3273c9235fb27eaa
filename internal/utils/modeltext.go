package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Model replies are free-form text: a score can arrive wrapped in prose, an
// entity name in markdown fences or quotes. These helpers parse that output
// defensively instead of trusting the model to follow instructions.

var numberRe = regexp.MustCompile(`([0-9]*[.])?[0-9]+`)

// ParseScore extracts the first decimal number from free-form model output
// and clamps it into [0,1]. Returns false when no number is present.
func ParseScore(input string) (float64, bool) {
	match := numberRe.FindString(input)
	if match == "" {
		return 0, false
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, true
}

var fenceRe = regexp.MustCompile("(?s)```[a-z]*\\s*(.*?)\\s*```")

// CleanModelReply strips markdown code fences, surrounding quotes and
// whitespace from a model reply so the remaining text can be used verbatim.
func CleanModelReply(input string) string {
	s := strings.TrimSpace(input)
	if matches := fenceRe.FindStringSubmatch(s); len(matches) > 1 {
		s = strings.TrimSpace(matches[1])
	}
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// GroupThousands renders n with comma thousands separators ("1,250,000").
func GroupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FirstDigitRun returns the first run of decimal digits in s, or "".
func FirstDigitRun(s string) string {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}
