// Package scoring extracts numeric answers from model responses and aggregates accuracy.
package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var digitRun = regexp.MustCompile(`\p{Nd}+`)

// ExtractAnswer returns the value of the last run of decimal digits in text, or nil when there is none.
// Any Unicode decimal digit counts, so full-width "４２" and Arabic-Indic "٤٢" both yield 42.
//
// The heuristic is intentionally naive: a minus sign, a decimal point or a thousands separator
// is not part of a run, so "-5" yields 5, "2.5" yields 5 and "1,200" yields 200. A trailing
// incidental number such as a step count wins over the real answer. A run too large for an int
// is treated as no answer.
func ExtractAnswer(text string) *int {
	runs := digitRun.FindAllString(text, -1)
	if len(runs) == 0 {
		return nil
	}

	var ascii strings.Builder
	for _, r := range runs[len(runs)-1] {
		value, ok := digitValue(r)
		if !ok {
			return nil
		}
		ascii.WriteByte(byte('0' + value))
	}
	n, err := strconv.Atoi(ascii.String())
	if err != nil {
		return nil
	}
	return &n
}

// digitValue returns the numeric value of a decimal digit rune.
// Decimal digits are encoded in contiguous blocks of ten starting at zero,
// and adjacent blocks are merged into a single range in unicode.Nd.
func digitValue(r rune) (int, bool) {
	for _, rng := range unicode.Nd.R16 {
		if rng.Stride == 1 && rune(rng.Lo) <= r && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if rng.Stride == 1 && rune(rng.Lo) <= r && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10, true
		}
	}
	return 0, false
}

// extractResponse treats a failed query as a response without an answer
func extractResponse(response *string) *int {
	if response == nil {
		return nil
	}
	return ExtractAnswer(*response)
}
