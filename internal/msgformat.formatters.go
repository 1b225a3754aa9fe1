package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

var whitespaceOnly = regexp.MustCompile(`^\s*$`)

// FormatDuration renders a number of seconds as [h:]m:ss[.fff]. Negative
// durations get a leading minus; non-numeric input renders as its string form.
func FormatDuration(value any, _ language.Tag, _ ...any) string {
	total := ToNumber(value)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return NumberToString(total)
	}

	sign := StringValueEmpty
	if total < 0 {
		sign = string(CharMinus)
		total = math.Abs(total)
	}

	sec := math.Mod(total, SecondsPerMinute)
	secText := NumberToString(sec)
	if math.Round(sec) != sec {
		secText = strconv.FormatFloat(sec, FloatFormatFlag, DurationFractionDigit, FloatBitSize64)
		// Rounding may reach the next whole second
		sec, _ = strconv.ParseFloat(secText, FloatBitSize64)
	}

	parts := []string{secText}
	if total < SecondsPerMinute {
		parts = append([]string{string(CharZero)}, parts...)
	} else {
		minutes := math.Round((total - sec) / SecondsPerMinute)
		parts = append([]string{NumberToString(math.Mod(minutes, MinutesPerHour))}, parts...)
		if minutes >= MinutesPerHour {
			hours := math.Round((minutes - math.Mod(minutes, MinutesPerHour)) / MinutesPerHour)
			parts = append([]string{NumberToString(hours)}, parts...)
		}
	}

	rest := make([]string, len(parts)-1)
	for i, part := range parts[1:] {
		rest[i] = padTwo(part)
	}
	return sign + parts[0] + StringValueColon + strings.Join(rest, StringValueColon)
}

// padTwo left-pads a component whose value is below ten
func padTwo(part string) string {
	if n, err := strconv.ParseFloat(part, FloatBitSize64); err == nil && n < PadWidthThreshold {
		return string(CharZero) + part
	}
	return part
}

// FormatSelect picks the option whose key equals the string form of value,
// falling back to the "other" option, then to the empty string. args is the
// raw fragment sequence of "key{content}" entries.
func FormatSelect(value any, _ language.Tag, args ...any) string {
	options := selectOptions(args)

	if content, ok := options[Stringify(value)]; ok {
		return content
	}
	if content, ok := options[SelectKeyOther]; ok {
		return content
	}
	return StringValueEmpty
}

// selectOptions scans fragments for KEY "{" CONTENT "}" runs. The key is the
// run of non-blank string fragments ending just before the opening brace,
// which reassembles keys the tokenizer split on punctuation. Later entries
// with the same key replace earlier ones.
func selectOptions(args []any) map[string]string {
	options := make(map[string]string)

	for i := 0; i < len(args); i++ {
		if !isFragment(args[i], StringValueLBrace) {
			continue
		}
		if i+2 >= len(args) || !isFragment(args[i+2], StringValueRBrace) {
			continue
		}

		end := i - 1
		// Padding between the key and its brace
		for end >= 0 && isBlankFragment(args[end]) {
			end--
		}
		start := end
		for start >= 0 && isKeyFragment(args[start]) {
			start--
		}

		if start < end {
			var key strings.Builder
			for _, part := range args[start+1 : end+1] {
				key.WriteString(part.(string))
			}
			options[key.String()] = flattenFragment(args[i+1])
		}
		i += 2
	}
	return options
}

// isFragment reports whether arg is exactly the string s
func isFragment(arg any, s string) bool {
	str, ok := arg.(string)
	return ok && str == s
}

// isBlankFragment reports whether arg is a whitespace-only string
func isBlankFragment(arg any) bool {
	str, ok := arg.(string)
	return ok && str != StringValueEmpty && whitespaceOnly.MatchString(str)
}

// isKeyFragment reports whether arg can be part of an option key
func isKeyFragment(arg any) bool {
	str, ok := arg.(string)
	if !ok || str == StringValueLBrace || str == StringValueRBrace {
		return false
	}
	return !whitespaceOnly.MatchString(str)
}

// flattenFragment joins nested content depth-first; nil and Undefined
// contribute nothing
func flattenFragment(arg any) string {
	switch val := arg.(type) {
	case nil, UndefinedValue:
		return StringValueEmpty
	case []any:
		var sb strings.Builder
		for _, item := range val {
			sb.WriteString(flattenFragment(item))
		}
		return sb.String()
	case []string:
		return strings.Join(val, StringValueEmpty)
	}
	return Stringify(arg)
}
