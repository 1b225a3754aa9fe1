package internal

import (
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// numberFormat is a resolved number style bound to a locale printer
type numberFormat struct {
	printer *message.Printer
	kind    string
	unit    currency.Unit
	code    string // Raw currency code, kept for the unknown-code fallback
	valid   bool   // Whether code named a known ISO 4217 currency
}

// format renders num in the resolved style
func (f *numberFormat) format(num float64) string {
	switch f.kind {
	case NumberKindInteger:
		return f.printer.Sprint(number.Decimal(num, number.MaxFractionDigits(0)))
	case NumberKindPercent:
		return f.printer.Sprint(number.Percent(num))
	case NumberKindCurrency:
		amount := f.printer.Sprint(number.Decimal(num,
			number.MinFractionDigits(CurrencyFractionDigit),
			number.MaxFractionDigits(CurrencyFractionDigit)))
		if !f.valid {
			return f.code + StringValueSpace + amount
		}
		return f.printer.Sprint(currency.Symbol(f.unit)) + StringValueSpace + amount
	default:
		return f.printer.Sprint(number.Decimal(num))
	}
}

// formatNumber is the built-in number formatter. Accepted styles are integer,
// percent, currency and currency:CODE; anything else formats as a plain
// decimal.
func (r *Registry) formatNumber(value any, locale language.Tag, args ...any) string {
	num := ToNumber(value)
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return Stringify(value)
	}

	kind, code := parseNumberSpec(numberSpec(args))
	return r.numberFormat(locale, kind, code).format(num)
}

// numberFormat returns the cached format for (locale, kind, code)
func (r *Registry) numberFormat(locale language.Tag, kind, code string) *numberFormat {
	switch kind {
	case NumberKindInteger, NumberKindPercent:
		code = StringValueEmpty
	case NumberKindCurrency:
		if code == StringValueEmpty {
			code = DefaultCurrency
		}
	default:
		kind, code = StringValueEmpty, StringValueEmpty
	}

	key := strings.Join([]string{CacheKeyNumber, locale.String(), kind, code}, CacheKeySeparator)
	return r.cache.GetOrCreate(key, func() any {
		r.logger.Debug(LogMsgCacheMiss, zap.String(LogFieldCacheKey, key))

		f := &numberFormat{
			printer: message.NewPrinter(locale),
			kind:    kind,
			code:    code,
		}
		if kind == NumberKindCurrency {
			unit, err := currency.ParseISO(code)
			if err != nil {
				r.logger.Warn(LogMsgCurrencyInvalid,
					zap.String(LogFieldCurrency, code),
					zap.Error(err))
			} else {
				f.unit = unit
				f.valid = true
			}
		}
		return f
	}).(*numberFormat)
}

// numberSpec rejoins argument fragments into a single style string. The
// tokenizer splits "currency:EUR" into three fragments and keeps any
// whitespace around the colon as separate fragments.
func numberSpec(args []any) string {
	switch {
	case len(args) == 0:
		return StringValueEmpty
	case len(args) == 1:
		return strings.TrimSpace(Stringify(args[0]))
	case len(args) >= 3 && Stringify(args[1]) == StringValueColon && isTruthy(args[0]) && isTruthy(args[2]):
		return strings.TrimSpace(Stringify(args[0]) + StringValueColon + Stringify(args[2]))
	}

	var sb strings.Builder
	for _, arg := range args {
		if arg == nil || IsUndefined(arg) {
			continue
		}
		sb.WriteString(Stringify(arg))
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(sb.String(), StringValueSpace))
}

// parseNumberSpec splits a style string into its kind and optional currency
func parseNumberSpec(spec string) (kind, code string) {
	if spec == StringValueEmpty {
		return StringValueEmpty, StringValueEmpty
	}
	kind, code, found := strings.Cut(spec, StringValueColon)
	if !found {
		return strings.TrimSpace(spec), StringValueEmpty
	}
	// Anything after a second colon is ignored
	code, _, _ = strings.Cut(code, StringValueColon)
	return strings.TrimSpace(kind), strings.ToUpper(strings.TrimSpace(code))
}

// NumberInteger formats value with zero fraction digits
func (r *Registry) NumberInteger(value any, locale language.Tag, _ ...any) string {
	return r.formatNumber(value, locale, NumberKindInteger)
}

// NumberPercent formats value as a percentage of 1
func (r *Registry) NumberPercent(value any, locale language.Tag, _ ...any) string {
	return r.formatNumber(value, locale, NumberKindPercent)
}

// NumberCurrency formats value as money. The first argument, if any, is the
// ISO 4217 code.
func (r *Registry) NumberCurrency(value any, locale language.Tag, args ...any) string {
	if len(args) > 0 && isTruthy(args[0]) {
		return r.formatNumber(value, locale, NumberKindCurrency+StringValueColon+Stringify(args[0]))
	}
	return r.formatNumber(value, locale, NumberKindCurrency)
}
