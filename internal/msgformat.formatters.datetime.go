package internal

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// datePatterns holds the date layouts of one locale by style
type datePatterns struct {
	medium string // numeric day, short month, numeric year
	short  string // numeric day, numeric month, numeric year
	long   string // numeric day, long month, numeric year
	full   string // long weekday plus the long form
}

// timePatterns holds the time layouts of one locale by style
type timePatterns struct {
	medium string // hour, minute, second
	short  string // hour, minute
	long   string // medium plus short zone name
}

// Date layouts keyed by language, or language-REGION where the region changes
// the order of fields
var datePatternsByLocale = map[string]datePatterns{
	"en":    {"Jan 2, 2006", "1/2/2006", "January 2, 2006", "Monday, January 2, 2006"},
	"en-GB": {"2 Jan 2006", "02/01/2006", "2 January 2006", "Monday 2 January 2006"},
	"en-AU": {"2 Jan 2006", "02/01/2006", "2 January 2006", "Monday 2 January 2006"},
	"de":    {"2. Jan. 2006", "2.1.2006", "2. January 2006", "Monday, 2. January 2006"},
	"fi":    {"2. Jan 2006", "2.1.2006", "2. January 2006", "Monday 2. January 2006"},
	"fr":    {"2 Jan 2006", "02/01/2006", "2 January 2006", "Monday 2 January 2006"},
	"es":    {"2 Jan 2006", "2/1/2006", "2 de January de 2006", "Monday, 2 de January de 2006"},
	"it":    {"2 Jan 2006", "2/1/2006", "2 January 2006", "Monday 2 January 2006"},
	"nl":    {"2 Jan 2006", "2-1-2006", "2 January 2006", "Monday 2 January 2006"},
	"pt":    {"2 de Jan de 2006", "02/01/2006", "2 de January de 2006", "Monday, 2 de January de 2006"},
	"sv":    {"2 Jan 2006", "2006-01-02", "2 January 2006", "Monday 2 January 2006"},
	"ja":    {"2006年1月2日", "2006/01/02", "2006年1月2日", "2006年1月2日 Monday"},
}

// Abbreviated month names for locales whose forms differ from monday's short
// names
var shortMonthNamesByLocale = map[string][12]string{
	"fi": {"tammik.", "helmik.", "maalisk.", "huhtik.", "toukok.", "kesäk.",
		"heinäk.", "elok.", "syysk.", "lokak.", "marrask.", "jouluk."},
}

// Layouts for locales with no entry above
var defaultDatePatterns = datePatterns{"2 Jan 2006", "2006-01-02", "2 January 2006", "Monday, 2 January 2006"}

var timePatternsByLocale = map[string]timePatterns{
	"en":    {"3:04:05 PM", "3:04 PM", "3:04:05 PM MST"},
	"en-GB": {"15:04:05", "15:04", "15:04:05 MST"},
	"en-AU": {"3:04:05 pm", "3:04 pm", "3:04:05 pm MST"},
	"fi":    {"15.04.05", "15.04", "15.04.05 MST"},
	"it":    {"15:04:05", "15:04", "15:04:05 MST"},
}

var defaultTimePatterns = timePatterns{"15:04:05", "15:04", "15:04:05 MST"}

// formatDate is the built-in date formatter. The optional style argument is
// short, long or full.
func (r *Registry) formatDate(value any, locale language.Tag, args ...any) string {
	t, ok := ToTime(value, r.location)
	if !ok {
		return InvalidDateText
	}

	style := styleArg(args)
	layout := r.cache.GetOrCreate(layoutCacheKey(CacheKeyDate, locale, style), func() any {
		patterns, found := datePatternsByLocale[localeKey(locale, hasDatePatterns)]
		if !found {
			patterns = defaultDatePatterns
		}
		switch style {
		case StyleShort:
			return patterns.short
		case StyleLong:
			return patterns.long
		case StyleFull:
			return patterns.full
		default:
			return patterns.medium
		}
	}).(string)

	return formatLayout(t, layout, locale)
}

// formatLayout renders t with monday, splicing in the locale's own
// abbreviated month name where the layout has a short month.
func formatLayout(t time.Time, layout string, locale language.Tag) string {
	if names, ok := shortMonthNamesByLocale[localeKey(locale, hasShortMonthNames)]; ok {
		if before, after, found := cutShortMonth(layout); found {
			return formatLayout(t, before, locale) + names[t.Month()-1] + formatLayout(t, after, locale)
		}
	}
	return monday.Format(t, layout, mondayLocale(locale))
}

// cutShortMonth splits layout around its first "Jan" that is not part of
// "January"
func cutShortMonth(layout string) (before, after string, found bool) {
	for i := 0; i+len(LayoutShortMonth) <= len(layout); i++ {
		if !strings.HasPrefix(layout[i:], LayoutShortMonth) {
			continue
		}
		if strings.HasPrefix(layout[i:], LayoutLongMonth) {
			i += len(LayoutLongMonth) - 1
			continue
		}
		return layout[:i], layout[i+len(LayoutShortMonth):], true
	}
	return layout, StringValueEmpty, false
}

// formatTime is the built-in time formatter. short drops the seconds; long
// and full append the zone abbreviation.
func (r *Registry) formatTime(value any, locale language.Tag, args ...any) string {
	t, ok := ToTime(value, r.location)
	if !ok {
		return InvalidDateText
	}

	style := styleArg(args)
	layout := r.cache.GetOrCreate(layoutCacheKey(CacheKeyTime, locale, style), func() any {
		patterns, found := timePatternsByLocale[localeKey(locale, hasTimePatterns)]
		if !found {
			patterns = defaultTimePatterns
		}
		switch style {
		case StyleShort:
			return patterns.short
		case StyleLong, StyleFull:
			return patterns.long
		default:
			return patterns.medium
		}
	}).(string)

	return monday.Format(t, layout, mondayLocale(locale))
}

// styleArg extracts the style keyword from the argument fragments
func styleArg(args []any) string {
	var sb strings.Builder
	for _, arg := range args {
		if arg == nil || IsUndefined(arg) {
			continue
		}
		sb.WriteString(Stringify(arg))
	}
	return strings.ToLower(strings.TrimSpace(sb.String()))
}

func layoutCacheKey(kind string, locale language.Tag, style string) string {
	return strings.Join([]string{kind, locale.String(), style}, CacheKeySeparator)
}

func hasDatePatterns(key string) bool {
	_, ok := datePatternsByLocale[key]
	return ok
}

func hasShortMonthNames(key string) bool {
	_, ok := shortMonthNamesByLocale[key]
	return ok
}

func hasTimePatterns(key string) bool {
	_, ok := timePatternsByLocale[key]
	return ok
}

// localeKey picks the most specific table key for locale: language-REGION
// when the region is explicit and has its own entry, else the language.
func localeKey(locale language.Tag, has func(string) bool) string {
	base, _ := locale.Base()
	if region, conf := locale.Region(); conf == language.Exact {
		key := base.String() + string(CharHyphen) + region.String()
		if has(key) {
			return key
		}
	}
	return base.String()
}

// mondayLocale maps a language tag to the month and weekday name table used
// to translate formatted output, e.g. fi -> fi_FI
func mondayLocale(locale language.Tag) monday.Locale {
	base, _ := locale.Base()
	region, _ := locale.Region()
	candidate := monday.Locale(base.String() + StringValueUnderline + region.String())
	for _, supported := range monday.ListLocales() {
		if supported == candidate {
			return candidate
		}
	}
	return monday.LocaleEnUS
}
