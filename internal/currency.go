package internal

import (
	"math"
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FallbackCurrency is used when neither flags, config nor the system locale name a currency
const FallbackCurrency = "USD"

// Currency formats ledger amounts for display
type Currency struct {
	Code    string // "SEK", "USD", "EUR"
	unit    currency.Unit
	known   bool
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// defaultLocaleForCurrency is the "home" locale used to format a currency when
// no locale was detected or configured
var defaultLocaleForCurrency = map[string]language.Tag{
	"SEK": language.Swedish,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"JPY": language.Japanese,
	"CAD": language.CanadianFrench,
	"AUD": language.MustParse("en-AU"),
	"BRL": language.BrazilianPortuguese,
	"INR": language.MustParse("en-IN"),
	"PLN": language.Polish,
	"ZAR": language.MustParse("en-ZA"),
	"NZD": language.MustParse("en-NZ"),
}

// GetCurrency returns the Currency for a code, formatted with the currency's home locale
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}
	return GetCurrencyWithLocale(code, tag)
}

// GetCurrencyWithLocale returns a Currency with a specific locale for formatting
func GetCurrencyWithLocale(code string, tag language.Tag) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	return Currency{
		Code:    code,
		unit:    unit,
		known:   err == nil,
		printer: message.NewPrinter(tag),
	}
}

// ResolveCurrency picks the display currency. An explicit code wins, then the system
// locale, then FallbackCurrency. localeOverride (e.g. "sv_SE") replaces the detected locale.
func ResolveCurrency(code, localeOverride string) Currency {
	locale := localeOverride
	if locale == "" {
		locale = detectSystemLocale()
	}
	detectedCode, tag := parseCurrencyFromLocale(locale)

	if code == "" {
		code = detectedCode
	}
	if code == "" {
		return GetCurrency(FallbackCurrency)
	}
	if tag == language.Und {
		return GetCurrency(code)
	}
	return GetCurrencyWithLocale(code, tag)
}

// detectSystemLocale reads the locale from the environment.
// For currency purposes LC_MONETARY is the most specific, then LC_ALL, then LANG.
func detectSystemLocale() string {
	for _, envVar := range []string{"LC_MONETARY", "LC_ALL", "LANG"} {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}
	return ""
}

// parseCurrencyFromLocale extracts currency code and language tag from a locale string.
// Examples: "sv_SE.UTF-8" -> ("SEK", sv-SE), "pt_BR.UTF-8" -> ("BRL", pt-BR)
func parseCurrencyFromLocale(locale string) (string, language.Tag) {
	base := locale
	if idx := strings.Index(base, "."); idx != -1 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "@"); idx != -1 {
		base = base[:idx]
	}

	tag, err := language.Parse(strings.Replace(base, "_", "-", 1))
	if err != nil {
		return "", language.Und
	}

	_, _, region := tag.Raw()
	if region.String() == "" || region.String() == "ZZ" {
		return "", language.Und
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", language.Und
	}
	return unit.String(), tag
}

func (c Currency) symbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	if !c.known {
		return c.Code
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix reports whether the symbol goes before the amount.
// x/text does not expose CLDR symbol placement, so prefix currencies are listed by hand.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "NZD", "ZAR", "INR":
		return true
	default:
		return false
	}
}

// Format renders a signed amount with two decimals and the currency symbol, e.g. "-$75.50"
func (c Currency) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := c.printer.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	if c.isPrefix() {
		return sign + c.symbol() + formatted
	}
	return sign + formatted + " " + c.symbol()
}
