package locale

import (
	"golang.org/x/text/currency"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
)

// currencySymbols maps an ISO 4217 code to the display prefix used in
// currency output. The prefix sits before the amount for every supported
// currency; symbol-after placement is not part of this product.
var currencySymbols = map[string]string{
	// Major currencies
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	// A
	"AED": "د.إ",
	"AFN": "؋",
	"ALL": "L",
	"AMD": "֏",
	"ARS": "$",
	"AUD": "A$",
	"AZN": "₼",
	// B
	"BAM": "KM",
	"BDT": "৳",
	"BGN": "лв",
	"BHD": ".د.ب",
	"BND": "B$",
	"BOB": "Bs.",
	"BRL": "R$",
	// C
	"CAD": "C$",
	"CHF": "CHF",
	"CLP": "$",
	"COP": "$",
	"CRC": "₡",
	"CZK": "Kč",
	// D
	"DKK": "kr",
	"DOP": "RD$",
	"DZD": "د.ج",
	// E
	"EGP": "E£",
	"ETB": "Br",
	// G
	"GEL": "₾",
	"GHS": "₵",
	"GTQ": "Q",
	// H
	"HKD": "HK$",
	"HNL": "L",
	"HRK": "kn",
	"HUF": "Ft",
	// I
	"IDR": "Rp",
	"ILS": "₪",
	"INR": "₹",
	"IQD": "ع.د",
	"IRR": "﷼",
	"ISK": "kr",
	// J
	"JOD": "د.ا",
	// K
	"KES": "KSh",
	"KGS": "с",
	"KHR": "៛",
	"KRW": "₩",
	"KWD": "د.ك",
	"KZT": "₸",
	// L
	"LAK": "₭",
	"LBP": "ل.ل",
	"LKR": "Rs",
	// M
	"MAD": "د.م.",
	"MDL": "L",
	"MKD": "ден",
	"MMK": "K",
	"MNT": "₮",
	"MOP": "MOP$",
	"MUR": "₨",
	"MVR": "Rf",
	"MXN": "$",
	"MYR": "RM",
	// N
	"NGN": "₦",
	"NIO": "C$",
	"NOK": "kr",
	"NPR": "Rs",
	"NZD": "NZ$",
	// O
	"OMR": "ر.ع.",
	// P
	"PAB": "B/.",
	"PEN": "S/",
	"PHP": "₱",
	"PKR": "Rs",
	"PLN": "zł",
	"PYG": "₲",
	// Q
	"QAR": "ر.ق",
	// R
	"RON": "lei",
	"RSD": "дин",
	"RUB": "₽",
	"RWF": "FRw",
	// S
	"SAR": "ر.س",
	"SEK": "kr",
	"SGD": "S$",
	// T
	"THB": "฿",
	"TND": "د.ت",
	"TRY": "₺",
	"TWD": "NT$",
	"TZS": "TSh",
	// U
	"UAH": "₴",
	"UGX": "USh",
	"UYU": "$U",
	"UZS": "so'm",
	// V
	"VES": "Bs.",
	"VND": "₫",
	// Z
	"ZAR": "R",
	"ZMW": "ZK",
}

// Symbol resolves the display prefix for a currency code. An unrecognized
// code is a configuration bug in the settings record, not a runtime
// condition, and is reported as such.
func Symbol(code string) (string, error) {
	symbol, ok := currencySymbols[code]
	if !ok {
		return "", apperrors.UnknownCurrency(code)
	}
	return symbol, nil
}

// SupportedCurrency reports whether code has a display rule.
func SupportedCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}

// RecommendedPrecision returns the decimal precision the settings form
// pre-fills for a currency, derived from the currency's conventional minor
// unit (JPY has none, USD has two). The engine never enforces this value;
// the tenant may override it and the formatter rounds to whatever increment
// is configured.
func RecommendedPrecision(code string) model.DecimalPrecision {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return model.PrecisionHundredth
	}

	scale, _ := currency.Standard.Rounding(unit)
	switch scale {
	case 0:
		return model.PrecisionWhole
	case 1:
		return model.PrecisionTenth
	case 3:
		return model.PrecisionThousandth
	default:
		return model.PrecisionHundredth
	}
}
