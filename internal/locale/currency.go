package locale

// NBSP is the non-breaking space placed between a currency symbol and its
// amount so the two never split across a line wrap.
const NBSP = " "

// FormatCurrency renders a monetary amount as "<symbol><NBSP><number>".
// The amount is rounded to the configured digit count before rendering and
// a negative sign sits between the space and the digits, never before the
// symbol. An unrecognized currency code returns a configuration error.
func FormatCurrency(amount float64, code string, digits int) (string, error) {
	symbol, err := Symbol(code)
	if err != nil {
		return "", err
	}
	return symbol + NBSP + FormatNumber(amount, digits), nil
}
