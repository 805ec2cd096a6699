package money

// Currency is a display currency. Amounts are never converted between
// currencies; the choice only affects the symbol shown.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// DefaultCurrencyCode is used until the user picks a currency.
const DefaultCurrencyCode = "EUR"

// Currencies lists the selectable display currencies.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli Shekel"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
}

// LookupCurrency finds a currency by ISO code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// CurrencyFor returns the currency for code, falling back to the first entry
// of the table for unknown codes.
func CurrencyFor(code string) Currency {
	if c, ok := LookupCurrency(code); ok {
		return c
	}
	return Currencies[0]
}
