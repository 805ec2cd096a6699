package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12.50", want: "12.5"},
		{in: " 12.50 ", want: "12.5"},
		{in: "12,50", want: "12.5"},
		{in: "1,234.50", want: "1234.5"},
		{in: "-3", want: "-3"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "+4", want: "4"},
		{in: ".5", want: "0.5"},
		{in: "1e2", wantErr: true},
		{in: "1E2", wantErr: true},
		{in: "1e2147483640", wantErr: true},
		{in: "1234567890123456", wantErr: true},
		{in: "1.12345678901", wantErr: true},
		{in: "--1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAmount))
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParsePrice_RejectsNegative(t *testing.T) {
	_, err := ParsePrice("-1.00")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParsePrice("1e100000000")
	require.ErrorIs(t, err, ErrInvalidAmount)

	p, err := ParsePrice("4.20")
	require.NoError(t, err)
	assert.Equal(t, "4.20", Format(p))
}

func TestValidateTip(t *testing.T) {
	assert.NoError(t, ValidateTip(""))
	assert.NoError(t, ValidateTip("15"))
	assert.NoError(t, ValidateTip("-2"))
	assert.ErrorIs(t, ValidateTip("ten"), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateTip("1e2147483640"), ErrInvalidAmount)
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, ParseOrZero("nope").IsZero())
	assert.True(t, ParseOrZero("").IsZero())
	assert.Equal(t, "7.25", Format(ParseOrZero("7.25")))
}

func TestFormatWithSymbol(t *testing.T) {
	assert.Equal(t, "€12.50", FormatWithSymbol("€", decimal.RequireFromString("12.5")))
	assert.Equal(t, "-$3.00", FormatWithSymbol("$", decimal.NewFromInt(-3)))
	assert.Equal(t, "$0.33", FormatWithSymbol("$", decimal.NewFromInt(1).Div(decimal.NewFromInt(3))))
}

func TestCurrencyFor(t *testing.T) {
	eur := CurrencyFor("EUR")
	assert.Equal(t, "€", eur.Symbol)

	unknown := CurrencyFor("XXX")
	assert.Equal(t, "USD", unknown.Code)

	_, ok := LookupCurrency("XXX")
	assert.False(t, ok)
}
