package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakols/spltr3-sub001/internal/money"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "TwoDecimals", input: "45.67", want: 4567},
		{name: "WholeNumber", input: "12", want: 1200},
		{name: "OneDecimal", input: "0.5", want: 50},
		{name: "Zero", input: "0", want: 0},
		{name: "Negative", input: "-5.88", want: -588},
		{name: "SubCent", input: "1.234", wantErr: true},
		{name: "NotANumber", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "45.67", money.FormatAmount(4567))
	assert.Equal(t, "0.05", money.FormatAmount(5))
	assert.Equal(t, "-5.88", money.FormatAmount(-588))
	assert.Equal(t, "0.00", money.FormatAmount(0))
}

func TestParsePercent(t *testing.T) {
	got, err := money.ParsePercent("33.33")
	require.NoError(t, err)
	assert.Equal(t, int64(3333), got)

	got, err = money.ParsePercent("100")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got)

	_, err = money.ParsePercent("33.333")
	assert.Error(t, err)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33.33", money.FormatPercent(3333))
	assert.Equal(t, "100.00", money.FormatPercent(10000))
}
