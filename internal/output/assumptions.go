package output

import "github.com/shopspring/decimal"

// DefaultAssumptions lists key modeling assumptions rendered when a report carries none.
var DefaultAssumptions = []string{
	"Returns compound monthly at the annual rate / 12",
	"Contributions are made at each month end",
	"Scenario returns: conservative 5%, moderate 10%, aggressive 15%",
	"Dividend withholding tax: 15.4%",
	"Pension tax credit: 15% up to 55,000,000 annual income, 12% above",
}

func assumptionsOf(list []string) []string {
	if len(list) == 0 {
		return DefaultAssumptions
	}
	return list
}

var decimalHundred = decimal.NewFromInt(100)
