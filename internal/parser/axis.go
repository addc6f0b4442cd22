package parser

import (
	"regexp"

	"finsight/internal/models"
)

// newAxisDialect builds the Axis Bank dialect.
//
// CSV layout:
//
//	Tran Date,Particulars,Dr Amount,Cr Amount,Balance
//	01-04-2023,SALARY,,50000.00,50000.00
//
// Axis statements usually use DD-MM-YYYY dates but some exports fall
// back to DD/MM/YYYY, so both formats are tried in order.
func newAxisDialect() Dialect {
	return &dialect{
		bank: models.BankAxis,
		headerAliases: map[string]string{
			"tran date":   columnDate,
			"particulars": columnDescription,
			"dr amount":   columnDebit,
			"cr amount":   columnCredit,
		},
		dateFormats: []string{"02-01-2006", "02/01/2006"},
		linePattern: regexp.MustCompile(
			`^(\d{2}-\d{2}-\d{4})\s+(.+?)\s+(?:(\d+\.\d{2})\s+)?(?:(\d+\.\d{2})\s+)?(\d+\.\d{2})$`,
		),
	}
}
