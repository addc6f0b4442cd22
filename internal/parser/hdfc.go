package parser

import (
	"regexp"

	"finsight/internal/models"
)

// newHDFCDialect builds the HDFC Bank dialect.
//
// CSV layout:
//
//	Date,Narration,Withdrawal Amt.,Deposit Amt.,Closing Balance
//	01/04/2023,SALARY,,50000.00,50000.00
//
// Withdrawal and deposit are separate columns and either may be blank,
// so the text pattern treats both amount fields as optional ahead of
// the mandatory balance.
func newHDFCDialect() Dialect {
	return &dialect{
		bank: models.BankHDFC,
		headerAliases: map[string]string{
			"narration":       columnDescription,
			"withdrawal amt.": columnDebit,
			"withdrawal":      columnDebit,
			"deposit amt.":    columnCredit,
			"deposit":         columnCredit,
		},
		dateFormats: []string{"02/01/2006"},
		linePattern: regexp.MustCompile(
			`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(?:(\d+\.\d{2})\s+)?(?:(\d+\.\d{2})\s+)?(\d+\.\d{2})$`,
		),
	}
}
