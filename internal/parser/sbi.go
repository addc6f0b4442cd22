package parser

import (
	"regexp"

	"finsight/internal/models"
)

// newSBIDialect builds the State Bank of India dialect.
//
// CSV layout:
//
//	Date,Description,Debit,Credit,Balance
//	01/04/2023,SALARY,0.00,50000.00,50000.00
//
// Extracted text carries the same five fields separated by whitespace,
// with both amount columns always printed.
func newSBIDialect() Dialect {
	return &dialect{
		bank:          models.BankSBI,
		headerAliases: map[string]string{},
		dateFormats:   []string{"02/01/2006"},
		linePattern: regexp.MustCompile(
			`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\d+\.\d{2})\s+(\d+\.\d{2})\s+(\d+\.\d{2})$`,
		),
	}
}
