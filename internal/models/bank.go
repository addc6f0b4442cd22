package models

import "strings"

// Bank identifies the source statement dialect. The bank is always
// supplied by the caller; the parser never tries to detect it.
type Bank string

const (
	BankSBI  Bank = "sbi"
	BankHDFC Bank = "hdfc"
	BankAxis Bank = "axis"
)

// SupportedBanks returns the banks the parser has a dialect for.
func SupportedBanks() []Bank {
	return []Bank{BankSBI, BankHDFC, BankAxis}
}

// IsValidBank checks if the bank identifier names a known dialect.
func IsValidBank(b Bank) bool {
	switch b {
	case BankSBI, BankHDFC, BankAxis:
		return true
	default:
		return false
	}
}

// NormalizeBank lower-cases and trims a caller-supplied bank name.
func NormalizeBank(name string) Bank {
	return Bank(strings.ToLower(strings.TrimSpace(name)))
}

func (b Bank) String() string {
	return string(b)
}
