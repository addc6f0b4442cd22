package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// merchantInfo is one synthetic merchant with its expected category and
// the amount band its charges fall in.
type merchantInfo struct {
	Name      string
	Category  models.Category
	MinAmount float64
	MaxAmount float64
}

type transactionGenerator struct {
	merchantPool []merchantInfo
	faker        *gofakeit.Faker
	rng          *rand.Rand
}

// TransactionGeneratorInterface produces realistic synthetic statement
// data for demos and tests.
type TransactionGeneratorInterface interface {
	GenerateMonth(month time.Time, count int) []models.Transaction
	GenerateHistory(months, perMonth int) []models.Transaction
	GenerateCSV(transactions []models.Transaction) string
}

// NewTransactionGenerator creates a seeded generator; the same seed
// reproduces the same statement history.
func NewTransactionGenerator(seed int64) TransactionGeneratorInterface {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// initializeMerchantPool returns merchants whose descriptions resemble
// real Indian bank statement lines.
func initializeMerchantPool() []merchantInfo {
	return []merchantInfo{
		{"UPI-SWIGGY BANGALORE", models.CategoryFood, 150, 800},
		{"UPI-ZOMATO GURGAON", models.CategoryFood, 150, 900},
		{"POS DOMINOS PIZZA", models.CategoryFood, 300, 1200},
		{"UPI-BIGBASKET GROCERY", models.CategoryFood, 500, 3500},

		{"UPI-UBER INDIA", models.CategoryTransportation, 80, 600},
		{"UPI-OLA CABS", models.CategoryTransportation, 80, 550},
		{"HPCL PETROL PUMP", models.CategoryTransportation, 500, 3000},

		{"POS AMAZON PAY", models.CategoryShopping, 300, 5000},
		{"FLIPKART PAYMENTS", models.CategoryShopping, 300, 6000},
		{"MYNTRA DESIGNS", models.CategoryShopping, 500, 4000},

		{"NETFLIX SUBSCRIPTION", models.CategoryEntertainment, 499, 649},
		{"SPOTIFY PREMIUM", models.CategoryEntertainment, 119, 199},
		{"BOOKMYSHOW TICKETS", models.CategoryEntertainment, 200, 1200},

		{"AIRTEL POSTPAID BILL", models.CategoryUtilities, 399, 1499},
		{"JIO RECHARGE", models.CategoryUtilities, 149, 999},
		{"BESCOM ELECTRICITY BILL", models.CategoryUtilities, 500, 4000},

		{"APOLLO PHARMACY", models.CategoryHealth, 150, 2000},
		{"PRACTO CONSULT FEE", models.CategoryHealth, 300, 1500},

		{"UDEMY COURSE FEE", models.CategoryEducation, 500, 3500},

		{"IRCTC TICKET BOOKING", models.CategoryTravel, 300, 2500},
		{"MAKEMYTRIP BOOKING", models.CategoryTravel, 2000, 15000},

		{"LIC PREMIUM PAYMENT", models.CategoryBills, 1500, 8000},
		{"CREDIT CARD BILL PAYMENT", models.CategoryBills, 2000, 20000},

		{"ZERODHA BROKING", models.CategoryInvestment, 1000, 25000},
		{"SIP MUTUAL FUND", models.CategoryInvestment, 1000, 10000},

		{"ATM WDL", models.CategoryOther, 500, 10000},
	}
}

// GenerateMonth produces count transactions dated within one calendar
// month: a salary credit on the 1st, rent on the 5th, a Netflix charge
// on a fixed day, and random merchant debits for the rest.
func (g *transactionGenerator) GenerateMonth(month time.Time, count int) []models.Transaction {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		{
			Date:            models.DateOf(first),
			Description:     "SALARY CREDIT " + strings.ReplaceAll(g.faker.Company(), ",", ""),
			Amount:          decimal.NewFromFloat(g.faker.Float64Range(45000, 95000)).Round(2),
			TransactionType: models.TransactionTypeCredit,
		},
		{
			Date:            models.DateOf(first.AddDate(0, 0, 4)),
			Description:     "HOUSE RENT TRANSFER",
			Amount:          decimal.NewFromFloat(18000),
			TransactionType: models.TransactionTypeDebit,
		},
		{
			Date:            models.DateOf(first.AddDate(0, 0, 9)),
			Description:     "NETFLIX SUBSCRIPTION",
			Amount:          decimal.NewFromFloat(499),
			TransactionType: models.TransactionTypeDebit,
		},
	}

	for len(transactions) < count {
		merchant := g.merchantPool[g.rng.Intn(len(g.merchantPool))]
		day := 1 + g.rng.Intn(lastDayOf(first))
		amount := merchant.MinAmount + g.rng.Float64()*(merchant.MaxAmount-merchant.MinAmount)

		transactions = append(transactions, models.Transaction{
			Date:            models.DateOf(first.AddDate(0, 0, day-1)),
			Description:     merchant.Name,
			Amount:          decimal.NewFromFloat(amount).Round(2),
			TransactionType: models.TransactionTypeDebit,
		})
	}
	return transactions
}

// GenerateHistory produces perMonth transactions for each of the last
// months calendar months, newest month last.
func (g *transactionGenerator) GenerateHistory(months, perMonth int) []models.Transaction {
	now := time.Now().UTC()
	var history []models.Transaction
	for i := months - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		history = append(history, g.GenerateMonth(month, perMonth)...)
	}
	return history
}

// GenerateCSV renders transactions as an SBI-dialect statement file,
// useful for exercising the parser end to end.
func (g *transactionGenerator) GenerateCSV(transactions []models.Transaction) string {
	out := "Date,Description,Debit,Credit\n"
	for i := range transactions {
		t := &transactions[i]
		debit, credit := "", ""
		if t.TransactionType == models.TransactionTypeDebit {
			debit = t.Amount.StringFixed(2)
		} else {
			credit = t.Amount.StringFixed(2)
		}
		out += fmt.Sprintf("%s,%s,%s,%s\n",
			t.Date.Time().Format("02/01/2006"), t.Description, debit, credit)
	}
	return out
}

func lastDayOf(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
