package categorizer

import (
	"regexp"
	"strings"

	"finsight/internal/models"
)

// categoryRule binds one category to its ordered pattern list. Rules
// are evaluated in the fixed category order with first-match-wins
// semantics; there is no scoring.
type categoryRule struct {
	category models.Category
	patterns []*regexp.Regexp
}

// ruleTable compiles the vendor/keyword patterns for each category.
// The iteration order is part of the contract: an earlier category
// claims a description even when a later category also matches.
func ruleTable() []categoryRule {
	raw := []struct {
		category models.Category
		patterns []string
	}{
		{models.CategoryFood, []string{
			`swiggy`, `zomato`, `uber eats`, `dominos`, `pizza`,
			`restaurant`, `cafe`, `coffee`, `food`, `grocery`,
			`supermarket`, `kirana`, `bigbasket`, `milk`, `vegetable`,
		}},
		{models.CategoryTransportation, []string{
			`uber`, `ola`, `cab`, `taxi`, `auto`, `metro`, `train`,
			`bus`, `petrol`, `diesel`, `fuel`, `parking`, `rapido`,
		}},
		{models.CategoryShopping, []string{
			`amazon`, `flipkart`, `myntra`, `ajio`, `nykaa`, `shop`,
			`store`, `mall`, `market`, `purchase`, `buy`, `retail`,
		}},
		{models.CategoryUtilities, []string{
			`electricity`, `water`, `gas`, `bill`, `recharge`,
			`mobile`, `phone`, `internet`, `broadband`, `wifi`,
			`postpaid`, `prepaid`, `dth`, `utility`, `jio`, `airtel`, `vi`,
			`tata power`, `bses`, `mahanagar gas`,
		}},
		{models.CategoryEntertainment, []string{
			`movie`, `netflix`, `prime`, `hotstar`, `disney`, `zee5`,
			`sonyliv`, `theatre`, `cinema`, `ticket`, `concert`, `show`,
			`spotify`, `gaana`, `wynk`, `music`,
		}},
		{models.CategoryHealth, []string{
			`hospital`, `doctor`, `clinic`, `medical`, `medicine`,
			`pharmacy`, `health`, `dental`, `eye`, `apollo`, `max`,
			`medplus`, `netmeds`, `pharmeasy`, `1mg`,
		}},
		{models.CategoryEducation, []string{
			`school`, `college`, `university`, `course`, `class`,
			`tuition`, `fee`, `book`, `stationery`, `udemy`, `coursera`,
			`edx`, `byju`, `unacademy`, `education`,
		}},
		{models.CategoryTravel, []string{
			`flight`, `air`, `indigo`, `spicejet`, `hotel`, `resort`,
			`booking`, `makemytrip`, `goibibo`, `oyo`, `travel`, `tour`,
			`holiday`, `vacation`, `irctc`, `railway`,
		}},
		{models.CategoryHousing, []string{
			`rent`, `maintenance`, `society`, `apartment`, `flat`,
			`house`, `property`, `loan`, `emi`, `mortgage`, `realty`,
		}},
		{models.CategoryIncome, []string{
			`salary`, `income`, `payment received`, `stipend`, `bonus`,
			`interest`, `dividend`, `refund`, `reimbursement`, `credit`,
		}},
		{models.CategoryInvestment, []string{
			`mutual fund`, `share`, `stock`, `bond`, `debenture`, `fd`,
			`fixed deposit`, `gold`, `zerodha`, `upstox`, `groww`,
			`investment`, `sip`, `etf`, `nps`, `ppf`,
		}},
		{models.CategoryBills, []string{
			`bill payment`, `due`, `invoice`, `subscription`, `insurance`,
			`premium`, `tax`, `gst`, `emi`, `installment`, `payment`,
		}},
	}

	rules := make([]categoryRule, 0, len(raw))
	for _, entry := range raw {
		compiled := make([]*regexp.Regexp, 0, len(entry.patterns))
		for _, p := range entry.patterns {
			compiled = append(compiled, regexp.MustCompile(p))
		}
		rules = append(rules, categoryRule{category: entry.category, patterns: compiled})
	}
	return rules
}

// ruleTier is the first categorization strategy: ordered pattern
// matching over the lower-cased description.
type ruleTier struct {
	rules []categoryRule
}

func newRuleTier() *ruleTier {
	return &ruleTier{rules: ruleTable()}
}

func (t *ruleTier) Name() string {
	return "rule"
}

func (t *ruleTier) Attempt(description string) (models.Category, bool) {
	if description == "" {
		return "", false
	}
	lowered := strings.ToLower(description)
	for _, rule := range t.rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(lowered) {
				return rule.category, true
			}
		}
	}
	return "", false
}
