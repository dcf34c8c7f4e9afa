package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account's balance conventionally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// Account is one row of the chart of accounts. The chart is static reference
// data; accounts are looked up by code when entries are created and when
// reports section balances by type and subtype.
type Account struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AccountType   AccountType   `json:"accountType"`
	Category      string        `json:"category"`
	SubType       string        `json:"subType"`
	NormalBalance NormalBalance `json:"normalBalance"`
	CurrencyCode  string        `json:"currencyCode"` // Optional; empty means reporting currency
}

// NormalBalanceFor returns the conventional balance side for an account type.
func NormalBalanceFor(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}
