package dictionary

import "github.com/nexinvo/gstledger/internal/ledger"

type GroupDef struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Reserved bool   `json:"reserved"`
}

var curated = map[ledger.AccountType][]GroupDef{
	ledger.AccountTypeBank: {
		{Code: "bank_accounts", Label: "Bank Accounts", Reserved: false},
		{Code: "bank_od", Label: "Bank OD A/c", Reserved: false},
	},
	ledger.AccountTypeCash: {
		{Code: "cash_in_hand", Label: "Cash-in-Hand", Reserved: true},
	},
	ledger.AccountTypeDebtor: {
		{Code: "sundry_debtors", Label: "Sundry Debtors", Reserved: false},
	},
	ledger.AccountTypeCreditor: {
		{Code: "sundry_creditors", Label: "Sundry Creditors", Reserved: false},
	},
	ledger.AccountTypeIncome: {
		{Code: "sales_accounts", Label: "Sales Accounts", Reserved: false},
		{Code: "direct_income", Label: "Direct Income", Reserved: false},
		{Code: "indirect_income", Label: "Indirect Income", Reserved: false},
	},
	ledger.AccountTypeExpense: {
		{Code: "purchase_accounts", Label: "Purchase Accounts", Reserved: false},
		{Code: "direct_expenses", Label: "Direct Expenses", Reserved: false},
		{Code: "indirect_expenses", Label: "Indirect Expenses", Reserved: false},
	},
	ledger.AccountTypeAsset: {
		{Code: "fixed_assets", Label: "Fixed Assets", Reserved: false},
		{Code: "current_assets", Label: "Current Assets", Reserved: false},
		{Code: "investments", Label: "Investments", Reserved: false},
	},
	ledger.AccountTypeLiability: {
		{Code: "current_liabilities", Label: "Current Liabilities", Reserved: false},
		{Code: "loans", Label: "Loans (Liability)", Reserved: false},
	},
	ledger.AccountTypeEquity: {
		{Code: "capital_account", Label: "Capital Account", Reserved: true},
		{Code: "reserves_surplus", Label: "Reserves & Surplus", Reserved: false},
	},
	ledger.AccountTypeTax: {
		{Code: "duties_taxes", Label: "Duties & Taxes", Reserved: true},
	},
	ledger.AccountTypeStock: {
		{Code: "stock_in_hand", Label: "Stock-in-Hand", Reserved: false},
	},
}

// IsReserved reports whether the group is a reserved built-in for the type.
// Reserved groups back system accounts that cannot be deleted.
func IsReserved(t ledger.AccountType, group string) bool {
	for _, g := range curated[t] {
		if g.Code == group && g.Reserved {
			return true
		}
	}
	return false
}

// GroupsFor returns the curated groups for a type, or all groups when t is nil.
func GroupsFor(t *ledger.AccountType) []GroupDef {
	if t == nil {
		out := make([]GroupDef, 0)
		for _, list := range curated {
			out = append(out, list...)
		}
		return out
	}
	list := curated[*t]
	out := make([]GroupDef, len(list))
	copy(out, list)
	return out
}
