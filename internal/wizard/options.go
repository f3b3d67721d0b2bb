package wizard

// Scope is a project-scope tag offered on the scope step.
type Scope string

const (
	ScopePortfolioSite Scope = "portfolio-site"
	ScopeMarketingSite Scope = "marketing-site"
	ScopeAppFeatures   Scope = "app-features"
)

// Scopes lists every scope in declaration order. Composed messages and the
// review step always follow this order, not the order of selection.
var Scopes = []Scope{ScopePortfolioSite, ScopeMarketingSite, ScopeAppFeatures}

var scopeLabels = map[Scope]string{
	ScopePortfolioSite: "Portfolio site",
	ScopeMarketingSite: "Marketing site",
	ScopeAppFeatures:   "App features",
}

// Label returns the human-readable name, or the raw value if unknown.
func (s Scope) Label() string {
	if label, ok := scopeLabels[s]; ok {
		return label
	}
	return string(s)
}

// Budget is a budget-range selection.
type Budget string

const (
	BudgetUnder5k  Budget = "under-5k"
	Budget5kTo10k  Budget = "5k-10k"
	Budget10kTo25k Budget = "10k-25k"
	Budget25kPlus  Budget = "25k-plus"
)

// Budgets lists every budget range in display order.
var Budgets = []Budget{BudgetUnder5k, Budget5kTo10k, Budget10kTo25k, Budget25kPlus}

var budgetLabels = map[Budget]string{
	BudgetUnder5k:  "Under $5k",
	Budget5kTo10k:  "$5k - $10k",
	Budget10kTo25k: "$10k - $25k",
	Budget25kPlus:  "$25k+",
}

// Label returns the human-readable name. An unset budget reads "Not selected".
func (b Budget) Label() string {
	if b == "" {
		return "Not selected"
	}
	if label, ok := budgetLabels[b]; ok {
		return label
	}
	return string(b)
}
