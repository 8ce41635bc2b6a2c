package service

import "wealth-advisor/domain"

// FinancialService is the calculation engine. It holds no mutable state;
// Tables is read-only after construction, so one instance may be shared by
// any number of goroutines.
type FinancialService struct {
	tables *Tables
}

// NewFinancialService creates a FinancialService over the given tables,
// falling back to the embedded defaults when tables is nil.
func NewFinancialService(tables *Tables) *FinancialService {
	if tables == nil {
		tables = DefaultTables()
	}
	return &FinancialService{tables: tables}
}

// Tables exposes the lookup data the service was built with.
func (s *FinancialService) Tables() *Tables {
	return s.tables
}

func (s *FinancialService) Compound(input domain.CompoundInput) (domain.CompoundingResult, error) {
	return Compound(input)
}

func (s *FinancialService) ProjectRetirement(input domain.RetirementInput) (domain.RetirementProjection, error) {
	return ProjectRetirement(input)
}

func (s *FinancialService) Amortize(input domain.MortgageInput) (domain.MortgageSchedule, error) {
	return Amortize(input)
}
