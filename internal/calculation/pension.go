package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	// nationalPensionAValue is the average monthly income of all insured members.
	nationalPensionAValue   = 2_861_091
	nationalPensionStartAge = 65
	pensionSavingsStartAge  = 55
	lifeExpectancy          = 85
	withdrawalYears         = 20
	incomeAgeStep           = 5
	defaultPensionReturn    = 6
)

var (
	occupationalPayoutRate = decimal.NewFromInt(3)
	personalPayoutRate     = decimal.NewFromInt(4)
)

// PayoutStrategy turns a balance at retirement into a monthly pension
type PayoutStrategy interface {
	MonthlyPayment(balance decimal.Decimal) decimal.Decimal
	WithdrawalYears() int
	GetStrategyName() string
}

// LevelAnnuityPayout pays equal monthly amounts that exhaust the balance over a fixed term
type LevelAnnuityPayout struct {
	AnnualRatePercent decimal.Decimal
	Years             int
}

// NewLevelAnnuityPayout creates a level payout strategy
func NewLevelAnnuityPayout(annualRatePercent decimal.Decimal, years int) *LevelAnnuityPayout {
	return &LevelAnnuityPayout{AnnualRatePercent: annualRatePercent, Years: years}
}

// MonthlyPayment returns the level monthly payment for balance
func (lap *LevelAnnuityPayout) MonthlyPayment(balance decimal.Decimal) decimal.Decimal {
	return LevelAnnuityPayment(balance, lap.AnnualRatePercent, lap.Years)
}

// WithdrawalYears returns the payout term
func (lap *LevelAnnuityPayout) WithdrawalYears() int { return lap.Years }

// GetStrategyName returns the name of this strategy
func (lap *LevelAnnuityPayout) GetStrategyName() string {
	return fmt.Sprintf("level_annuity_%dy_%s%%", lap.Years, lap.AnnualRatePercent.String())
}

// EstimateNationalPension applies the simplified benefit formula
// 1.2 × (A + B) / 2 × (1 + 0.05 × years / 12), paid at 85%.
func EstimateNationalPension(in domain.NationalPensionInput) (domain.NationalPensionEstimate, error) {
	if err := in.Validate(); err != nil {
		return domain.NationalPensionEstimate{}, err
	}

	a := decimal.NewFromInt(nationalPensionAValue)
	yearCoefficient := one.Add(decimal.RequireFromString("0.05").Mul(decimal.NewFromInt(int64(in.ContributionYears))).Div(twelve))
	basic := decimal.RequireFromString("1.2").Mul(a.Add(in.AverageMonthlySalary)).Div(decimal.NewFromInt(2)).Mul(yearCoefficient)

	monthly := pkgdec.RoundWhole(basic.Mul(decimal.RequireFromString("0.85")))
	annual := monthly.Mul(twelve)

	return domain.NationalPensionEstimate{
		MonthlyAmount:       monthly,
		AnnualAmount:        annual,
		StartAge:            nationalPensionStartAge,
		ContributionYears:   in.ContributionYears,
		LifeExpectancy:      lifeExpectancy,
		TotalLifetimeAmount: annual.Mul(decimal.NewFromInt(lifeExpectancy - nationalPensionStartAge)),
	}, nil
}

// ProjectPensionAccount grows an account until retirement and converts the balance with payout.
func ProjectPensionAccount(kind domain.PensionAccountKind, in domain.PensionAccountInput, yearsToRetirement, startAge int, payout PayoutStrategy) (domain.PensionAccountProjection, error) {
	if err := in.Validate(); err != nil {
		return domain.PensionAccountProjection{}, fmt.Errorf("%s: %w", kind, err)
	}
	if err := domain.RequireYears("years to retirement", yearsToRetirement); err != nil {
		return domain.PensionAccountProjection{}, fmt.Errorf("%s: %w", kind, err)
	}

	monthlyTotal := in.MonthlyContribution
	if kind == domain.AccountDC {
		monthlyTotal = monthlyTotal.Add(in.EmployerContribution)
	}
	months := yearsToRetirement * 12

	balance := pkgdec.RoundWhole(LumpSumFutureValue(in.CurrentBalance, in.AnnualReturnPercent, months).
		Add(AnnuityFutureValue(monthlyTotal, in.AnnualReturnPercent, months)))
	monthly := payout.MonthlyPayment(balance)

	return domain.PensionAccountProjection{
		Kind:             kind,
		TotalBalance:     balance,
		MonthlyPension:   monthly,
		AnnualPension:    monthly.Mul(twelve),
		StartAge:         startAge,
		WithdrawalYears:  payout.WithdrawalYears(),
		TotalContributed: monthlyTotal.Mul(decimal.NewFromInt(int64(months))),
	}, nil
}

// ProjectDC projects a defined-contribution account with employee and employer contributions.
func ProjectDC(in domain.PensionAccountInput, yearsToRetirement, retirementAge int) (domain.PensionAccountProjection, error) {
	return ProjectPensionAccount(domain.AccountDC, in, yearsToRetirement, retirementAge,
		NewLevelAnnuityPayout(occupationalPayoutRate, withdrawalYears))
}

// ProjectIRP projects an individual retirement pension. It is a DC account without employer money.
func ProjectIRP(in domain.PensionAccountInput, yearsToRetirement, retirementAge int) (domain.PensionAccountProjection, error) {
	in.EmployerContribution = decimal.Zero
	return ProjectPensionAccount(domain.AccountIRP, in, yearsToRetirement, retirementAge,
		NewLevelAnnuityPayout(occupationalPayoutRate, withdrawalYears))
}

// ProjectPensionSavings projects a personal pension savings account, payable from age 55.
func ProjectPensionSavings(in domain.PensionAccountInput, yearsToRetirement, retirementAge int) (domain.PensionAccountProjection, error) {
	in.EmployerContribution = decimal.Zero
	startAge := max(retirementAge, pensionSavingsStartAge)
	return ProjectPensionAccount(domain.AccountPensionSavings, in, yearsToRetirement, startAge,
		NewLevelAnnuityPayout(personalPayoutRate, withdrawalYears))
}

// RetirementIncomeInput gathers the pieces of the combined retirement income.
type RetirementIncomeInput struct {
	Profile        domain.Profile
	Portfolio      domain.Portfolio
	National       domain.NationalPensionEstimate
	DC             domain.PensionAccountProjection
	IRP            domain.PensionAccountProjection
	PensionSavings domain.PensionAccountProjection
}

// CalculateRetirementIncome adds pensions to the dividend of the portfolio grown
// to retirement, and lists the monthly income every five years up to age 85.
func CalculateRetirementIncome(in RetirementIncomeInput) (domain.RetirementIncome, error) {
	years := in.Profile.YearsToRetirement()
	growth := in.Portfolio.Growth(years)
	if err := growth.Validate(); err != nil {
		return domain.RetirementIncome{}, err
	}

	futureAssets := futureValue(growth)
	breakdown := domain.IncomeBreakdown{
		NationalPension: in.National.MonthlyAmount,
		DCPension:       in.DC.MonthlyPension,
		IRP:             in.IRP.MonthlyPension,
		PensionSavings:  in.PensionSavings.MonthlyPension,
		Dividend:        MonthlyIncome(futureAssets, in.Portfolio.DividendYieldPercent),
	}
	breakdown.Total = sumIncome(breakdown)

	var byAge []domain.IncomeAtAge
	for age := in.Profile.RetirementAge; age <= lifeExpectancy; age += incomeAgeStep {
		at := domain.IncomeAtAge{Age: age, IncomeBreakdown: breakdown}
		if age < nationalPensionStartAge {
			at.NationalPension = decimal.Zero
		}
		if age < pensionSavingsStartAge {
			at.PensionSavings = decimal.Zero
		}
		at.Total = sumIncome(at.IncomeBreakdown)
		byAge = append(byAge, at)
	}

	return domain.RetirementIncome{
		RetirementAge:          in.Profile.RetirementAge,
		TotalMonthlyIncome:     breakdown.Total,
		Breakdown:              breakdown,
		FutureInvestmentAssets: pkgdec.RoundWhole(futureAssets),
		IncomeByAge:            byAge,
	}, nil
}

func sumIncome(b domain.IncomeBreakdown) decimal.Decimal {
	return b.NationalPension.Add(b.DCPension).Add(b.IRP).Add(b.PensionSavings).Add(b.Dividend)
}

// DiagnosePension scores each pension layer and suggests what is missing.
func DiagnosePension(national domain.NationalPensionEstimate, dc, irp, savings domain.PensionAccountProjection) domain.PensionDiagnosis {
	d := domain.PensionDiagnosis{Recommendations: []string{}}

	if national.MonthlyAmount.IsPositive() {
		d.Public = domain.LayerDiagnosis{Status: domain.LayerActive, Score: 100}
	} else {
		d.Public = domain.LayerDiagnosis{Status: domain.LayerMissing}
		d.Recommendations = append(d.Recommendations, "Enrol in the national pension")
	}

	if dc.TotalBalance.IsPositive() || irp.TotalBalance.IsPositive() {
		d.Occupational = domain.LayerDiagnosis{Status: domain.LayerActive, Score: 100}
	} else {
		d.Occupational = domain.LayerDiagnosis{Status: domain.LayerMissing}
		d.Recommendations = append(d.Recommendations, "Open a retirement pension account (DC or IRP)")
	}

	if savings.TotalBalance.IsPositive() {
		d.Personal = domain.LayerDiagnosis{Status: domain.LayerActive, Score: 100}
	} else {
		d.Personal = domain.LayerDiagnosis{Status: domain.LayerPartial, Score: 50}
		d.Recommendations = append(d.Recommendations, "Open a pension savings account to use the tax credit")
	}

	total := decimal.NewFromInt(int64(d.Public.Score + d.Occupational.Score + d.Personal.Score))
	d.OverallScore = int(pkgdec.RoundWhole(total.Div(decimal.NewFromInt(3))).IntPart())
	return d
}

// OptimizePension projects the accounts with IRP and pension savings contributions
// raised to the tax credit limits and the DC employer contribution matching the employee.
func OptimizePension(profile domain.Profile, accounts domain.PensionAccounts, rules domain.DeductionRules, targetReturnPercent decimal.Decimal) (domain.OptimizedPension, error) {
	if targetReturnPercent.IsZero() {
		targetReturnPercent = decimal.NewFromInt(defaultPensionReturn)
	}
	years := profile.YearsToRetirement()

	savingsMonthly := rules.PensionSavingsCap.Div(twelve).Round(0)
	irpMonthly := NewPensionDeductionCalculatorWithRules(rules).irpRoom(rules.PensionSavingsCap).Div(twelve).Round(0)
	dcMonthly := accounts.DC.MonthlyContribution

	dc, err := ProjectDC(domain.PensionAccountInput{
		CurrentBalance:       accounts.DC.CurrentBalance,
		MonthlyContribution:  dcMonthly,
		EmployerContribution: dcMonthly,
		AnnualReturnPercent:  targetReturnPercent,
	}, years, profile.RetirementAge)
	if err != nil {
		return domain.OptimizedPension{}, err
	}
	irp, err := ProjectIRP(domain.PensionAccountInput{
		CurrentBalance:      accounts.IRP.CurrentBalance,
		MonthlyContribution: irpMonthly,
		AnnualReturnPercent: targetReturnPercent,
	}, years, profile.RetirementAge)
	if err != nil {
		return domain.OptimizedPension{}, err
	}
	savings, err := ProjectPensionSavings(domain.PensionAccountInput{
		CurrentBalance:      accounts.PensionSavings.CurrentBalance,
		MonthlyContribution: savingsMonthly,
		AnnualReturnPercent: targetReturnPercent,
	}, years, profile.RetirementAge)
	if err != nil {
		return domain.OptimizedPension{}, err
	}

	current := accounts.IRP.MonthlyContribution.Add(accounts.PensionSavings.MonthlyContribution)
	return domain.OptimizedPension{
		DC:                        dc,
		IRP:                       irp,
		PensionSavings:            savings,
		TotalMonthlyPension:       dc.MonthlyPension.Add(irp.MonthlyPension).Add(savings.MonthlyPension),
		MonthlyContributionChange: irpMonthly.Add(savingsMonthly).Sub(current),
		RecommendedIRPMonthly:     irpMonthly,
		RecommendedSavingsMonthly: savingsMonthly,
		RecommendedDCMonthly:      dcMonthly,
	}, nil
}

// SummarizePension runs every pension calculator for a plan.
func SummarizePension(cfg *domain.Configuration) (*domain.PensionSummary, error) {
	years := cfg.Profile.YearsToRetirement()
	retirementAge := cfg.Profile.RetirementAge

	national, err := EstimateNationalPension(cfg.Pension.National)
	if err != nil {
		return nil, fmt.Errorf("national pension: %w", err)
	}
	dc, err := ProjectDC(cfg.Pension.DC, years, retirementAge)
	if err != nil {
		return nil, err
	}
	irp, err := ProjectIRP(cfg.Pension.IRP, years, retirementAge)
	if err != nil {
		return nil, err
	}
	savings, err := ProjectPensionSavings(cfg.Pension.PensionSavings, years, retirementAge)
	if err != nil {
		return nil, err
	}

	income, err := CalculateRetirementIncome(RetirementIncomeInput{
		Profile:        cfg.Profile,
		Portfolio:      cfg.Portfolio,
		National:       national,
		DC:             dc,
		IRP:            irp,
		PensionSavings: savings,
	})
	if err != nil {
		return nil, fmt.Errorf("retirement income: %w", err)
	}

	optimized, err := OptimizePension(cfg.Profile, cfg.Pension, cfg.Rules(), cfg.Assumptions.PensionTargetReturn)
	if err != nil {
		return nil, fmt.Errorf("optimized pension: %w", err)
	}

	return &domain.PensionSummary{
		National:       national,
		DC:             dc,
		IRP:            irp,
		PensionSavings: savings,
		Retirement:     income,
		Diagnosis:      DiagnosePension(national, dc, irp, savings),
		Optimized:      optimized,
	}, nil
}
