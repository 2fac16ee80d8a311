// Package cashflow turns reliability probabilities into the per-period
// expected costs and savings of planned battery replacement.
//
// Values are nominal: no inflation or discounting is applied.
package cashflow

import "github.com/kilianp07/batterycf/core/model"

const (
	// weeksPerMonth and monthsPerYear annualise the weekly inspection cost
	// when no replacement took place.
	weeksPerMonth = 4.0
	monthsPerYear = 12.0
	// inspectionsAfterReplacement is the yearly inspection count once a
	// failed battery has been replaced.
	inspectionsAfterReplacement = 12.0
	// shutdownRevenueHours converts the shutdown probability into lost
	// revenue hours for one period.
	shutdownRevenueHours = 6.0
)

// Aggregate computes every cost and saving term for each period of rel.
// Each row only depends on its own reliability point and p. Aggregate does
// not validate its inputs.
func Aggregate(p model.Parameters, axis model.TimeAxis, rel model.ReliabilitySeries) model.CashFlowSeries {
	out := model.NewCashFlowSeries(rel.Periods)
	for i := 0; i < rel.Len(); i++ {
		out.Set(i, Row(p, axis, rel.Point(i)))
	}
	return out
}

// Row computes the cash flow of a single period.
func Row(p model.Parameters, axis model.TimeAxis, pt model.ReliabilityPoint) model.CashFlowRow {
	t := pt.Period
	n := float64(p.NumberBatteries)
	r := model.CashFlowRow{Period: t}

	if p.InMaintenanceWindow(t) {
		r.ExpectedInspectionCostsNoReplacement = n * p.WeeklyInspectionCost * pt.SurvivalProbability * weeksPerMonth * monthsPerYear
		r.ExpectedInspectionCostsWithReplacement = (1 - pt.SurvivalProbability) * p.WeeklyInspectionCost * inspectionsAfterReplacement * n
	}

	switch {
	case t == axis.Start():
		// Up-front planned replacement of every battery.
		r.ExpectedReplacementCost = -(n * p.PlannedReplacementCost)
	case t < axis.End():
		r.ExpectedReplacementCost = pt.FailureProbabilityAtTime * (p.UnplannedReplacementCost * n)
		r.ExpectedLostRevenue = pt.IncurringShutdownProbabilityAtTime * p.UnitsCapacity * n * p.ElectricityMarginalCost * shutdownRevenueHours
		r.ExpectedDowntimeCost = p.UnitsDowntimeCost * pt.FailureProbabilityAtTime
	default:
		// Residual value of the surviving batteries. The sign is positive,
		// unlike the up-front cost of the first period.
		r.ExpectedReplacementCost = pt.SurvivalProbability * p.PlannedReplacementCost * n
	}

	r.ProjectedSoftSaving = r.ExpectedInspectionCostsNoReplacement - r.ExpectedInspectionCostsWithReplacement
	r.ReliabilitySoftSaving = r.ExpectedLostRevenue + r.ExpectedDowntimeCost
	r.TotalHardSaving = r.ExpectedReplacementCost
	r.TotalSoftSaving = r.ProjectedSoftSaving*p.ContributionFactor.ProjectedSavings +
		r.ReliabilitySoftSaving*p.ContributionFactor.ReliabilitySavings
	r.TotalSaving = r.TotalHardSaving + r.TotalSoftSaving
	return r
}
