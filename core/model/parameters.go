package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters wraps every configuration error reported by Validate.
var ErrInvalidParameters = errors.New("invalid parameters")

// Contribution factor keys as they appear in configuration.
const (
	HardSavingsKey        = "hardSavings"
	ProjectedSavingsKey   = "projectedSavings"
	ReliabilitySavingsKey = "reliabilitySavings"
	EfficientSavingsKey   = "efficientSavings"
	OtherSavingsKey       = "otherSavings"
)

// ContributionFactorKeys lists the accepted contribution factor names.
var ContributionFactorKeys = []string{
	HardSavingsKey,
	ProjectedSavingsKey,
	ReliabilitySavingsKey,
	EfficientSavingsKey,
	OtherSavingsKey,
}

// ContributionFactors weights each saving category before aggregation.
// Only ProjectedSavings and ReliabilitySavings affect the cash flow; the other
// three are accepted and carried for downstream consumers.
type ContributionFactors struct {
	HardSavings        float64 `json:"hardSavings" yaml:"hardSavings"`
	ProjectedSavings   float64 `json:"projectedSavings" yaml:"projectedSavings"`
	ReliabilitySavings float64 `json:"reliabilitySavings" yaml:"reliabilitySavings"`
	EfficientSavings   float64 `json:"efficientSavings" yaml:"efficientSavings"`
	OtherSavings       float64 `json:"otherSavings" yaml:"otherSavings"`
}

// Parameters is the immutable input of one cash-flow evaluation.
type Parameters struct {
	PlannedReplacementCost              float64             `json:"plannedReplacementCost" yaml:"plannedReplacementCost"`
	UnplannedReplacementCost            float64             `json:"unplannedReplacementCost" yaml:"unplannedReplacementCost"`
	BatteryFailureProbability           float64             `json:"batteryFailureProbability" yaml:"batteryFailureProbability"`
	NumberBatteries                     int                 `json:"numberBatteries" yaml:"numberBatteries"`
	WeeklyInspectionCost                float64             `json:"weeklyInspectionCost" yaml:"weeklyInspectionCost"`
	BatteryIncurringShutdownProbability float64             `json:"batteryIncurringShutdownProbability" yaml:"batteryIncurringShutdownProbability"`
	UnitsCapacity                       float64             `json:"unitsCapacity" yaml:"unitsCapacity"`
	UnitsDowntimeCost                   float64             `json:"unitsDowntimeCost" yaml:"unitsDowntimeCost"`
	ElectricityMarginalCost             float64             `json:"electricityMarginalCost" yaml:"electricityMarginalCost"`
	ContributionFactor                  ContributionFactors `json:"contributionFactor" yaml:"contributionFactor"`
	Lifetime                            int                 `json:"lifetime" yaml:"lifetime"`
	StartTime                           int                 `json:"startTime" yaml:"startTime"`
	StartMaintenanceTime                int                 `json:"startMaintenanceTime" yaml:"startMaintenanceTime"`
	EndMaintenanceTime                  int                 `json:"endMaintenanceTime" yaml:"endMaintenanceTime"`
	// Inflation and DiscountRate are accepted but not applied: the cash flow
	// is nominal and undiscounted.
	Inflation    float64 `json:"inflation" yaml:"inflation"`
	DiscountRate float64 `json:"discountRate" yaml:"discountRate"`
}

// DefaultParameters returns the reference plant configuration.
func DefaultParameters() Parameters {
	return Parameters{
		PlannedReplacementCost:              70000,
		UnplannedReplacementCost:            350000,
		BatteryFailureProbability:           0.01,
		NumberBatteries:                     1,
		WeeklyInspectionCost:                160,
		BatteryIncurringShutdownProbability: 0.05,
		UnitsCapacity:                       1250,
		UnitsDowntimeCost:                   6720000,
		ElectricityMarginalCost:             32,
		ContributionFactor: ContributionFactors{
			HardSavings:        1,
			ProjectedSavings:   0.9,
			ReliabilitySavings: 0.8,
			EfficientSavings:   0.65,
			OtherSavings:       0.5,
		},
		Lifetime:             16,
		StartTime:            2019,
		StartMaintenanceTime: 2020,
		EndMaintenanceTime:   2034,
		Inflation:            0.015,
		DiscountRate:         0.09,
	}
}

// EndTime is the last period of the planning horizon.
func (p Parameters) EndTime() int { return p.StartTime + p.Lifetime }

// InMaintenanceWindow reports whether inspections are performed in period t.
func (p Parameters) InMaintenanceWindow(t int) bool {
	return t >= p.StartMaintenanceTime && t <= p.EndMaintenanceTime
}

// Validate rejects parameter sets the model cannot evaluate. All violations
// are reported at once; values are never clamped.
func (p Parameters) Validate() error {
	var errs []error
	probability := func(name string, v float64) {
		if math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("%s must be a non-negative finite amount, got %v", name, v))
		}
	}

	nonNegative("plannedReplacementCost", p.PlannedReplacementCost)
	nonNegative("unplannedReplacementCost", p.UnplannedReplacementCost)
	nonNegative("weeklyInspectionCost", p.WeeklyInspectionCost)
	nonNegative("unitsCapacity", p.UnitsCapacity)
	nonNegative("unitsDowntimeCost", p.UnitsDowntimeCost)
	nonNegative("electricityMarginalCost", p.ElectricityMarginalCost)
	probability("batteryFailureProbability", p.BatteryFailureProbability)
	probability("batteryIncurringShutdownProbability", p.BatteryIncurringShutdownProbability)
	probability("inflation", p.Inflation)
	probability("discountRate", p.DiscountRate)

	cf := p.ContributionFactor
	probability("contributionFactor.hardSavings", cf.HardSavings)
	probability("contributionFactor.projectedSavings", cf.ProjectedSavings)
	probability("contributionFactor.reliabilitySavings", cf.ReliabilitySavings)
	probability("contributionFactor.efficientSavings", cf.EfficientSavings)
	probability("contributionFactor.otherSavings", cf.OtherSavings)

	if p.NumberBatteries <= 0 {
		errs = append(errs, fmt.Errorf("numberBatteries must be positive, got %d", p.NumberBatteries))
	}
	if p.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("lifetime must be positive, got %d", p.Lifetime))
	}
	if p.StartTime > p.StartMaintenanceTime {
		errs = append(errs, fmt.Errorf("startTime %d is after startMaintenanceTime %d", p.StartTime, p.StartMaintenanceTime))
	}
	if p.StartMaintenanceTime > p.EndMaintenanceTime {
		errs = append(errs, fmt.Errorf("startMaintenanceTime %d is after endMaintenanceTime %d", p.StartMaintenanceTime, p.EndMaintenanceTime))
	}
	if p.EndMaintenanceTime > p.EndTime() {
		errs = append(errs, fmt.Errorf("endMaintenanceTime %d is after the horizon end %d", p.EndMaintenanceTime, p.EndTime()))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidParameters, errors.Join(errs...))
}
