package scenarios

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/kilianp07/batterycf/core/model"
	"github.com/kilianp07/batterycf/core/replacement"
)

// Run evaluates sc and returns one message per failed expectation. The
// error is set only when the outcome cannot be checked at all.
func Run(sc *Scenario) ([]string, error) {
	params, warnings, err := model.DecodeParameters(sc.Overrides)
	var res replacement.Result
	if err == nil {
		res, err = replacement.Evaluate(params)
	}

	var mismatches []string
	if sc.Expected.Warnings != len(warnings) {
		mismatches = append(mismatches, fmt.Sprintf("warnings: expected %d, got %d %v", sc.Expected.Warnings, len(warnings), warnings))
	}
	if sc.Expected.ConfigError {
		if !errors.Is(err, model.ErrInvalidParameters) {
			mismatches = append(mismatches, fmt.Sprintf("expected a configuration error, got %v", err))
		}
		return mismatches, nil
	}
	if err != nil {
		return mismatches, err
	}

	tol := sc.Expected.Tolerance
	cf := res.CashFlow
	if n := sc.Expected.Periods; n != 0 && cf.Len() != n {
		mismatches = append(mismatches, fmt.Sprintf("periods: expected %d, got %d", n, cf.Len()))
	}
	for _, t := range sortedKeys(sc.Expected.ReplacementCost) {
		row, ok := cf.At(t)
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("replacement_cost: period %d outside horizon", t))
			continue
		}
		if want := sc.Expected.ReplacementCost[t]; !equal(row.ExpectedReplacementCost, want, tol) {
			mismatches = append(mismatches, fmt.Sprintf("replacement_cost[%d]: expected %v, got %v", t, want, row.ExpectedReplacementCost))
		}
	}
	for _, t := range sortedKeys(sc.Expected.Survival) {
		pt, ok := res.Reliability.At(t)
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("survival: period %d outside horizon", t))
			continue
		}
		if want := sc.Expected.Survival[t]; !equal(pt.SurvivalProbability, want, tol) {
			mismatches = append(mismatches, fmt.Sprintf("survival[%d]: expected %v, got %v", t, want, pt.SurvivalProbability))
		}
	}
	if want := sc.Expected.InteriorReplacementCost; want != nil {
		for i := 1; i < cf.Len()-1; i++ {
			if got := cf.ExpectedReplacementCost[i]; !equal(got, *want, tol) {
				mismatches = append(mismatches, fmt.Sprintf("replacement_cost[%d]: expected %v, got %v", cf.Periods[i], *want, got))
			}
		}
	}
	return mismatches, nil
}

func equal(got, want, tol float64) bool {
	if tol == 0 {
		return got == want
	}
	return math.Abs(got-want) <= tol
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
