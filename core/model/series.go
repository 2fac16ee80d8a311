package model

// ReliabilitySeries holds the time-indexed probabilities of the survival
// model. Every slice is aligned on Periods.
type ReliabilitySeries struct {
	Periods                            []int     `json:"periods"`
	SurvivalProbability                []float64 `json:"survivalProbability"`
	FailureProbability                 []float64 `json:"failureProbability"`
	FailureProbabilityAtTime           []float64 `json:"failureProbabilityAtTime"`
	IncurringShutdownProbabilityAtTime []float64 `json:"incurringShutdownProbabilityAtTime"`
}

// ReliabilityPoint is the reliability state of a single period.
type ReliabilityPoint struct {
	Period                             int     `json:"period"`
	SurvivalProbability                float64 `json:"survivalProbability"`
	FailureProbability                 float64 `json:"failureProbability"`
	FailureProbabilityAtTime           float64 `json:"failureProbabilityAtTime"`
	IncurringShutdownProbabilityAtTime float64 `json:"incurringShutdownProbabilityAtTime"`
}

// Len returns the number of periods in the series.
func (s ReliabilitySeries) Len() int { return len(s.Periods) }

// Point returns the entry at position i.
func (s ReliabilitySeries) Point(i int) ReliabilityPoint {
	return ReliabilityPoint{
		Period:                             s.Periods[i],
		SurvivalProbability:                s.SurvivalProbability[i],
		FailureProbability:                 s.FailureProbability[i],
		FailureProbabilityAtTime:           s.FailureProbabilityAtTime[i],
		IncurringShutdownProbabilityAtTime: s.IncurringShutdownProbabilityAtTime[i],
	}
}

// At returns the entry for period t.
func (s ReliabilitySeries) At(t int) (ReliabilityPoint, bool) {
	for i, p := range s.Periods {
		if p == t {
			return s.Point(i), true
		}
	}
	return ReliabilityPoint{}, false
}

// CashFlowRow carries every cost and saving term of one period. Negative
// values are costs.
type CashFlowRow struct {
	Period                                 int     `json:"period"`
	ExpectedReplacementCost                float64 `json:"expectedReplacementCost"`
	ExpectedInspectionCostsNoReplacement   float64 `json:"expectedInspectionCostsNoReplacement"`
	ExpectedInspectionCostsWithReplacement float64 `json:"expectedInspectionCostsWithReplacement"`
	ProjectedSoftSaving                    float64 `json:"projectedSoftSaving"`
	ExpectedLostRevenue                    float64 `json:"expectedLostRevenue"`
	ExpectedDowntimeCost                   float64 `json:"expectedDowntimeCost"`
	ReliabilitySoftSaving                  float64 `json:"reliabilitySoftSaving"`
	TotalHardSaving                        float64 `json:"totalHardSaving"`
	TotalSoftSaving                        float64 `json:"totalSoftSaving"`
	TotalSaving                            float64 `json:"totalSaving"`
}

// CashFlowSeries is the column view of the aggregated cash flow. Cashflow
// equals TotalSaving and is the nominal, undiscounted value of each period.
type CashFlowSeries struct {
	Periods                                []int     `json:"periods"`
	ExpectedReplacementCost                []float64 `json:"expectedReplacementCost"`
	ExpectedInspectionCostsNoReplacement   []float64 `json:"expectedInspectionCostsNoReplacement"`
	ExpectedInspectionCostsWithReplacement []float64 `json:"expectedInspectionCostsWithReplacement"`
	ProjectedSoftSaving                    []float64 `json:"projectedSoftSaving"`
	ExpectedLostRevenue                    []float64 `json:"expectedLostRevenue"`
	ExpectedDowntimeCost                   []float64 `json:"expectedDowntimeCost"`
	ReliabilitySoftSaving                  []float64 `json:"reliabilitySoftSaving"`
	TotalHardSaving                        []float64 `json:"totalHardSaving"`
	TotalSoftSaving                        []float64 `json:"totalSoftSaving"`
	TotalSaving                            []float64 `json:"totalSaving"`
	Cashflow                               []float64 `json:"cashflow"`
}

// NewCashFlowSeries allocates a zeroed series for the given periods.
func NewCashFlowSeries(periods []int) CashFlowSeries {
	n := len(periods)
	ps := make([]int, n)
	copy(ps, periods)
	return CashFlowSeries{
		Periods:                                ps,
		ExpectedReplacementCost:                make([]float64, n),
		ExpectedInspectionCostsNoReplacement:   make([]float64, n),
		ExpectedInspectionCostsWithReplacement: make([]float64, n),
		ProjectedSoftSaving:                    make([]float64, n),
		ExpectedLostRevenue:                    make([]float64, n),
		ExpectedDowntimeCost:                   make([]float64, n),
		ReliabilitySoftSaving:                  make([]float64, n),
		TotalHardSaving:                        make([]float64, n),
		TotalSoftSaving:                        make([]float64, n),
		TotalSaving:                            make([]float64, n),
		Cashflow:                               make([]float64, n),
	}
}

// Len returns the number of periods in the series.
func (s CashFlowSeries) Len() int { return len(s.Periods) }

// Set stores row at position i.
func (s CashFlowSeries) Set(i int, r CashFlowRow) {
	s.Periods[i] = r.Period
	s.ExpectedReplacementCost[i] = r.ExpectedReplacementCost
	s.ExpectedInspectionCostsNoReplacement[i] = r.ExpectedInspectionCostsNoReplacement
	s.ExpectedInspectionCostsWithReplacement[i] = r.ExpectedInspectionCostsWithReplacement
	s.ProjectedSoftSaving[i] = r.ProjectedSoftSaving
	s.ExpectedLostRevenue[i] = r.ExpectedLostRevenue
	s.ExpectedDowntimeCost[i] = r.ExpectedDowntimeCost
	s.ReliabilitySoftSaving[i] = r.ReliabilitySoftSaving
	s.TotalHardSaving[i] = r.TotalHardSaving
	s.TotalSoftSaving[i] = r.TotalSoftSaving
	s.TotalSaving[i] = r.TotalSaving
	s.Cashflow[i] = r.TotalSaving
}

// Row returns the entry at position i.
func (s CashFlowSeries) Row(i int) CashFlowRow {
	return CashFlowRow{
		Period:                                 s.Periods[i],
		ExpectedReplacementCost:                s.ExpectedReplacementCost[i],
		ExpectedInspectionCostsNoReplacement:   s.ExpectedInspectionCostsNoReplacement[i],
		ExpectedInspectionCostsWithReplacement: s.ExpectedInspectionCostsWithReplacement[i],
		ProjectedSoftSaving:                    s.ProjectedSoftSaving[i],
		ExpectedLostRevenue:                    s.ExpectedLostRevenue[i],
		ExpectedDowntimeCost:                   s.ExpectedDowntimeCost[i],
		ReliabilitySoftSaving:                  s.ReliabilitySoftSaving[i],
		TotalHardSaving:                        s.TotalHardSaving[i],
		TotalSoftSaving:                        s.TotalSoftSaving[i],
		TotalSaving:                            s.TotalSaving[i],
	}
}

// Rows returns one row per period, in period order.
func (s CashFlowSeries) Rows() []CashFlowRow {
	rows := make([]CashFlowRow, s.Len())
	for i := range rows {
		rows[i] = s.Row(i)
	}
	return rows
}

// At returns the row for period t.
func (s CashFlowSeries) At(t int) (CashFlowRow, bool) {
	for i, p := range s.Periods {
		if p == t {
			return s.Row(i), true
		}
	}
	return CashFlowRow{}, false
}

// Field is a named cash-flow term.
type Field struct {
	Name  string
	Value float64
}

// Fields lists the terms of r in a fixed order, named as in JSON output.
func (r CashFlowRow) Fields() []Field {
	return []Field{
		{"expectedReplacementCost", r.ExpectedReplacementCost},
		{"expectedInspectionCostsNoReplacement", r.ExpectedInspectionCostsNoReplacement},
		{"expectedInspectionCostsWithReplacement", r.ExpectedInspectionCostsWithReplacement},
		{"projectedSoftSaving", r.ProjectedSoftSaving},
		{"expectedLostRevenue", r.ExpectedLostRevenue},
		{"expectedDowntimeCost", r.ExpectedDowntimeCost},
		{"reliabilitySoftSaving", r.ReliabilitySoftSaving},
		{"totalHardSaving", r.TotalHardSaving},
		{"totalSoftSaving", r.TotalSoftSaving},
		{"totalSaving", r.TotalSaving},
	}
}
