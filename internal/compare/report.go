package compare

// Report is the input to the compare report writers.
type Report struct {
	SourceA  string   `json:"sourceA"`
	SourceB  string   `json:"sourceB"`
	Totals   Counts   `json:"totals"`
	Sections []Result `json:"sections"`
}

// NewReport builds a Report and computes its totals.
func NewReport(sourceA, sourceB string, results []Result) *Report {
	if results == nil {
		results = []Result{}
	}
	return &Report{
		SourceA:  sourceA,
		SourceB:  sourceB,
		Totals:   Totals(results),
		Sections: results,
	}
}
