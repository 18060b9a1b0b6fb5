package sim

const unemployedName = "Unemployed"

// Job is a compensation/cost/stress profile. Values are per in-game hour.
// ID is a stable handle; the Unemployed sentinel has none.
type Job struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Wage        float64 `json:"wage"`
	Costs       float64 `json:"costs"`
	Stress      float64 `json:"stress"`
}

// Unemployed is the starting job: no wage, no costs, baseline stress.
func Unemployed() Job {
	return Job{
		Name:        unemployedName,
		Description: "You do nothing. The government pays for your basic subsistence.",
		Wage:        0.0,
		Costs:       0.0,
		Stress:      1.0,
	}
}

func (j Job) Employed() bool {
	return j.Name != unemployedName
}

// Net is the job's own hourly balance before any state multipliers.
func (j Job) Net() float64 {
	return j.Wage - j.Costs
}
