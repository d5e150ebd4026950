package models

// Lookup outcome constants, one per checked candidate.
const (
	OutcomeCached       = "cached"
	OutcomeRegistered   = "registered"
	OutcomeUnregistered = "unregistered"
	OutcomeError        = "error"
)

// CheckResponse pairs candidate domains with their results, in suffix order.
// Results[i] is true when Domains[i] is confirmed registered.
type CheckResponse struct {
	Domains  []string `json:"domain"`
	Results  []bool   `json:"results"`
	Outcomes []string `json:"outcomes"`
}

// LegacyCheckResponse mirrors the single-flag response shape where x holds
// the result of the last suffix checked.
type LegacyCheckResponse struct {
	Domains []string `json:"domain"`
	X       bool     `json:"x"`
}

// Legacy converts the response to the single-flag shape.
func (r *CheckResponse) Legacy() LegacyCheckResponse {
	var x bool
	if n := len(r.Results); n > 0 {
		x = r.Results[n-1]
	}
	return LegacyCheckResponse{Domains: r.Domains, X: x}
}

// Append records the result for one candidate.
func (r *CheckResponse) Append(domain string, result bool, outcome string) {
	r.Domains = append(r.Domains, domain)
	r.Results = append(r.Results, result)
	r.Outcomes = append(r.Outcomes, outcome)
}
