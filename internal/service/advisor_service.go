package service

// Recommendation is a canned market-outlook payload for the advisor widget
type Recommendation struct {
	Recommendation string `json:"recommendation"`
	Action         string `json:"action"`
	Confidence     string `json:"confidence"`
}

// AdvisorService produces the static trading recommendation shown in the UI.
// TODO: feed the live price trend into the recommendation once the frontend
// widget grows beyond a single static card.
type AdvisorService struct{}

// NewAdvisorService creates a new AdvisorService
func NewAdvisorService() *AdvisorService {
	return &AdvisorService{}
}

// GetRecommendation returns the current recommendation
func (s *AdvisorService) GetRecommendation() Recommendation {
	return Recommendation{
		Recommendation: "Based on current market trends, it's a good time to accumulate gold. The price is stable with a bullish outlook.",
		Action:         "BUY",
		Confidence:     "High",
	}
}
