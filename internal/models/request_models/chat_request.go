package request_models

type StartChatRequest struct {
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ExploreHiddenGemsRequest struct {
	PreferredLocation string `json:"preferred_location"`
}
