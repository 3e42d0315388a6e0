package domain_models

// SharedPlan is a plan published under an opaque short code.
type SharedPlan struct {
	ID        string `json:"id"`
	ShareCode string `json:"share_code"`
	Title     string `json:"title"`
	Mood      string `json:"mood"`
	Plan      Plan   `json:"plan"`
}
