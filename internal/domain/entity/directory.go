package entity

// Location is a venue display record. Read-only for the pipeline.
type Location struct {
	ID      string `json:"id"`
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// Staff is a staff-member display record. Read-only for the pipeline except
// for best-effort cancellation notices sent to its push token.
type Staff struct {
	ID       string `json:"id"`
	BrandID  string `json:"brand_id"`
	Name     string `json:"name"`
	FCMToken string `json:"fcm_token"`
}
