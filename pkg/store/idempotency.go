package store

// ReplayedResponse is a completed HTTP response kept for Idempotency-Key replays.
type ReplayedResponse struct {
	Key         string `json:"key"`
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}
