package demo

// helloResp is returned by both endpoints.
type helloResp struct {
	Message    string  `json:"message"`
	ReqID      string  `json:"req_id"`
	ElapsedSec float64 `json:"elapsed_sec"`
}
