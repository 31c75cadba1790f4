package model

// BatchRequest is the body of a batch generation request.
type BatchRequest struct {
	Mode  string `json:"mode"`
	Count int    `json:"count"`
}

// BatchResponse lists freshly generated slugids.
type BatchResponse struct {
	Mode    string   `json:"mode"`
	Slugids []string `json:"slugids"`
}
