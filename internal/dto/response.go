package dto

// Paging describes result-set pagination for list endpoints that use it.
// Kas listings return the full result set and leave it nil.
type Paging struct {
	Page      int `json:"page"`
	Size      int `json:"size"`
	TotalItem int `json:"totalItem"`
}

// WebResponse is the JSON envelope every endpoint returns.
type WebResponse struct {
	Data   any     `json:"data,omitempty"`
	Errors string  `json:"errors,omitempty"`
	Paging *Paging `json:"paging,omitempty"`
}
