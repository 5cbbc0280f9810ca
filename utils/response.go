package utils

// APIResponse is the envelope every endpoint answers with:
// {message, data?, errors?, token?}.
type APIResponse struct {
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Token   string            `json:"token,omitempty"`
}
