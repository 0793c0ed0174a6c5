package common

// SuccessEnvelope is the standard success body: {code, message, data}
type SuccessEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the standard error body: {code, message, info}
type ErrorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info,omitempty"`
}
