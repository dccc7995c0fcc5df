package dto

// SubmitRequest carries the page's form fields. Nothing is required; a
// missing field is relayed as an empty string.
type SubmitRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SubmitResponse struct {
	Message string `json:"message"`
	Color   string `json:"color"`
}
