package response

type SignUpResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SignInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
