package response

type ChatResponse struct {
	Response string `json:"response"`
}
