package upload

type Response struct {
	ImageURL string `json:"imageUrl"`
}
