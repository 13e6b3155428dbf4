package question

// Question is the generator's output. It lives only in the response payload
// until the user answers it; persistence happens at submission time.
type Question struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
}
