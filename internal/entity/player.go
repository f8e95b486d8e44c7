package entity

type Player struct {
	Account  string `json:"account"`
	Mark     string `json:"mark"`
	Username string `json:"username,omitempty"`
}
