package entity

// Museum is one catalog record. Title is the identity, compared case-insensitively.
type Museum struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	State    string  `json:"state"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Contact  string  `json:"contact"`
	Address  string  `json:"address"`
}
