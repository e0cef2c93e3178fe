package response

import "museumpass/internal/data/entity"

type MuseumResponse struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	State    string  `json:"state"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Contact  string  `json:"contact,omitempty"`
	Address  string  `json:"address,omitempty"`
}

type AvailabilityResponse struct {
	Museum    string   `json:"museum"`
	Date      string   `json:"date"`
	Capacity  int      `json:"capacity"`
	Booked    int      `json:"booked"`
	Remaining int      `json:"remaining"`
	Slots     []string `json:"slots"`
}

func MuseumToResponse(m *entity.Museum) MuseumResponse {
	return MuseumResponse{
		Title:    m.Title,
		Location: m.Location,
		State:    m.State,
		Price:    m.Price,
		Rating:   m.Rating,
		Contact:  m.Contact,
		Address:  m.Address,
	}
}
