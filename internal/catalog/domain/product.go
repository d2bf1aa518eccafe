package domain

// Product is a catalog entry as the backend serves it. The client never
// mutates products; the whole set is replaced on each fetch.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	Image    string  `json:"image"`
}
