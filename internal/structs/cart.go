package structs

// CartItem lives only in process memory for the lifetime of a chat session;
// it is never persisted.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}
