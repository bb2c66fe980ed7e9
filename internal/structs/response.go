package structs

type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
}
