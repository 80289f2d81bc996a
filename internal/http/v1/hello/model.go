package hello

// HelloData models the response payload for the hello endpoint.
type HelloData struct {
	Message   string `json:"message" doc:"Message from the logic layer" example:"Hello from the business logic layer!"`
	Status    string `json:"status" doc:"Outcome of the call" example:"success"`
	Timestamp string `json:"timestamp" doc:"ISO-8601 timestamp" example:"2024-01-01T00:00:00Z"`
}
