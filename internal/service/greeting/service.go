package greeting

import "context"

const (
	welcomeText      = "Hello from the business logic layer!"
	welcomeStatus    = "success"
	welcomeTimestamp = "2024-01-01T00:00:00Z"
)

// Message is the welcome payload produced by the logic layer.
type Message struct {
	Message   string
	Status    string
	Timestamp string
}

// WelcomeMessage returns the fixed welcome payload. The timestamp is a
// constant, not the current time.
func WelcomeMessage() Message {
	return Message{
		Message:   welcomeText,
		Status:    welcomeStatus,
		Timestamp: welcomeTimestamp,
	}
}

// Service defines greeting operations exposed to HTTP handlers.
type Service interface {
	Welcome(ctx context.Context) (*Message, error)
}

// StaticService serves WelcomeMessage. It keeps no state and never fails.
type StaticService struct{}

// NewService returns the static greeting service.
func NewService() *StaticService {
	return &StaticService{}
}

func (*StaticService) Welcome(context.Context) (*Message, error) {
	m := WelcomeMessage()
	return &m, nil
}
