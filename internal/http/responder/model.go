package responder

// Message is the constant greeting carried by every payload.
const Message = "Hello from Docker CI/CD Pipeline!"

// Payload is the identity document returned for every request.
type Payload struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Hostname  string `json:"hostname"`
}
