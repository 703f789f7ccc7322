package model

// TimestampLayout renders timestamps the way browsers print Date.toISOString().
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ChatTurn is one completed exchange between the visitor and the guide.
type ChatTurn struct {
	User      string `json:"user" example:"Where is the diary of Jahanara Imam?"`
	Assistant string `json:"assistant" example:"You can find it in Gallery 4 on the third floor."`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message     string     `json:"message" validate:"required" example:"Hello"`
	ChatHistory []ChatTurn `json:"chatHistory,omitempty"`
}

// ChatResponse is the normalized reply returned for every served chat request.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp" example:"2025-03-26T10:00:00.000Z"`
	Model     string `json:"model" example:"moonshotai/kimi-k2-instruct"`
	IsMock    bool   `json:"isMock"`
}

// ChatFailureResponse is returned with a 500 when the chat flow fails unexpectedly.
// It still carries a fallback reply so the widget has something to show.
type ChatFailureResponse struct {
	Error    string `json:"error" example:"Internal server error"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

// ModelsResponse is the body of GET /api/models.
type ModelsResponse struct {
	Models       map[string]string `json:"models"`
	CurrentModel string            `json:"currentModel"`
	HasAPIKey    bool              `json:"hasApiKey"`
}

// SelectModelRequest is the body of POST /api/model.
type SelectModelRequest struct {
	Model string `json:"model" validate:"required" example:"llama-3.3-70b-versatile"`
}

// SelectModelResponse confirms a model change.
type SelectModelResponse struct {
	Message      string `json:"message" example:"Model changed to llama-3.3-70b-versatile"`
	CurrentModel string `json:"currentModel"`
	Note         string `json:"note" example:"Model changed successfully"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
	HasAPIKey bool   `json:"hasApiKey"`
	Message   string `json:"message" example:"API key found"`
	Provider  string `json:"provider" example:"Groq"`
}

// ConfigResponse is the body of GET /api/config.
type ConfigResponse struct {
	HasAPIKey       bool              `json:"hasApiKey"`
	CurrentModel    string            `json:"currentModel"`
	AvailableModels map[string]string `json:"availableModels"`
	Provider        string            `json:"provider"`
	Note            string            `json:"note"`
}
