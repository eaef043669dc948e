package handler

type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []HistoryMessage `json:"conversationHistory"`
}

type HistoryMessage struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type IngestData struct {
	Inserted    int `json:"inserted"`
	Deleted     int `json:"deleted"`
	TotalStored int `json:"totalStored"`
}

type IngestResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    *IngestData `json:"data,omitempty"`
}

type NewsStatus struct {
	DatabaseHealthy bool `json:"databaseHealthy"`
	NewsCount       int  `json:"newsCount"`
	APIConfigured   bool `json:"apiConfigured"`
}

type NewsStatusResponse struct {
	Success bool       `json:"success"`
	Status  NewsStatus `json:"status"`
}
