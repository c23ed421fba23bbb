package ai

import "time"

// MessageSnippet is one prior message in a client conversation.
type MessageSnippet struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// SuggestMessageRequest asks for a reply suggestion in a conversation.
type SuggestMessageRequest struct {
	Text       string           `json:"text"`
	ClientID   uint             `json:"client_id,omitempty"`
	ClientName string           `json:"client_name,omitempty"`
	Stage      string           `json:"stage,omitempty"`
	History    []MessageSnippet `json:"history,omitempty"`
}

// SuggestedAction is a follow-up the UI can offer alongside a suggestion.
type SuggestedAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// SuggestMessageResponse is the suggested reply plus its derivation context.
type SuggestMessageResponse struct {
	Suggestion string            `json:"suggestion"`
	Context    string            `json:"context"`
	Actions    []SuggestedAction `json:"actions"`
}

// ReminderTextRequest asks for generated reminder copy for a client.
type ReminderTextRequest struct {
	ClientID   uint             `json:"client_id"`
	ClientName string           `json:"client_name,omitempty"`
	Priority   string           `json:"priority,omitempty"`
	History    []MessageSnippet `json:"history,omitempty"`
}

// ReminderTextResponse is the generated reminder and its due time.
type ReminderTextResponse struct {
	Text  string    `json:"text"`
	DueAt time.Time `json:"due_at"`
}

// InvoiceParseRequest carries the text content of an uploaded invoice.
type InvoiceParseRequest struct {
	ClientID uint   `json:"client_id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Content  string `json:"content,omitempty"`
}

// InvoiceItem is one extracted line item.
type InvoiceItem struct {
	Line     string  `json:"line"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// InvoiceParseResponse is the heuristic parse result.
type InvoiceParseResponse struct {
	Total   float64       `json:"total"`
	Items   []InvoiceItem `json:"items"`
	Context string        `json:"context"`
}

// IdleClient is the subset of client data the idle prompt works from.
type IdleClient struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// IdlePromptRequest lists clients that have gone quiet.
type IdlePromptRequest struct {
	Clients []IdleClient `json:"clients"`
}

// IdlePromptResponse nudges the manager toward the stale clients.
type IdlePromptResponse struct {
	Prompt    string `json:"prompt"`
	ClientIDs []uint `json:"client_ids"`
}

// RecommendRequest asks for a next step and a reminder slot for a client.
type RecommendRequest struct {
	ClientID uint   `json:"client_id,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// Recommendation is the suggested next step for a client.
type Recommendation struct {
	NextStage string `json:"next_stage"`
	Message   string `json:"message"`
}

// ReminderSlot is a proposed time for the next follow-up.
type ReminderSlot struct {
	RemindAt time.Time `json:"remind_at"`
}

// RecommendResponse bundles a recommendation with its reminder slot.
type RecommendResponse struct {
	Recommendation Recommendation `json:"recommendation"`
	Reminder       ReminderSlot   `json:"reminder"`
}

// HistoryAnalysis summarizes an interaction history.
type HistoryAnalysis struct {
	Sentiment  string `json:"sentiment"`
	Engagement string `json:"engagement"`
}
