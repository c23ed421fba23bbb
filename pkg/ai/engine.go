// Package ai is the deterministic rule/template engine behind the /ai
// endpoints. It is not a model-serving system: every function is a pure
// text template over its request payload and the clock, so the routes
// stay testable and the provider credentials in configuration remain
// optional.
package ai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Engine produces suggested messages, reminders, invoice parses, and
// idle prompts.
type Engine struct {
	model       string
	temperature float64
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine. The model name and temperature are carried
// from configuration for parity with a real provider but do not change
// the deterministic output.
func NewEngine(model string, temperature float64, opts ...Option) *Engine {
	e := &Engine{
		model:       model,
		temperature: temperature,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SuggestMessage drafts a reply for the manager to send.
func (e *Engine) SuggestMessage(req SuggestMessageRequest) SuggestMessageResponse {
	name := req.ClientName
	if name == "" {
		name = "the client"
	}

	stage := req.Stage
	if stage == "" {
		stage = "initial"
	}

	var suggestion string
	if req.Text != "" {
		suggestion = fmt.Sprintf("Hi %s, following up on %q. Let me know if you have any questions.", name, req.Text)
	} else {
		suggestion = fmt.Sprintf("Hi %s, just checking in. Happy to help with next steps whenever you're ready.", name)
	}

	context := fmt.Sprintf("stage=%s history=%d", stage, len(req.History))

	actions := []SuggestedAction{
		{Type: "send", Label: "Send message"},
		{Type: "schedule_reminder", Label: "Schedule follow-up"},
	}

	return SuggestMessageResponse{
		Suggestion: suggestion,
		Context:    context,
		Actions:    actions,
	}
}

// GenerateReminderText produces reminder copy and a due time. High
// priority clients get a 12 hour window, everyone else 24.
func (e *Engine) GenerateReminderText(req ReminderTextRequest) ReminderTextResponse {
	name := req.ClientName
	if name == "" {
		name = fmt.Sprintf("client #%d", req.ClientID)
	}

	offset := 24 * time.Hour
	if req.Priority == "high" {
		offset = 12 * time.Hour
	}

	return ReminderTextResponse{
		Text:  fmt.Sprintf("Follow up with %s", name),
		DueAt: e.now().UTC().Add(offset),
	}
}

var numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParseInvoice applies a best-effort numeric-token heuristic: each line
// is scanned for number-like substrings with decimal separators
// normalized; the last number extracted anywhere is the total, and any
// line yielding at least two numbers becomes a line item whose first two
// numbers are quantity and price. It is pattern matching, not document
// parsing.
func (e *Engine) ParseInvoice(req InvoiceParseRequest) InvoiceParseResponse {
	var (
		total float64
		items []InvoiceItem
		count int
	)

	for _, line := range strings.Split(req.Content, "\n") {
		matches := numberPattern.FindAllString(line, -1)
		if len(matches) == 0 {
			continue
		}

		numbers := make([]float64, 0, len(matches))
		for _, m := range matches {
			n, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
			if err != nil {
				continue
			}
			numbers = append(numbers, n)
		}
		if len(numbers) == 0 {
			continue
		}

		count += len(numbers)
		total = numbers[len(numbers)-1]

		if len(numbers) >= 2 {
			items = append(items, InvoiceItem{
				Line:     strings.TrimSpace(line),
				Quantity: numbers[0],
				Price:    numbers[1],
			})
		}
	}

	return InvoiceParseResponse{
		Total:   total,
		Items:   items,
		Context: fmt.Sprintf("file=%s numbers=%d", req.FileName, count),
	}
}

// GenerateIdlePrompt nudges the manager toward clients that went quiet.
func (e *Engine) GenerateIdlePrompt(req IdlePromptRequest) IdlePromptResponse {
	if len(req.Clients) == 0 {
		return IdlePromptResponse{
			Prompt:    "All caught up. No idle clients right now.",
			ClientIDs: []uint{},
		}
	}

	names := make([]string, 0, len(req.Clients))
	ids := make([]uint, 0, len(req.Clients))
	for _, c := range req.Clients {
		names = append(names, c.Name)
		ids = append(ids, c.ID)
	}

	return IdlePromptResponse{
		Prompt:    fmt.Sprintf("You haven't talked to %s in a while. Time to reach out?", strings.Join(names, ", ")),
		ClientIDs: ids,
	}
}

// GenerateNextStep recommends the next move for a client's stage.
func (e *Engine) GenerateNextStep(req RecommendRequest) Recommendation {
	stage := req.Stage
	if stage == "" {
		stage = "initial"
	}
	return Recommendation{
		NextStage: stage,
		Message:   fmt.Sprintf("Follow up with client in stage %s with a personalized message.", stage),
	}
}

// ScheduleReminder proposes a follow-up slot: 12 hours out for high
// priority clients, 24 otherwise.
func (e *Engine) ScheduleReminder(req RecommendRequest) ReminderSlot {
	offset := 24 * time.Hour
	if req.Priority == "high" {
		offset = 12 * time.Hour
	}
	return ReminderSlot{RemindAt: e.now().UTC().Add(offset)}
}

// AnalyzeInteractionHistory grades engagement by interaction volume.
func (e *Engine) AnalyzeInteractionHistory(history []MessageSnippet) HistoryAnalysis {
	sentiment := "neutral"
	if len(history) > 0 {
		sentiment = "positive"
	}
	engagement := "medium"
	if len(history) > 3 {
		engagement = "high"
	}
	return HistoryAnalysis{Sentiment: sentiment, Engagement: engagement}
}
