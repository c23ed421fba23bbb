package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return base }
}

func TestSuggestMessage(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.SuggestMessage(SuggestMessageRequest{
		Text:       "pricing for the annual plan",
		ClientName: "Acme",
		Stage:      "negotiation",
		History:    []MessageSnippet{{Sender: "client", Content: "hi"}},
	})

	assert.Contains(t, resp.Suggestion, "Acme")
	assert.Contains(t, resp.Suggestion, "pricing for the annual plan")
	assert.Equal(t, "stage=negotiation history=1", resp.Context)
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, "send", resp.Actions[0].Type)
}

func TestSuggestMessageDefaults(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.SuggestMessage(SuggestMessageRequest{})
	assert.Contains(t, resp.Suggestion, "the client")
	assert.Equal(t, "stage=initial history=0", resp.Context)
}

func TestGenerateReminderTextPriorityOffsets(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3, WithClock(fixedClock()))
	base := fixedClock()()

	high := engine.GenerateReminderText(ReminderTextRequest{ClientID: 1, ClientName: "Acme", Priority: "high"})
	assert.Equal(t, base.Add(12*time.Hour), high.DueAt)
	assert.Equal(t, "Follow up with Acme", high.Text)

	normal := engine.GenerateReminderText(ReminderTextRequest{ClientID: 7})
	assert.Equal(t, base.Add(24*time.Hour), normal.DueAt)
	assert.Equal(t, "Follow up with client #7", normal.Text)
}

func TestParseInvoiceLastNumberIsTotal(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.ParseInvoice(InvoiceParseRequest{
		FileName: "invoice.txt",
		Content:  "Invoice 2024-113\nWidgets 2 x 49.90\nShipping 10\nTotal: 109,80",
	})

	assert.InDelta(t, 109.80, resp.Total, 0.001)
}

func TestParseInvoiceLineItems(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.ParseInvoice(InvoiceParseRequest{
		Content: "Widgets 2 x 49.90\nplain text line\nShipping 10",
	})

	// Only the line with two or more numbers becomes an item.
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Widgets 2 x 49.90", resp.Items[0].Line)
	assert.InDelta(t, 2, resp.Items[0].Quantity, 0.001)
	assert.InDelta(t, 49.90, resp.Items[0].Price, 0.001)
}

func TestParseInvoiceNormalizesDecimalComma(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.ParseInvoice(InvoiceParseRequest{Content: "Итого 1234,56"})
	assert.InDelta(t, 1234.56, resp.Total, 0.001)
}

func TestParseInvoiceEmptyContent(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.ParseInvoice(InvoiceParseRequest{})
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Items)
}

func TestGenerateIdlePrompt(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.GenerateIdlePrompt(IdlePromptRequest{
		Clients: []IdleClient{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}},
	})

	assert.Contains(t, resp.Prompt, "Acme, Globex")
	assert.Equal(t, []uint{1, 2}, resp.ClientIDs)
}

func TestGenerateIdlePromptNoClients(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	resp := engine.GenerateIdlePrompt(IdlePromptRequest{})
	assert.Contains(t, resp.Prompt, "caught up")
	assert.Empty(t, resp.ClientIDs)
}

func TestScheduleReminder(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3, WithClock(fixedClock()))
	base := fixedClock()()

	assert.Equal(t, base.Add(12*time.Hour), engine.ScheduleReminder(RecommendRequest{Priority: "high"}).RemindAt)
	assert.Equal(t, base.Add(24*time.Hour), engine.ScheduleReminder(RecommendRequest{}).RemindAt)
}

func TestAnalyzeInteractionHistory(t *testing.T) {
	engine := NewEngine("gpt-4o", 0.3)

	empty := engine.AnalyzeInteractionHistory(nil)
	assert.Equal(t, "neutral", empty.Sentiment)
	assert.Equal(t, "medium", empty.Engagement)

	busy := engine.AnalyzeInteractionHistory(make([]MessageSnippet, 5))
	assert.Equal(t, "positive", busy.Sentiment)
	assert.Equal(t, "high", busy.Engagement)
}
