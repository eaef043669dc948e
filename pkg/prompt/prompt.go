package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Message length bounds, enforced here and nowhere else. The chat service
// calls ValidateMessage before any other work.
const (
	MinMessageLength = 3
	MaxMessageLength = 1000
)

// maxPromptTokens caps the assembled prompt. Tokens are estimated as
// characters / 4, which overcounts slightly for English text and keeps us
// safely inside the model's input budget.
const maxPromptTokens = 2000

const DefaultPersona = `You are FinBuddy, a friendly financial guide for everyday investors in India.
You explain investing concepts in plain language, avoid jargon, and never give
guaranteed-return promises. You always remind users that markets carry risk and
that this is educational guidance, not personalised financial advice.`

const instructionSuffix = "Answer concisely in two or three short paragraphs. " +
	"If the question needs professional advice, say so."

type NewsSnippet struct {
	Headline string
	Source   string
}

type HistoryMessage struct {
	Text   string
	IsUser bool
}

var (
	ErrMessageEmpty    = errors.New("Message cannot be empty")
	ErrMessageTooShort = fmt.Errorf("Message too short. Please ask a question with at least %d characters", MinMessageLength)
	ErrMessageTooLong  = fmt.Errorf("Message too long. Please keep questions under %d characters", MaxMessageLength)
)

// ValidateMessage checks the trimmed message against the length bounds and
// returns a user-facing error when it fails.
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ErrMessageEmpty
	}
	if len(trimmed) < MinMessageLength {
		return ErrMessageTooShort
	}
	if len(trimmed) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// IsValidationError reports whether err came from ValidateMessage, so HTTP
// handlers can map it to a client error instead of a server fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMessageEmpty) ||
		errors.Is(err, ErrMessageTooShort) ||
		errors.Is(err, ErrMessageTooLong)
}

// Build assembles the generation prompt. When the estimate exceeds the token
// ceiling it drops news snippets from the end, then history oldest-first, and
// finally truncates the user message at a sentence boundary. The persona is
// never cut.
func Build(persona string, newsItems []NewsSnippet, history []HistoryMessage, userMessage string) string {
	userMessage = strings.TrimSpace(userMessage)

	p := assemble(persona, newsItems, history, userMessage)
	for estimateTokens(p) > maxPromptTokens && len(newsItems) > 0 {
		newsItems = newsItems[:len(newsItems)-1]
		p = assemble(persona, newsItems, history, userMessage)
	}
	for estimateTokens(p) > maxPromptTokens && len(history) > 0 {
		history = history[1:]
		p = assemble(persona, newsItems, history, userMessage)
	}

	if over := estimateTokens(p) - maxPromptTokens; over > 0 {
		maxMessageChars := len(userMessage) - over*4
		if maxMessageChars < 0 {
			maxMessageChars = 0
		}
		userMessage = truncateAtSentence(userMessage, maxMessageChars)
		p = assemble(persona, newsItems, history, userMessage)
	}

	return p
}

func assemble(persona string, newsItems []NewsSnippet, history []HistoryMessage, userMessage string) string {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(persona))
	sb.WriteString("\n\n")

	if len(newsItems) > 0 {
		sb.WriteString("Recent Financial News Context:\n")
		for _, item := range newsItems {
			if item.Source != "" {
				sb.WriteString(fmt.Sprintf("- %s (%s)\n", item.Headline, item.Source))
			} else {
				sb.WriteString(fmt.Sprintf("- %s\n", item.Headline))
			}
		}
		sb.WriteString("\n")
	}

	if len(history) > 0 {
		sb.WriteString("Previous conversation:\n")
		for _, m := range history {
			if m.IsUser {
				sb.WriteString("User: ")
			} else {
				sb.WriteString("FinBuddy: ")
			}
			sb.WriteString(m.Text)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User question: ")
	sb.WriteString(userMessage)
	sb.WriteString("\n\n")
	sb.WriteString(instructionSuffix)

	return sb.String()
}

func estimateTokens(s string) int {
	return len(s) / 4
}

// truncateAtSentence cuts text to at most maxChars, preferring the last full
// sentence boundary before the limit.
func truncateAtSentence(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	if maxChars <= 0 {
		return ""
	}

	cut := text[:maxChars]
	boundary := -1
	for _, sep := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(cut, sep); i > boundary {
			boundary = i + 1
		}
	}
	if boundary > 0 {
		return strings.TrimSpace(cut[:boundary])
	}
	return strings.TrimSpace(cut)
}
