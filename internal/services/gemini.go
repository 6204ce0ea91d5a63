package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"campusbuddy-backend/internal/models"
)

// ErrEmptyMessage is returned when the user message is blank after trimming.
var ErrEmptyMessage = errors.New("message is empty")

// Gemini content roles. The API only knows "user" and "model"; anything
// the client sends that is not exactly "user" is treated as the model.
const (
	roleUser  = "user"
	roleModel = "model"
)

const systemPrompt = `You are CampusBuddy, the virtual assistant of the Computer Science Students' Association.

Your job:
- Answer questions about the association: events, study groups, mentorship, membership, and how to get involved.
- Help students with general study and campus-life questions.
- Keep answers short, friendly, and practical. Use plain language.
- If you genuinely do not know something association-specific (dates, room numbers, contacts), say so and point the student to the association's notice board or email instead of guessing.

Never invent official policies, deadlines, or prices.`

const greeting = "Hi! I'm CampusBuddy, the student association's assistant. Ask me about events, study groups, or anything campus related!"

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(1024)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Chat sends one user message to Gemini together with the canned greeting
// and the client-supplied history, and returns the model's text reply.
// The history lives only for the duration of this call.
func (s *GeminiService) Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	session := s.model.StartChat()
	session.History = buildHistory(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", errors.New("Gemini returned an empty response")
	}

	return text, nil
}

// buildHistory assembles the chat session history: the fixed greeting as
// the first model turn, then each prior turn with its role normalized.
// The new user message is not part of the history; SendMessage appends it
// as the final user turn.
func buildHistory(history []models.ChatMessage) []*genai.Content {
	turns := make([]*genai.Content, 0, len(history)+1)

	turns = append(turns, &genai.Content{
		Role:  roleModel,
		Parts: []genai.Part{genai.Text(greeting)},
	})

	for _, m := range history {
		turns = append(turns, &genai.Content{
			Role:  normalizeRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	return turns
}

func normalizeRole(role string) string {
	if role == roleUser {
		return roleUser
	}
	return roleModel
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
