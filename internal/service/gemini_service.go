package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Marmosets/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// TextGenService is the external AI text provider. Every method may fail and
// callers are expected to carry a deterministic fallback.
type TextGenService interface {
	GenerateQuestion(ctx context.Context, jobRole, domain, difficultyLabel, resumeContext string) (string, error)
	EvaluateAnswer(ctx context.Context, question, userAnswer, domain string) (string, error)
	GenerateFeedback(ctx context.Context, strengths, weaknesses []string, overallScore float64) (string, error)
}

type geminiService struct {
	client  *genai.GenerativeModel
	cfg     *config.Config
	timeout time.Duration
}

func NewGeminiService(cfg *config.Config) (TextGenService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{cfg: cfg, client: nil, timeout: time.Duration(cfg.GeminiTimeoutSeconds) * time.Second}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiService{client: model, cfg: cfg, timeout: time.Duration(cfg.GeminiTimeoutSeconds) * time.Second}, nil
}

func (s *geminiService) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

func (s *geminiService) GenerateQuestion(ctx context.Context, jobRole, domain, difficultyLabel, resumeContext string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(
		"Generate a challenging %s interview question for a %s position in the %s domain. Difficulty level: %s. ",
		domain, jobRole, domain, difficultyLabel))
	if resumeContext != "" {
		prompt.WriteString(fmt.Sprintf("Consider the candidate's resume: %s. ", resumeContext))
	}
	prompt.WriteString("Provide only the question without any numbering or extra text.")

	text, err := s.generate(ctx, prompt.String())
	if err != nil {
		log.Error().Err(err).Str("domain", domain).Str("jobRole", jobRole).Msg("Gemini question generation failed")
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *geminiService) EvaluateAnswer(ctx context.Context, question, userAnswer, domain string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an expert interview evaluator. Evaluate the following answer to an interview question.\n\n"+
			"Question: %s\n\nDomain: %s\n\nCandidate's Answer: %s\n\n"+
			"Please provide:\n"+
			"1. Score (0-100), formatted as \"Score: NN/100\"\n"+
			"2. Strengths of the answer\n"+
			"3. Weaknesses\n"+
			"4. Suggestions for improvement\n"+
			"5. Correct answer (if applicable)\n"+
			"Format your response clearly with sections.",
		question, domain, userAnswer)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("domain", domain).Msg("Gemini answer evaluation failed")
		return "", err
	}
	return text, nil
}

func (s *geminiService) GenerateFeedback(ctx context.Context, strengths, weaknesses []string, overallScore float64) (string, error) {
	prompt := fmt.Sprintf(
		"Based on an interview performance with the following metrics:\n"+
			"Overall Score: %.2f/100\n"+
			"Strengths: %s\n"+
			"Weaknesses: %s\n\n"+
			"Generate comprehensive feedback for the candidate including:\n"+
			"1. Overall assessment\n"+
			"2. Key strengths to leverage\n"+
			"3. Areas for improvement\n"+
			"4. Actionable recommendations\n"+
			"5. Preparation tips for next interview",
		overallScore, strings.Join(strengths, ", "), strings.Join(weaknesses, ", "))

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Gemini feedback generation failed")
		return "", err
	}
	return text, nil
}
