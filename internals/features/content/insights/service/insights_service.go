// file: internals/features/content/insights/service/insights_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	examModel "sekolahku_backend/internals/features/content/exams/model"
)

// TextGenerator: boundary generatif — prompt masuk, teks keluar.
// Kegagalan apa pun di baliknya WAJIB ditangkap dan jatuh ke fallback lokal.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAITextGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAITextGenerator(apiKey string) *OpenAITextGenerator {
	return &OpenAITextGenerator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (g *OpenAITextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: response tanpa choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// InsightService: ringkasan performa satu ujian. Generator boleh nil
// (API key kosong) — langsung fallback analitik lokal.
type InsightService struct {
	DB        *gorm.DB
	Generator TextGenerator
}

func NewInsightService(db *gorm.DB, gen TextGenerator) *InsightService {
	return &InsightService{DB: db, Generator: gen}
}

type ExamInsight struct {
	ExamID       uuid.UUID `json:"exam_id"`
	AttemptCount int       `json:"attempt_count"`
	Average      float64   `json:"average"`
	Highest      float64   `json:"highest"`
	Summary      string    `json:"summary"`
	FromFallback bool      `json:"from_fallback"`
}

func (s *InsightService) ExamSummary(ctx context.Context, examID uuid.UUID) (*ExamInsight, error) {
	var results []examModel.ExamResultModel
	if err := s.DB.WithContext(ctx).
		Where("exam_result_exam_id = ? AND exam_result_is_active = TRUE", examID).
		Find(&results).Error; err != nil {
		return nil, err
	}

	insight := &ExamInsight{ExamID: examID, AttemptCount: len(results)}
	for _, r := range results {
		insight.Average += r.ExamResultPercentage
		if r.ExamResultPercentage > insight.Highest {
			insight.Highest = r.ExamResultPercentage
		}
	}
	if len(results) > 0 {
		insight.Average /= float64(len(results))
	}

	insight.Summary = s.summaryText(ctx, insight)
	return insight, nil
}

func (s *InsightService) summaryText(ctx context.Context, in *ExamInsight) string {
	fallback := func() string {
		in.FromFallback = true
		return fmt.Sprintf(
			"Ujian dikerjakan %d siswa. Rata-rata %.1f%%, nilai tertinggi %.1f%%.",
			in.AttemptCount, in.Average, in.Highest)
	}

	if s.Generator == nil {
		return fallback()
	}

	prompt := fmt.Sprintf(
		"Buat ringkasan singkat (maks 3 kalimat, bahasa Indonesia) performa ujian: %d peserta, rata-rata %.1f%%, tertinggi %.1f%%.",
		in.AttemptCount, in.Average, in.Highest)

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil || text == "" {
		log.Printf("[WARN] insight generator gagal, pakai fallback lokal: %v", err)
		return fallback()
	}
	return text
}
