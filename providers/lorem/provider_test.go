package lorem

import (
	"context"
	"errors"
	"testing"
	"time"

	llmprovider "github.com/haowjy/meridian-gemini-go"
)

func TestSupportsModel(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		model string
		want  bool
	}{
		{"lorem-fast", true},
		{"lorem-slow", true},
		{"lorem-test", true},
		{"gemini-1.5-pro", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.SupportsModel(tt.model); got != tt.want {
			t.Errorf("SupportsModel(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}

func TestGenerateResponse_Basic(t *testing.T) {
	p := NewProvider()

	prompt := "Tell me a story"
	resp, err := p.GenerateResponse(context.Background(), &llmprovider.GenerateRequest{
		Model: "lorem-fast",
		Messages: []llmprovider.Message{
			{
				Role: llmprovider.RoleUser,
				Blocks: []*llmprovider.Block{
					{BlockType: llmprovider.BlockTypeText, TextContent: &prompt},
				},
			},
		},
	}, nil)
	if err != nil {
		t.Fatalf("GenerateResponse() error = %v", err)
	}

	if resp.Text == "" {
		t.Error("expected generated text, got empty string")
	}
	if resp.Model != "lorem-fast" {
		t.Errorf("Model = %q, want lorem-fast", resp.Model)
	}
	if resp.Usage == nil {
		t.Fatal("expected usage to be populated")
	}
	if resp.Usage.InputTokens != 4 {
		t.Errorf("InputTokens = %d, want 4 (word count)", resp.Usage.InputTokens)
	}
	if resp.Usage.OutputTokens <= 0 {
		t.Error("expected positive output tokens")
	}
	if mock, ok := resp.ResponseMetadata["mock"].(bool); !ok || !mock {
		t.Error("expected mock metadata flag")
	}
}

func TestGenerateResponse_UnsupportedModel(t *testing.T) {
	p := NewProvider()

	_, err := p.GenerateResponse(context.Background(), &llmprovider.GenerateRequest{
		Model: "gemini-1.5-pro",
	}, nil)
	if err == nil {
		t.Fatal("expected error for unsupported model, got nil")
	}
	if !errors.Is(err, llmprovider.ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
}

func TestGenerateResponse_OptionsModelOverride(t *testing.T) {
	p := NewProvider()

	resp, err := p.GenerateResponse(context.Background(), &llmprovider.GenerateRequest{
		Model: "gemini-1.5-pro", // Overridden below
	}, &llmprovider.ExecutionOptions{Model: "lorem-fast"})
	if err != nil {
		t.Fatalf("GenerateResponse() error = %v", err)
	}
	if resp.Model != "lorem-fast" {
		t.Errorf("Model = %q, want lorem-fast", resp.Model)
	}
}

func TestGenerateResponse_MaxTokensOverride(t *testing.T) {
	p := NewProvider()

	maxTokens := 10
	resp, err := p.GenerateResponse(context.Background(), &llmprovider.GenerateRequest{
		Model: "lorem-fast",
	}, &llmprovider.ExecutionOptions{MaxTokens: &maxTokens})
	if err != nil {
		t.Fatalf("GenerateResponse() error = %v", err)
	}

	// 10 tokens ≈ 40 chars target; generation overshoots by at most a paragraph
	if len(resp.Text) > 2000 {
		t.Errorf("expected short response for max_tokens=10, got %d chars", len(resp.Text))
	}
}

func TestGenerateResponse_ContextCancellation(t *testing.T) {
	p := NewProvider()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// lorem-slow delays 2s, so the context wins
	_, err := p.GenerateResponse(ctx, &llmprovider.GenerateRequest{
		Model: "lorem-slow",
	}, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}
