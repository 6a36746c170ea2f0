package gemini

import (
	"math"
	"strings"

	"google.golang.org/genai"

	llmprovider "github.com/haowjy/meridian-gemini-go"
)

// turn is one entry of the chat history sent to the Gemini API.
type turn struct {
	role genai.Role // genai.RoleUser or genai.RoleModel
	text string
}

// partitionMessages splits the conversation into the pieces the Gemini API
// understands: a system instruction ("preamble"), a turn list, and the most
// recent user prompt (single-shot fallback).
//
// System and developer messages are accumulated into the preamble, each
// content block separated by a blank line, trimmed. Every other message
// becomes one turn: assistant maps to the model role, everything else -
// tool included - maps to the user role. Gemini's history format has no
// distinct tool-result turn, so tool messages are folded into user turns
// with their structured content stringified as canonical JSON.
//
// The input slice is never mutated.
func partitionMessages(messages []llmprovider.Message) (preamble string, turns []turn, lastPrompt string) {
	var preambleParts []string

	for _, msg := range messages {
		switch msg.Role {
		case llmprovider.RoleSystem, llmprovider.RoleDeveloper:
			for _, block := range msg.Blocks {
				if text := block.Text(); text != "" {
					preambleParts = append(preambleParts, text)
				}
			}
			continue
		}

		text := messageText(msg)

		var role genai.Role = genai.RoleUser
		if msg.Role == llmprovider.RoleAssistant {
			role = genai.RoleModel
		}

		if msg.Role == llmprovider.RoleUser {
			lastPrompt = text
		}

		turns = append(turns, turn{role: role, text: text})
	}

	preamble = strings.TrimSpace(strings.Join(preambleParts, "\n\n"))
	return preamble, turns, lastPrompt
}

// messageText flattens a message's blocks into a single string, blocks
// separated by a blank line. Structured blocks are stringified via Block.Text.
func messageText(msg llmprovider.Message) string {
	parts := make([]string, 0, len(msg.Blocks))
	for _, block := range msg.Blocks {
		if text := block.Text(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// historyContents converts turns to the SDK's history representation.
func historyContents(turns []turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, genai.NewContentFromText(t.text, t.role))
	}
	return contents
}

// buildGenerateContentConfig maps request parameters and per-call options
// onto the SDK's generation config. Execution options win over request
// params. A JSON response format sets the response MIME type; a json_schema
// format additionally attaches the translated schema.
func buildGenerateContentConfig(params *llmprovider.RequestParams, opts *llmprovider.ExecutionOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	temperature := pickFloat(optTemperature(opts), paramTemperature(params))
	if temperature != nil {
		t := float32(*temperature)
		config.Temperature = &t
	}

	maxTokens := pickInt(optMaxTokens(opts), paramMaxTokens(params))
	if maxTokens != nil {
		if *maxTokens > math.MaxInt32 {
			config.MaxOutputTokens = math.MaxInt32
		} else {
			config.MaxOutputTokens = int32(*maxTokens)
		}
	}

	if params != nil {
		if params.TopP != nil {
			p := float32(*params.TopP)
			config.TopP = &p
		}
		if params.TopK != nil {
			k := float32(*params.TopK)
			config.TopK = &k
		}
		if len(params.Stop) > 0 {
			config.StopSequences = params.Stop
		}

		if rf := params.ResponseFormat; rf != nil {
			switch rf.Type {
			case "json_object":
				config.ResponseMIMEType = "application/json"
			case "json_schema":
				config.ResponseMIMEType = "application/json"
				config.ResponseSchema = translateSchema(rf.JSONSchema)
			}
		}
	}

	return config
}

func optTemperature(opts *llmprovider.ExecutionOptions) *float64 {
	if opts == nil {
		return nil
	}
	return opts.Temperature
}

func optMaxTokens(opts *llmprovider.ExecutionOptions) *int {
	if opts == nil {
		return nil
	}
	return opts.MaxTokens
}

func paramTemperature(params *llmprovider.RequestParams) *float64 {
	if params == nil {
		return nil
	}
	return params.Temperature
}

func paramMaxTokens(params *llmprovider.RequestParams) *int {
	if params == nil {
		return nil
	}
	return params.MaxTokens
}

func pickFloat(first, second *float64) *float64 {
	if first != nil {
		return first
	}
	return second
}

func pickInt(first, second *int) *int {
	if first != nil {
		return first
	}
	return second
}
