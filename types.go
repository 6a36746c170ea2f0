package llmprovider

import "encoding/json"

// Block type constants
const (
	BlockTypeText       = "text"
	BlockTypeToolUse    = "tool_use"    // Tool invocation requested by the model
	BlockTypeToolResult = "tool_result" // Result sent back from a client-executed tool call
)

// Block represents a single content block within a message.
// This is a content-only type with no database fields.
//
// The Content field stores block-type-specific structured data as a map:
// - text: empty (text in TextContent field)
// - tool_use: {"tool_use_id": "...", "tool_name": "...", "input": {...}}
// - tool_result: {"tool_use_id": "...", "is_error": false}
type Block struct {
	// BlockType indicates the type of block
	// Values: "text", "tool_use", "tool_result"
	BlockType string `json:"block_type"`

	// Sequence indicates the position of this block in the turn (0-indexed)
	Sequence int `json:"sequence"`

	// TextContent contains the text for text blocks
	TextContent *string `json:"text_content,omitempty"`

	// Content contains type-specific structured data
	Content map[string]interface{} `json:"content,omitempty"`
}

// IsTextBlock returns true if this is a text block
func (b *Block) IsTextBlock() bool {
	return b.BlockType == BlockTypeText
}

// IsToolBlock returns true if this is a tool-related block
func (b *Block) IsToolBlock() bool {
	return b.BlockType == BlockTypeToolUse || b.BlockType == BlockTypeToolResult
}

// Text returns the block's textual representation. Text blocks return their
// TextContent; structured blocks are stringified with canonical JSON so they
// can be replayed to providers whose history format only carries text.
func (b *Block) Text() string {
	if b.TextContent != nil {
		return *b.TextContent
	}
	if b.Content == nil {
		return ""
	}
	raw, err := json.Marshal(b.Content)
	if err != nil {
		return ""
	}
	return string(raw)
}

// GetToolUseID returns the tool_use_id from a tool_use or tool_result block
func (b *Block) GetToolUseID() (string, bool) {
	if !b.IsToolBlock() {
		return "", false
	}
	id, ok := b.Content["tool_use_id"].(string)
	return id, ok
}
