package llmprovider

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleDeveloper = "developer" // Treated identically to "system" by providers
	RoleTool      = "tool"      // Tool results replayed into the conversation
)

// GenerateRequest contains the parameters for an LLM generation request.
type GenerateRequest struct {
	// Messages contains the conversation history.
	// Each message has a Role (user/assistant/system/developer/tool) and Blocks.
	// Providers never mutate this slice or the blocks it points to.
	Messages []Message

	// Model is the model identifier (e.g., "gemini-1.5-pro").
	// May be overridden per call via ExecutionOptions.Model.
	Model string

	// Params contains all request parameters (temperature, max_tokens,
	// response format, etc.). Provider adapters extract what they support
	// from this unified struct.
	Params *RequestParams

	// Validate is an optional output validator supplied by the caller.
	// Accepted for interface compatibility; the bundled providers do not
	// invoke it.
	Validate func(text string) error

	// OnMessage is an optional callback for appending messages to the
	// caller's conversation store. Accepted for interface compatibility;
	// the bundled providers do not invoke it.
	OnMessage func(msg Message)
}

// Message represents a single message in the conversation.
type Message struct {
	// Role is one of the Role* constants above
	Role string

	// Name optionally identifies the participant (multi-agent conversations)
	Name string

	// Blocks is the list of content blocks for this message
	Blocks []*Block
}
