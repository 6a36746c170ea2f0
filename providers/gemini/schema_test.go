package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestTranslateSchema_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, translateSchema(nil))
}

func TestTranslateSchema_ObjectWithProperties(t *testing.T) {
	t.Parallel()

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "string"},
		},
		"additionalProperties": false,
		"$schema":              "http://json-schema.org/draft-07/schema#",
	}

	got := translateSchema(schema)

	require.NotNil(t, got)
	assert.Equal(t, genai.TypeObject, got.Type)
	require.Contains(t, got.Properties, "x")
	assert.Equal(t, genai.TypeString, got.Properties["x"].Type)
	// additionalProperties and $schema have no representation in the
	// target dialect; the typed tree carries neither.
}

func TestTranslateSchema_NestedItems(t *testing.T) {
	t.Parallel()

	schema := map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"count": map[string]interface{}{"type": "integer"},
				"ratio": map[string]interface{}{"type": "number"},
				"done":  map[string]interface{}{"type": "boolean"},
			},
		},
	}

	got := translateSchema(schema)

	require.NotNil(t, got)
	assert.Equal(t, genai.TypeArray, got.Type)
	require.NotNil(t, got.Items)
	assert.Equal(t, genai.TypeObject, got.Items.Type)
	assert.Equal(t, genai.TypeInteger, got.Items.Properties["count"].Type)
	assert.Equal(t, genai.TypeNumber, got.Items.Properties["ratio"].Type)
	assert.Equal(t, genai.TypeBoolean, got.Items.Properties["done"].Type)
}

func TestTranslateSchema_RequiredVariants(t *testing.T) {
	t.Parallel()

	fromAny := translateSchema(map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"a", "b", 3},
	})
	assert.Equal(t, []string{"a", "b"}, fromAny.Required, "non-string entries are skipped")

	fromStrings := translateSchema(map[string]interface{}{
		"type":     "object",
		"required": []string{"c"},
	})
	assert.Equal(t, []string{"c"}, fromStrings.Required)
}

func TestTranslateSchema_Passthrough(t *testing.T) {
	t.Parallel()

	got := translateSchema(map[string]interface{}{
		"type":        "string",
		"description": "a color",
		"format":      "enum",
		"enum":        []interface{}{"red", "green", "blue"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "a color", got.Description)
	assert.Equal(t, "enum", got.Format)
	assert.Equal(t, []string{"red", "green", "blue"}, got.Enum)
}

func TestTranslateSchema_UnknownTypeUppercased(t *testing.T) {
	t.Parallel()

	got := translateSchema(map[string]interface{}{"type": "null"})

	require.NotNil(t, got)
	assert.Equal(t, genai.Type("NULL"), got.Type)
}

func TestTranslateSchema_NonStringTypeLeftUnset(t *testing.T) {
	t.Parallel()

	// An already-typed or malformed "type" is not coerced
	got := translateSchema(map[string]interface{}{"type": 42})

	require.NotNil(t, got)
	assert.Equal(t, genai.Type(""), got.Type)
}

func TestTranslateSchema_MalformedPropertySkipped(t *testing.T) {
	t.Parallel()

	got := translateSchema(map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"good": map[string]interface{}{"type": "string"},
			"bad":  "not a schema",
		},
	})

	require.NotNil(t, got)
	assert.Contains(t, got.Properties, "good")
	assert.NotContains(t, got.Properties, "bad")
}
