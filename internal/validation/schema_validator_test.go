package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version", "items"],
	"properties": {
		"version": {"type": "string"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["internal_name"],
				"properties": {
					"internal_name": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

func writeTempSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTempSchema(t)

	t.Run("valid data", func(t *testing.T) {
		data := []byte(`{"version": "1.0", "items": [{"internal_name": "apple"}]}`)
		err := v.ValidateBytes(data, schemaPath)
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		data := []byte(`{"items": []}`)
		err := v.ValidateBytes(data, schemaPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("wrong type", func(t *testing.T) {
		data := []byte(`{"version": 3, "items": []}`)
		err := v.ValidateBytes(data, schemaPath)
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{not json}`), schemaPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON data")
	})

	t.Run("missing schema file", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "/nonexistent/schema.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTempSchema(t)

	t.Run("valid file", func(t *testing.T) {
		dataPath := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(dataPath, []byte(`{"version": "1.0", "items": []}`), 0o644))

		err := v.ValidateFile(dataPath, schemaPath)
		assert.NoError(t, err)
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile("/nonexistent/data.json", schemaPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTempSchema(t)

	data := []byte(`{"version": "1.0", "items": []}`)
	require.NoError(t, v.ValidateBytes(data, schemaPath))

	// Removing the schema file must not break subsequent validations:
	// the compiled schema is served from cache.
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes(data, schemaPath))
}
