package item

// ==================== Builder Defaults ====================

const (
	// DefaultMaxStack is the stack size applied when a builder never sets one
	DefaultMaxStack = 64
)

// ==================== Panic Messages ====================

// Misuse of the custom setting API is a programming error, not a runtime
// condition to recover from.
const (
	PanicMsgNilDefaultSupplier = "item: custom setting created with nil default supplier"
	PanicMsgNilSettings        = "item: custom setting used with nil settings builder"
)

// ==================== Configuration File Names ====================

const (
	// SchemaPath is the default JSON schema for item pack files
	SchemaPath = "configs/schemas/items.schema.json"
)

// ==================== Registration Failure Reasons ====================

// Metric label values for registration failures
const (
	ReasonEmptyName       = "empty_name"
	ReasonNilSettings     = "nil_settings"
	ReasonInvalidSettings = "invalid_settings"
	ReasonDuplicate       = "duplicate"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadPackFileFailed  = "failed to read item pack file: %w"
	ErrMsgParsePackFailed     = "failed to parse item pack: %w"
	ErrMsgParseYAMLPackFailed = "failed to parse YAML item pack: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgPackNil        = "pack is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty  = "%w: item at index %d has empty internal_name"
	ErrFmtItemInvalid       = "%w: item '%s': %v"
	ErrFmtNegativeMaxStack  = "%w: item '%s' has negative max_stack"
	ErrFmtNegativeBaseValue = "%w: item '%s' has negative base_value"
	ErrFmtRegisterFailed    = "failed to register item '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRegistrationDone  = "Item registration completed"
	LogMsgRegisteredItem    = "Registered item"
	LogMsgSkippedItem       = "Skipped already-registered item"
	LogMsgSchemaFileMissing = "Item pack schema not found, skipping schema validation"
)
