package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/modhaven/itemforge/internal/domain"
	"github.com/modhaven/itemforge/internal/logger"
	"github.com/modhaven/itemforge/internal/metrics"
	"github.com/modhaven/itemforge/internal/validation"
)

// Sentinel errors for the pack loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidPack = errors.New("invalid item pack")
)

// Pack represents an item pack file: a versioned collection of item
// definitions contributed by one source.
type Pack struct {
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`

	Items []Def `json:"items" yaml:"items"`
}

// Def represents a single item definition in a pack. The tooltip and
// compost_chance fields carry extension data applied through SettingAppliers;
// the loader itself does not interpret them.
type Def struct {
	InternalName  string  `json:"internal_name" yaml:"internal_name" validate:"required"`
	DisplayName   string  `json:"display_name" yaml:"display_name" validate:"required"`
	Description   string  `json:"description" yaml:"description"`
	MaxStack      int     `json:"max_stack" yaml:"max_stack" validate:"gte=0"`
	BaseValue     int     `json:"base_value" yaml:"base_value" validate:"gte=0"`
	Rarity        string  `json:"rarity,omitempty" yaml:"rarity,omitempty" validate:"omitempty,oneof=COMMON UNCOMMON RARE EPIC LEGENDARY"`
	Handler       string  `json:"handler,omitempty" yaml:"handler,omitempty"`
	Tooltip       string  `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	CompostChance float64 `json:"compost_chance,omitempty" yaml:"compost_chance,omitempty" validate:"gte=0,lte=1"`
}

// SettingApplier lets an extension apply its custom settings to the builder
// of each item as it is constructed from a pack definition.
type SettingApplier func(def Def, s *Settings)

// RegisterResult contains the result of registering a pack into a registry
type RegisterResult struct {
	ItemsRegistered int
	ItemsSkipped    int
}

// Loader handles loading and validating item packs
type Loader interface {
	Load(path string) (*Pack, error)
	Validate(pack *Pack) error
	RegisterAll(ctx context.Context, pack *Pack, reg *Registry, appliers ...SettingApplier) (*RegisterResult, error)
}

type packLoader struct {
	schemaPath      string
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a Loader using the default pack schema.
func NewLoader() Loader {
	return NewLoaderWithSchema(SchemaPath)
}

// NewLoaderWithSchema creates a Loader validating JSON packs against the
// given schema file. A missing schema file downgrades to struct validation
// only, so packs remain loadable from any working directory.
func NewLoaderWithSchema(schemaPath string) Loader {
	return &packLoader{
		schemaPath:      schemaPath,
		schemaValidator: validation.NewSchemaValidator(),
		structValidator: validator.New(),
	}
}

// Load reads and parses an item pack file. YAML packs are detected by file
// extension; everything else is treated as JSON.
func (l *packLoader) Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadPackFileFailed, err)
	}

	var pack Pack
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return nil, fmt.Errorf(ErrMsgParseYAMLPackFailed, err)
		}
	default:
		if err := l.validateSchema(data); err != nil {
			return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &pack); err != nil {
			return nil, fmt.Errorf(ErrMsgParsePackFailed, err)
		}
	}

	return &pack, nil
}

func (l *packLoader) validateSchema(data []byte) error {
	if _, err := os.Stat(l.schemaPath); err != nil {
		logger.Debug(LogMsgSchemaFileMissing, "path", l.schemaPath)
		return nil
	}
	return l.schemaValidator.ValidateBytes(data, l.schemaPath)
}

// Validate checks the pack for structural errors and duplicate names
func (l *packLoader) Validate(pack *Pack) error {
	if pack == nil {
		return fmt.Errorf("%w: %s", ErrInvalidPack, ErrMsgPackNil)
	}

	if len(pack.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPack, ErrMsgNoItemsDefined)
	}

	// Track internal names for duplicate detection
	internalNames := make(map[string]bool, len(pack.Items))

	for i := range pack.Items {
		def := &pack.Items[i]

		if def.InternalName == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidPack, i)
		}
		if internalNames[def.InternalName] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateInternalName, def.InternalName)
		}
		internalNames[def.InternalName] = true

		if err := l.structValidator.Struct(def); err != nil {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidPack, def.InternalName, err)
		}
	}

	return nil
}

// RegisterAll registers every definition in the pack into the registry,
// running each applier over the builder before construction. Definitions
// whose internal name is already registered are skipped rather than failing
// the whole pack, so independently loaded packs can overlap.
func (l *packLoader) RegisterAll(ctx context.Context, pack *Pack, reg *Registry, appliers ...SettingApplier) (*RegisterResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(pack); err != nil {
		return nil, err
	}

	result := &RegisterResult{}
	for _, def := range pack.Items {
		if _, exists := reg.Get(def.InternalName); exists {
			result.ItemsSkipped++
			log.Debug(LogMsgSkippedItem, "internal_name", def.InternalName)
			continue
		}

		s := NewSettings().
			DisplayName(def.DisplayName).
			Description(def.Description).
			MaxStack(def.MaxStack).
			BaseValue(def.BaseValue).
			Rarity(domain.ParseRarity(def.Rarity)).
			Handler(def.Handler)

		// Extension customization happens here, while the builder is
		// still owned by this construction.
		for _, apply := range appliers {
			apply(def, s)
		}

		it, err := reg.Register(def.InternalName, s)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtRegisterFailed, def.InternalName, err)
		}

		result.ItemsRegistered++
		metrics.PackItemsLoaded.Inc()
		log.Info(LogMsgRegisteredItem, "internal_name", def.InternalName, "id", it.ID())
	}

	log.Info(LogMsgRegistrationDone,
		"registered", result.ItemsRegistered,
		"skipped", result.ItemsSkipped)

	return result, nil
}
