package config

// ==================== Environment Variable Keys ====================

const (
	EnvKeyItemsPath        = "ITEMS_PATH"
	EnvKeyLogLevel         = "LOG_LEVEL"
	EnvKeyLogFormat        = "LOG_FORMAT"
	EnvKeyServiceName      = "SERVICE_NAME"
	EnvKeyVersion          = "VERSION"
	EnvKeyEnvironment      = "ENVIRONMENT"
	EnvKeyTooltipCacheSize = "TOOLTIP_CACHE_SIZE"
	EnvKeyTooltipCacheTTL  = "TOOLTIP_CACHE_TTL_SECONDS"
)

// ==================== Default Values ====================

const (
	DefaultItemsPath              = "configs/items.json"
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "text"
	DefaultServiceName            = "itemforge"
	DefaultVersion                = "dev"
	DefaultEnvironment            = "dev"
	DefaultTooltipCacheSize       = 256
	DefaultTooltipCacheTTLSeconds = 300
)
