package metrics

// ==================== Metric Names ====================

const (
	MetricNameItemsRegistered      = "itemforge_items_registered_total"
	MetricNameCustomSettings       = "itemforge_custom_settings_total"
	MetricNameSettingWrites        = "itemforge_setting_writes_total"
	MetricNameSettingDefaultReads  = "itemforge_setting_default_reads_total"
	MetricNameTooltipCacheHits     = "itemforge_tooltip_cache_hits_total"
	MetricNameTooltipCacheMisses   = "itemforge_tooltip_cache_misses_total"
	MetricNamePackItemsLoaded      = "itemforge_pack_items_loaded_total"
	MetricNameRegistrationFailures = "itemforge_registration_failures_total"
)

// ==================== Help Text ====================

const (
	HelpTextItemsRegistered      = "Total number of items registered through the construction pipeline"
	HelpTextCustomSettings       = "Total number of custom setting keys created"
	HelpTextSettingWrites        = "Total number of custom setting values written to builders"
	HelpTextSettingDefaultReads  = "Total number of custom setting reads that fell back to the default supplier"
	HelpTextTooltipCacheHits     = "Total number of tooltip renders served from cache"
	HelpTextTooltipCacheMisses   = "Total number of tooltip renders that missed the cache"
	HelpTextPackItemsLoaded      = "Total number of item definitions loaded from packs"
	HelpTextRegistrationFailures = "Total number of failed item registrations"
)

// ==================== Label Names ====================

const (
	LabelReason = "reason"
)
