package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry Metrics
var (
	ItemsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRegistered,
			Help: HelpTextItemsRegistered,
		},
	)

	RegistrationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRegistrationFailures,
			Help: HelpTextRegistrationFailures,
		},
		[]string{LabelReason},
	)
)

// Custom Setting Metrics
var (
	CustomSettingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCustomSettings,
			Help: HelpTextCustomSettings,
		},
	)

	SettingWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettingWrites,
			Help: HelpTextSettingWrites,
		},
	)

	SettingDefaultReads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettingDefaultReads,
			Help: HelpTextSettingDefaultReads,
		},
	)
)

// Tooltip Metrics
var (
	TooltipCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTooltipCacheHits,
			Help: HelpTextTooltipCacheHits,
		},
	)

	TooltipCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTooltipCacheMisses,
			Help: HelpTextTooltipCacheMisses,
		},
	)
)

// Pack Loader Metrics
var (
	PackItemsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePackItemsLoaded,
			Help: HelpTextPackItemsLoaded,
		},
	)
)
