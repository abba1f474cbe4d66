package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modhaven/itemforge/internal/compost"
	"github.com/modhaven/itemforge/internal/config"
	"github.com/modhaven/itemforge/internal/item"
	"github.com/modhaven/itemforge/internal/logger"
	"github.com/modhaven/itemforge/internal/tooltip"
)

// runValidate loads and validates a pack file without registering anything.
func runValidate(packPath string) {
	loader := item.NewLoader()

	pack, err := loader.Load(packPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(1)
	}

	if err := loader.Validate(pack); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s (%d items, version %s)\n", packPath, len(pack.Items), pack.Version)
}

// runList registers the pack and prints one line per item.
func runList(packPath string) {
	reg := buildRegistry(packPath)

	for _, it := range reg.All() {
		compostable := ""
		if compost.Compostable(it) {
			compostable = " [compostable]"
		}
		effective := float64(it.BaseValue()) * it.Rarity().ValueMultiplier()
		fmt.Printf("%-24s %-10s value=%-6d eff=%-8.1f stack=%d%s\n",
			it.InternalName(), it.Rarity(), it.BaseValue(), effective, it.MaxStack(), compostable)
	}
}

// runShow registers the pack and prints the rendered tooltip for one item.
func runShow(cfg *config.Config, packPath, internalName string) {
	reg := buildRegistry(packPath)

	it, ok := reg.Get(internalName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Item '%s' not found in %s\n", internalName, packPath)
		os.Exit(1)
	}

	renderer := tooltip.NewRenderer(cfg.TooltipCacheSize, cfg.TooltipCacheTTL)
	for _, line := range renderer.Render(it) {
		fmt.Println(line)
	}
}

// buildRegistry loads a pack and registers it with all in-tree extensions
// applied, under a fresh trace ID.
func buildRegistry(packPath string) *item.Registry {
	ctx := logger.WithTraceID(context.Background(), logger.GenerateTraceID())

	loader := item.NewLoader()
	pack, err := loader.Load(packPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(1)
	}

	reg := item.NewRegistry()
	if _, err := loader.RegisterAll(ctx, pack, reg, tooltip.Applier, compost.Applier); err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		os.Exit(1)
	}

	return reg
}
