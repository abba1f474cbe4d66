package main

import (
	"fmt"
	"os"

	"github.com/modhaven/itemforge/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		runValidate(packArg(cfg))
	case "list":
		runList(packArg(cfg))
	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: forge show <internal_name> [pack]")
			os.Exit(1)
		}
		pack := cfg.ItemsPath
		if len(os.Args) > 3 {
			pack = os.Args[3]
		}
		runShow(cfg, pack, os.Args[2])
	default:
		printUsage()
		os.Exit(1)
	}
}

// packArg returns the optional pack-path argument, falling back to the
// configured items path.
func packArg(cfg *config.Config) string {
	if len(os.Args) > 2 {
		return os.Args[2]
	}
	return cfg.ItemsPath
}

func printUsage() {
	fmt.Println("Usage: forge <command> [args...]")
	fmt.Println("Commands:")
	fmt.Println("  validate [pack]          Validate an item pack file")
	fmt.Println("  list [pack]              Register a pack and list its items")
	fmt.Println("  show <name> [pack]       Show the tooltip for one item")
}
