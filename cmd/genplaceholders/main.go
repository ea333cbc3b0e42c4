package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/islewatch/internal/placeholders"
	"chosenoffset.com/islewatch/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "YAML file whose asset and map names the output should match")
	flag.Parse()

	fmt.Println("Islewatch Placeholder Graphics Generator")
	fmt.Println("========================================")
	fmt.Println()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		loaded, err := simulation.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := placeholders.GenerateAndSave(placeholders.OptionsFromConfig(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
	fmt.Println("Run the game to see your placeholders in action!")
}
