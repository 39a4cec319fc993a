package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/gridshot/internal/placeholders"
)

func main() {
	dir := flag.String("out", "data", "directory to write the images and sample level into")
	flag.Parse()

	fmt.Println("Gridshot Placeholder Graphics Generator")
	fmt.Println("=======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
	fmt.Println("Run the game to see your placeholders in action!")
}
