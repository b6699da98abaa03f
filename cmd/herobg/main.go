// Command herobg writes hero-background.png and hero-background.jpg into the
// working directory.
package main

import (
	"fmt"
	"log"

	"github.com/setanarut/herobg"
)

func main() {
	opt := herobg.DefaultOptions()
	if err := herobg.Generate("."); err != nil {
		log.Fatalln("could not generate background:", err)
	}
	fmt.Println("✓ High-quality background images generated successfully!")
	fmt.Printf("  - %s (transparent, %g DPI)\n", herobg.PNGName, opt.DPI)
	fmt.Printf("  - %s (solid background, %g DPI)\n", herobg.JPEGName, opt.DPI)
}
