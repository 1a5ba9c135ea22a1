package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

/* The .sig format consumed by the EEPROM update service: the image digest
 * and the moment it was made */
func signature(image []byte, ts int64) string {
	return fmt.Sprintf("%x\nts: %d\n", sha256.Sum256(image), ts)
}

func main() {
	input := flag.String("input", "", "Input filename")
	output := flag.String("output", "", "Signature filename, stdout if not given")
	flag.Parse()

	in, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalln("Failed to open file:", err)
	}

	if *output == "" {
		fmt.Printf("%x  %s\n", sha256.Sum256(in), *input)
		return
	}

	if err := os.WriteFile(*output, []byte(signature(in, time.Now().Unix())), 0644); err != nil {
		log.Fatalln("Failed to write output:", err)
	}
}
