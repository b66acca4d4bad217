// Command idioms lists, describes and runs the language-feature demos.
//
//	idioms list
//	idioms describe patterns -o yaml
//	idioms run null-operators delegates02
//	idioms run --all --seed 7
//
// Demo output goes to stdout; logs go to stderr.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sghaida/idioms/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
