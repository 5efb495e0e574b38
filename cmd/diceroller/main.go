// Package main provides the diceroller binary, which parses a dice
// notation argument, rolls it, and prints the result tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/forgeweave/diceroller/internal/wiring"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/diceroller.yaml", "path to configuration file")
	exportFlag := flag.Bool("export", false, "print the roll's JSON export instead of its rendered output")
	base64Flag := flag.Bool("base64", false, "when -export is set, base64-encode the JSON export")
	boundsFlag := flag.Bool("bounds", false, "also print min/avg/max totals for the notation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: diceroller [flags] <notation>")
		os.Exit(2)
	}
	notation := flag.Arg(0)

	app, err := wiring.InitializeApp(*configPath)
	if err != nil {
		log.Fatalf("initializing app: %v", err)
	}
	defer app.Logger.Sync()

	app.Logger.Info("starting dice roll", zap.String("notation", notation), zap.Duration("startup", time.Since(start)))

	d, err := app.Roller.Roll(notation)
	if err != nil {
		app.Logger.Fatal("rolling notation", zap.String("notation", notation), zap.Error(err))
	}

	if *boundsFlag {
		min, err := d.MinTotal()
		if err != nil {
			app.Logger.Fatal("computing min total", zap.Error(err))
		}
		avg, err := d.AverageTotal()
		if err != nil {
			app.Logger.Fatal("computing average total", zap.Error(err))
		}
		max, err := d.MaxTotal()
		if err != nil {
			app.Logger.Fatal("computing max total", zap.Error(err))
		}
		fmt.Printf("min=%v avg=%v max=%v\n", min, avg, max)
	}

	if *exportFlag {
		if *base64Flag {
			encoded, err := d.ExportBase64()
			if err != nil {
				app.Logger.Fatal("exporting roll", zap.Error(err))
			}
			fmt.Println(encoded)
			return
		}
		data, err := d.Export()
		if err != nil {
			app.Logger.Fatal("exporting roll", zap.Error(err))
		}
		fmt.Println(string(data))
		return
	}

	output, err := d.Output()
	if err != nil {
		app.Logger.Fatal("rendering output", zap.Error(err))
	}
	fmt.Println(output)
}
