// Siskin CLI - boots the runtime, and writes or restores image snapshots.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/siskin-lang/siskin/manifest"
	"github.com/siskin-lang/siskin/vm"
)

var log = commonlog.GetLogger("siskin")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	stats := flag.Bool("stats", false, "Print runtime table statistics")
	saveImage := flag.Bool("save-image", false, "Write an image snapshot and exit")
	imagePath := flag.String("image", "", "Image path (overrides siskin.toml)")
	loadImage := flag.String("load-image", "", "Boot from an image snapshot instead of a fresh bootstrap")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: siskin [options]\n\n")
		fmt.Fprintf(os.Stderr, "Boots the Siskin runtime core.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  siskin -stats                  # Boot and print table statistics\n")
		fmt.Fprintf(os.Stderr, "  siskin -save-image             # Write the bootstrapped image\n")
		fmt.Fprintf(os.Stderr, "  siskin -load-image out.image   # Boot from a snapshot\n")
	}
	flag.Parse()

	m, err := manifest.FindAndLoad(".")
	if err != nil {
		commonlog.Configure(0, nil)
		log.Errorf("manifest: %s", err.Error())
		os.Exit(1)
	}

	verbosity := 0
	if *verbose || (m != nil && m.Runtime.Trace) {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	if m != nil {
		log.Infof("project %s %s (%s)", m.Project.Name, m.Project.Version, m.Dir)
	}

	machine, err := boot(*loadImage)
	if err != nil {
		log.Errorf("%s", err.Error())
		os.Exit(1)
	}
	log.Infof("runtime ready: %d classes, %d selectors", machine.Classes.Len(), machine.Selectors.Len())

	if *stats {
		printStats(machine)
	}

	if *saveImage {
		path := *imagePath
		if path == "" {
			if m != nil {
				path = m.ImagePath()
			} else {
				path = "siskin.image"
			}
		}
		if err := writeImage(machine, path); err != nil {
			log.Errorf("%s", err.Error())
			os.Exit(1)
		}
		log.Noticef("image written to %s", path)
	}
}

func boot(imagePath string) (*vm.VM, error) {
	if imagePath == "" {
		return vm.NewVM(), nil
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read image %s: %w", imagePath, err)
	}
	machine, err := vm.LoadImageFromBytes(data)
	if err != nil {
		return nil, err
	}
	log.Infof("booted from image %s (%d bytes)", imagePath, len(data))
	return machine, nil
}

func writeImage(machine *vm.VM, path string) error {
	data, err := machine.SaveImage()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write image %s: %w", path, err)
	}
	return nil
}

func printStats(machine *vm.VM) {
	fmt.Printf("classes:        %d\n", machine.Classes.Len())
	fmt.Printf("selectors:      %d\n", machine.Selectors.Len())
	fmt.Printf("global symbols: %d\n", machine.GlobalSymbols.Len())

	for _, c := range machine.Classes.All() {
		fmt.Printf("  %-8s %d methods\n", c.Name, len(c.BoundSelectors()))
	}

	instances, strings := vm.LiveHeapCounts()
	fmt.Printf("live heap:      %d instances, %d strings\n", instances, strings)
}
