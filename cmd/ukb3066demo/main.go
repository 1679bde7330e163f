// Command ukb3066demo derives the public UK Biobank field-3066 demo
// spirometry blow into fixed-shape .npy model input files.
//
// Usage:
//
//	ukb3066demo -out /path/to/outputs [-duplicates n] [-records blows.csv]
//
// The output directory receives one file per derived artifact:
//
//	ukb_3066_demo.flow_volume_in_channels.npy
//	ukb_3066_demo.flow_by_volume_one_channel.npy
//	ukb_3066_demo.volume_by_time_one_channel.npy
//	ukb_3066_demo.three_curves_in_channels.npy
//	ukb_3066_demo.derived_features.npy
//
// Additional blows can be appended from a CSV file with columns eid,
// visit_id, blow_order, blow_index, num_points, and series (space-separated
// raw samples).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/cwbudde/algo-spiro/blow"
	"github.com/cwbudde/algo-spiro/dataset"
	"github.com/cwbudde/algo-spiro/npy"
)

const filePrefix = "ukb_3066_demo."

func main() {
	var (
		outDir     string
		duplicates int
		recordsCSV string
	)

	flag.StringVar(&outDir, "out", "", "Output directory in which to write npy files")
	flag.IntVar(&duplicates, "duplicates", 1, "Number of duplicates of each record to generate")
	flag.StringVar(&recordsCSV, "records", "", "Optional CSV file with additional blow records")

	flag.Parse()

	if outDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(outDir, duplicates, recordsCSV); err != nil {
		log.Fatalln(err)
	}
}

func run(outDir string, duplicates int, recordsCSV string) error {
	records := []blow.Record{demoRecord()}

	if recordsCSV != "" {
		extra, err := dataset.LoadRecords(recordsCSV)
		if err != nil {
			return err
		}
		records = append(records, extra...)
	}

	ds, err := dataset.Build(records, duplicates)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	names := make([]string, 0, len(ds.Arrays))
	for name := range ds.Arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		arr := ds.Arrays[name]
		path := filepath.Join(outDir, filePrefix+name+".npy")

		if err := npy.WriteFile(path, arr.Shape, arr.Data); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		log.Printf("wrote %s %v", path, arr.Shape)
	}

	return nil
}
