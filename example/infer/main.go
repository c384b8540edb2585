package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/mendelian/heredity"
)

func main() {
	dataPath := flag.String("data", "", "Filename of the pedigree CSV to process (.gz and .zst are understood)")
	dbPath := flag.String("db", "", "Filename of a sqlite pedigree index to process instead of a CSV")
	workers := flag.Int("workers", 1, "Number of inference workers (0 = one per CPU)")
	flag.Parse()

	if *dataPath == "" && *dbPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*dataPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*dataPath = filepath.Join(usr.HomeDir, (*dataPath)[2:])
	}

	var ped heredity.Pedigree
	var err error
	if *dataPath != "" {
		ped, err = heredity.OpenCSV(*dataPath)
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		idx, idxErr := heredity.OpenPedIndex(*dbPath)
		if idxErr != nil {
			log.Fatalln(idxErr)
		}
		defer idx.Close()

		ped, err = idx.ReadPedigree()
		if err != nil {
			log.Fatalln(err)
		}
	}

	log.Println("Loaded", len(ped), "people; up to", heredity.HypothesisSpace(len(ped)), "hypotheses")

	var results heredity.Marginals
	if *workers == 1 {
		results, err = heredity.Infer(ped, heredity.DefaultModel)
	} else {
		results, err = heredity.InferParallel(ped, heredity.DefaultModel, *workers)
	}
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.Names() {
		bucket := results[name]
		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for g := heredity.GeneTwo; ; g-- {
			fmt.Printf("    %s: %.4f\n", g, bucket.Gene[g])
			if g == heredity.GeneNone {
				break
			}
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", bucket.Trait[1])
		fmt.Printf("    False: %.4f\n", bucket.Trait[0])
	}
}
