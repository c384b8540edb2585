package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/mendelian/heredity"
)

func main() {
	dataPath := flag.String("data", "", "Filename of the pedigree CSV to process")
	flag.Parse()

	if *dataPath == "" {
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

	ped, err := heredity.OpenCSV(*dataPath)
	if err != nil {
		log.Fatalln(err)
	}

	workers := runtime.NumCPU()
	log.Println("Launching", workers, "workers over", heredity.TraitSubsets(len(ped)),
		"trait subsets (", heredity.GenePartitions(len(ped)), "gene partitions each )")

	start := time.Now()
	parallel, err := heredity.InferParallel(ped, heredity.DefaultModel, workers)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Parallel inference took", time.Since(start))

	start = time.Now()
	serial, err := heredity.Infer(ped, heredity.DefaultModel)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Serial inference took", time.Since(start))

	// The two paths differ only by floating-point reassociation
	for _, name := range ped.Names() {
		fmt.Printf("%s: parallel %+v\n", name, *parallel[name])
		fmt.Printf("%s: serial   %+v\n", name, *serial[name])
	}
}
