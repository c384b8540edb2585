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
	dataPath := flag.String("data", "", "Filename of the pedigree CSV to process")
	idxPath := flag.String("db", "", "Filename of the sqlite pedigree index to create")
	runInference := flag.Bool("results", false, "Also run inference and store the results in the index")
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

	if *idxPath == "" {
		*idxPath = *dataPath + ".db"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Using the", heredity.WhichSQLiteDriver(), "sqlite driver")

	ped, err := heredity.OpenCSV(*dataPath)
	if err != nil {
		log.Fatalln(err)
	}

	idx, err := heredity.CreatePedIndex(*idxPath, ped, filepath.Base(*dataPath))
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()

	log.Printf("Index Metadata: %+v\n", idx.Metadata)

	stored, err := idx.ReadPedigree()
	if err != nil {
		log.Fatalln(err)
	}
	for i, name := range stored.Names() {
		fmt.Printf("%d) %+v\n", i, *stored[name])
	}
	log.Println("Indexed", len(stored), "people into", *idxPath)

	if *runInference {
		results, err := heredity.Infer(stored, heredity.DefaultModel)
		if err != nil {
			log.Fatalln(err)
		}
		if err := idx.SaveResults(results); err != nil {
			log.Fatalln(err)
		}
		log.Println("Stored inference results for", len(results), "people")
	}
}
