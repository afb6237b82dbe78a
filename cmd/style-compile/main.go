package main

import (
	"flag"
	"fmt"
	"os"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
	"github.com/aczwink/OpenArabicMusicArrangerStyles/compiler"
	"github.com/aczwink/OpenArabicMusicArrangerStyles/version"
)

func main() {
	instrumentsDir := flag.String("i", "instruments", "Directory containing the instrument descriptor files.")
	tracksDir := flag.String("t", "tracks", "Directory containing the track descriptor files.")
	outPath := flag.String("o", "out.mid", "File to write the compiled MIDI document to. Overwritten if it exists.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	registry, err := arranger.LoadInstruments(os.DirFS(*instrumentsDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load instruments from %v: %v\n", *instrumentsDir, err)
		os.Exit(1)
	}
	tracks, err := arranger.LoadTracks(os.DirFS(*tracksDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load tracks from %v: %v\n", *tracksDir, err)
		os.Exit(1)
	}
	data, err := compiler.New(registry).CompileSMF(tracks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not compile tracks: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "could not write %v: %v\n", *outPath, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Arranger style compiler. Reads instrument and track descriptors (.yml or .json) and writes a standard MIDI file.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
