package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/golang/glog"

	"github.com/sergeneren/gvoxels/internal/gvoxels"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	gvoxels.Debug = os.Getenv("DEBUG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if args := flag.Args(); len(args) > 0 {
		cfg = args[0]
	}
	if err := gvoxels.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
