package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/image"
	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/rgb"
)

func main() {
	infile := flag.String("i", "", "input png file")
	outfile := flag.String("o", "", "output png file")
	from := flag.String("from", "srgb", "standard of the input pixels")
	to := flag.String("to", "display-p3", "standard of the output pixels")
	workers := flag.Int("workers", 0, "conversion goroutines, 0 for one per CPU")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *infile == "" || *outfile == "" {
		fmt.Printf("both input and output files must be specified\n")
		os.Exit(1)
	}

	src, err := standard(*from)
	if err != nil {
		log.Errorf("Error with source standard: %v", err)
		return
	}
	dst, err := standard(*to)
	if err != nil {
		log.Errorf("Error with target standard: %v", err)
		return
	}

	f, err := os.ReadFile(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v\n", err)
		return
	}
	img, err := png.Decode(bytes.NewReader(f))
	if err != nil {
		log.Errorf("Error decoding: %v\n", err)
		return
	}

	start := time.Now()
	buf := image.NewImageBufferFromImage[rgb.Descriptor](img)
	opts := []options.Option{options.WithWorkers(*workers)}
	if *debug {
		opts = append(opts, options.WithDebug())
	}
	converted, err := image.ConvertImageBuffer(buf, func(c rgb.Rgba[rgb.Descriptor, uint16]) rgb.Rgba[rgb.Descriptor, uint16] {
		fc := rgb.IntoFormatA[float64](c)
		out := rgb.FromComponents[rgb.Descriptor](rgb.ConvertWith(dst, src, fc.Color().Components()))
		return rgb.IntoFormatA[uint16](out.WithAlpha(fc.Alpha).Clamp())
	}, options.New(opts...))
	if err != nil {
		log.Fatalf("boomage %v", err)
	}
	fmt.Printf("converting took %d ms\n", time.Since(start).Milliseconds())

	out := new(bytes.Buffer)
	if err := png.Encode(out, converted.Image()); err != nil {
		log.Fatalf("boomage %v", err)
	}
	if err := os.WriteFile(*outfile, out.Bytes(), 0666); err != nil {
		log.Fatalf("boomage %v", err)
	}
}

func standard(name string) (rgb.RgbStandard, error) {
	id, err := rgb.ParseStandard(name)
	if err != nil {
		return nil, err
	}
	return rgb.Lookup(id)
}
