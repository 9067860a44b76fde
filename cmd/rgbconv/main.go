package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/rgb"
	"github.com/kpfaulkner/colour-go/util"
)

func lookupStandard(name string) (rgb.RgbStandard, error) {
	id, err := rgb.ParseStandard(name)
	if err != nil {
		return nil, err
	}
	return rgb.Lookup(id)
}

func parseComponents(hex string, values string) ([3]float64, error) {
	if hex != "" {
		c, err := rgb.ParseHex[rgb.Descriptor](hex)
		if err != nil {
			return [3]float64{}, err
		}
		return rgb.IntoFormat[float64](c).Components(), nil
	}

	parts := strings.Split(values, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = v
	}
	return c, nil
}

func main() {
	names := strings.Join(rgb.StandardNames(), ", ")
	from := flag.String("from", "srgb", "source standard: "+names)
	to := flag.String("to", "linear-srgb", "target standard: "+names)
	hex := flag.String("hex", "", "colour as #rrggbb")
	values := flag.String("rgb", "", "colour as comma separated components, e.g. 1.0,0.76,0.27")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *hex == "" && *values == "" {
		fmt.Printf("one of -hex or -rgb must be specified\n")
		os.Exit(1)
	}

	src, err := lookupStandard(*from)
	if err != nil {
		log.Errorf("Error with source standard: %v", err)
		os.Exit(1)
	}
	dst, err := lookupStandard(*to)
	if err != nil {
		log.Errorf("Error with target standard: %v", err)
		os.Exit(1)
	}

	in, err := parseComponents(*hex, *values)
	if err != nil {
		log.Errorf("Error parsing colour: %v", err)
		os.Exit(1)
	}

	log.Debugf("converting %v from %s to %s", in, *from, *to)
	out := rgb.FromComponents[rgb.Descriptor](rgb.ConvertWith(dst, src, in))

	fmt.Printf("%s %.6f %.6f %.6f %s\n", *to, out.Red, out.Green, out.Blue, out.Hex())
	u8 := rgb.IntoFormat[uint8](out.Clamp())
	fmt.Printf("rgba 0x%08x argb 0x%08x bgr 0x%06x\n",
		rgb.PackOpaque[rgb.RgbaOrder](u8).Uint(), rgb.PackOpaque[rgb.ArgbOrder](u8).Uint(), rgb.PackRgb[rgb.BgrOrder](u8).Uint())
	log.Debugf("colour is %s the %s gamut", util.IfThenElse(out.IsWithinBounds(), "inside", "outside"), *to)
}
