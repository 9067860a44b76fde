package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/image"
	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/rgb"
	"github.com/kpfaulkner/colour-go/transfer"
)

func main() {
	size := flag.Int("size", 2048, "width and height of the test image")
	count := flag.Int("count", 5, "number of conversions")
	workers := flag.Int("workers", 0, "conversion goroutines, 0 for one per CPU")
	flag.Parse()

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	raw := make([]uint8, *size**size*4)
	for i := range raw {
		raw[i] = uint8(i * 7)
	}
	src, err := image.NewImageBufferFromRaw[rgb.Srgb](int32(*size), int32(*size), raw)
	if err != nil {
		log.Errorf("Error making image: %v\n", err)
		return
	}
	opts := options.New(options.WithWorkers(*workers))

	start := time.Now()
	for i := 0; i < *count; i++ {
		runStart := time.Now()
		lin, err := image.ConvertImageBuffer(src, func(c rgb.Rgba[rgb.Srgb, uint8]) rgb.Rgba[rgb.LinSrgb, float32] {
			return rgb.IntoLinearA(rgb.IntoFormatA[float32](c))
		}, opts)
		if err != nil {
			log.Errorf("Error converting: %v\n", err)
			return
		}
		fmt.Printf("srgb u8 to linear f32 took %d ms\n", time.Since(runStart).Milliseconds())

		runStart = time.Now()
		_, err = image.ConvertImageBuffer(lin, func(c rgb.Rgba[rgb.LinSrgb, float32]) rgb.Rgba[rgb.DisplayP3, uint8] {
			return rgb.IntoFormatA[uint8](rgb.ConvertA[rgb.DisplayP3](c).Clamp())
		}, opts)
		if err != nil {
			log.Errorf("Error converting: %v\n", err)
			return
		}
		fmt.Printf("linear f32 to display p3 u8 took %d ms\n", time.Since(runStart).Milliseconds())

		runStart = time.Now()
		_, err = image.ConvertImageBuffer(src, func(c rgb.Rgba[rgb.Srgb, uint8]) rgb.Rgba[rgb.LinSrgb, float32] {
			return rgb.NewRgba[rgb.LinSrgb](transfer.SrgbDecodeU8(c.Red), transfer.SrgbDecodeU8(c.Green), transfer.SrgbDecodeU8(c.Blue), float32(c.Alpha)/255)
		}, opts)
		if err != nil {
			log.Errorf("Error converting: %v\n", err)
			return
		}
		fmt.Printf("srgb u8 to linear f32 by table took %d ms\n", time.Since(runStart).Milliseconds())
	}

	fmt.Printf("total time %d ms\n", time.Since(start).Milliseconds())
}
