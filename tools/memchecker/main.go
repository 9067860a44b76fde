package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/colour-go/rgb"
)

// displays sizes of the colour structs to confirm they carry no padding or standard storage
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes\n", rType.Name(), rType.Size())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {

			fmt.Printf("  Name %s\n", rType.FieldByIndex([]int{i}).Name)
			fmt.Printf("    Offset of    : %d bytes\n", rType.FieldByIndex([]int{i}).Offset)
			fmt.Printf("    Size of      : %d bytes\n", rType.FieldByIndex([]int{i}).Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", rType.FieldByIndex([]int{i}).Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(rgb.Srgb{})
	memStats(rgb.Rgb[rgb.Srgb, uint8]{})
	memStats(rgb.Rgba[rgb.Srgb, uint16]{})
	memStats(rgb.Rgba[rgb.LinSrgb, float32]{})
	memStats(rgb.Packed[rgb.RgbaOrder, uint32]{})
}
