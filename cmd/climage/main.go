package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gocv.io/x/gocv"

	"github.com/wbrown/climage"
	"github.com/wbrown/climage/cvmat"
)

// Default image file, used when no argument is given or it can't be opened.
const defaultImage = "mario.png"

// Exit codes.
const (
	exitNoImage      = 1
	exitDisplayError = 2
)

func main() {
	backendName := flag.String("backend", "go",
		"Image backend: go (pure Go, terminal display) or opencv")
	readMode := flag.String("mode", "unchanged",
		"OpenCV read mode: unchanged, color or gray")
	noDisplay := flag.Bool("nodisplay", false,
		"Skip displaying the image")
	row := flag.Int("row", 200, "Row of the sample pixel")
	col := flag.Int("col", 150, "Column of the sample pixel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] [image]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	var opts []climage.Option
	switch strings.ToLower(*backendName) {
	case "go":
		opts = append(opts, climage.WithBackend(climage.GoBackend{}))
	case "opencv":
		b := cvmat.New()
		switch strings.ToLower(*readMode) {
		case "unchanged":
			b.ReadFlags = gocv.IMReadUnchanged
		case "color":
			b.ReadFlags = gocv.IMReadColor
		case "gray":
			b.ReadFlags = gocv.IMReadGrayScale
		default:
			fmt.Println("Invalid read mode, options are unchanged, color or gray")
			os.Exit(exitNoImage)
		}
		opts = append(opts, climage.WithBackend(b))
	default:
		fmt.Println("Invalid backend, options are go or opencv")
		os.Exit(exitNoImage)
	}

	img := setupImage(flag.Arg(0), opts)
	if img == nil {
		fmt.Println("\n  No image could be opened. Invalid file names!")
		os.Exit(exitNoImage)
	}
	defer img.Close()
	fmt.Printf("\n  Successfully opened:  %s\n", img.Filename())

	if !*noDisplay {
		fmt.Println("\n  Displaying image..")
		if err := img.Display(); err != nil {
			fmt.Printf("\n  The image could not be displayed: %v\n", err)
			img.Close()
			os.Exit(exitDisplayError)
		}
	}

	fmt.Println("\n  Image attributes:")
	fmt.Printf("\n    Height(rows) => %d", img.Height())
	fmt.Printf("\n    Width(cols)  => %d", img.Width())
	fmt.Printf("\n    Channel #    => %d", img.Channels())
	fmt.Printf("\n    Channels at (%d, %d):", *row, *col)
	if channels := img.PixelInts(*row, *col); channels != nil {
		for i, v := range channels {
			fmt.Printf("\n      [%d] => %d", i, v)
		}
	} else {
		fmt.Print(" out of range")
	}
	fmt.Print("\n\n")

	fmt.Println("\n  Copying image..")
	copyImg := img.Clone()
	defer copyImg.Close()

	if err := copyImg.Save(); err != nil {
		fmt.Printf("\n    Failed to save image: %v\n", err)
		return
	}
	fmt.Printf("\n    Saved copy as %s\n", copyImg.Filename())
}

// setupImage opens filename, falling back to defaultImage. It returns nil
// if neither can be loaded.
func setupImage(filename string, opts []climage.Option) *climage.Image {
	img := climage.New("", opts...)
	if filename != "" {
		err := img.Load(filename)
		if err == nil {
			return img
		}
		log.Printf("could not open %s: %v", filename, err)
	}
	if err := img.Load(defaultImage); err != nil {
		log.Printf("could not open %s: %v", defaultImage, err)
		return nil
	}
	return img
}
