// Command mvninfo inspects asset files with the mvn toolkit: file
// metadata for any path, pixel dimensions for images, face names for
// fonts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/larsonjj/mvn"
	"github.com/larsonjj/mvn/fileutil"
	"github.com/larsonjj/mvn/text"
	"github.com/larsonjj/mvn/texture"
)

func main() {
	version := flag.Bool("version", false, "print toolkit version and exit")
	flag.Parse()

	if *version {
		fmt.Println("mvn", mvn.VersionString())
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mvninfo [-version] <file>...")
		os.Exit(2)
	}

	for _, path := range flag.Args() {
		if err := describe(path); err != nil {
			log.Fatalf("Failed to inspect %s: %v", path, err)
		}
	}
}

// describe prints metadata for one file, decoding images and fonts when
// the extension says so.
func describe(path string) error {
	size, err := fileutil.Size(path)
	if err != nil {
		return err
	}
	mod, err := fileutil.ModTime(path)
	if err != nil {
		return err
	}

	fmt.Println(fileutil.Name(path))
	fmt.Printf("  size:     %d bytes\n", size)
	fmt.Printf("  modified: %s\n", mod.Format(time.RFC3339))

	switch {
	case isImage(path):
		tex, err := texture.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("  image:    %dx%d\n", tex.Width(), tex.Height())
	case fileutil.HasExtension(path, ".ttf") || fileutil.HasExtension(path, ".otf"):
		src, err := text.LoadFontSource(path)
		if err != nil {
			return err
		}
		fmt.Printf("  font:     %s\n", src.Name())
	}
	return nil
}

func isImage(path string) bool {
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"} {
		if fileutil.HasExtension(path, ext) {
			return true
		}
	}
	return false
}
