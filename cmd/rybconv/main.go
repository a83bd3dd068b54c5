// seehuhn.de/go/ryb - colour conversions for the red-yellow-blue colour wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Rybconv converts colours between the RGB, HSV and RYB models.
//
// Usage:
//
//	rybconv [flags] colour...
//
// Each colour is given in the model selected by -from:
//
//	hex     #ff8000 or ff8000
//	name    an SVG colour name, e.g. cornflowerblue
//	rgb     255,128,0
//	ryb     255,255,0
//	hsv     30,1,1
//	rybhsv  60,1,1 (hue on the painter's colour wheel)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

func main() {
	from := flag.String("from", modelHex, "input colour model (hex, name, rgb, ryb, hsv, rybhsv)")
	exact := flag.Bool("exact", false, "use exact rounding for HSV to RGB")
	lang := flag.String("lang", "en", "language for number formatting (BCP 47)")
	swatch := flag.String("swatch", "auto", "show colour swatches (auto, always, never)")
	list := flag.Bool("list", false, "list the known colour names and exit")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("rybconv: ")

	if *list {
		err := listNames(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] colour...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid language %q: %v", *lang, err)
	}

	var showSwatch bool
	switch *swatch {
	case "auto":
		showSwatch = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		showSwatch = true
	case "never":
		showSwatch = false
	default:
		log.Fatalf("invalid -swatch value %q", *swatch)
	}

	r := newReporter(os.Stdout, tag, showSwatch)
	for _, arg := range flag.Args() {
		s, err := convert(*from, arg, *exact)
		if err != nil {
			log.Fatal(err)
		}
		err = r.write(s)
		if err != nil {
			log.Fatal(err)
		}
	}
}

// listNames prints the colour names accepted by "-from name", one per line.
func listNames(w io.Writer) error {
	names := maps.Keys(colornames.Map)
	slices.Sort(names)
	for _, name := range names {
		c := colornames.Map[name]
		_, err := fmt.Fprintf(w, "%-20s %s\n", name, hexString(c))
		if err != nil {
			return err
		}
	}
	return nil
}
