package main

import (
	"fmt"
	"io"

	"github.com/DannyStoll1/marked-cycles/libcycles"
	"github.com/DannyStoll1/marked-cycles/libcycles/combinat"
	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// printDataTable prints the closed-form cell counts per period.
func printDataTable(out io.Writer, maxPeriod int64, critPeriod int32, dyn bool) {
	if dyn {
		fmt.Fprintln(out, "data table for dynatomic curves is not yet supported")
		return
	}

	comb := combinat.MarkedCycleComb{CritPeriod: critPeriod}
	fmt.Fprintln(out, "period | vertices | edges | faces | genus")
	for n := int64(2); n <= maxPeriod; n++ {
		fmt.Fprintf(out, "%6d | %8d | %7d | %6d | %6d\n",
			n, comb.NumVertices(n), comb.NumEdges(n), comb.NumFaces(n), comb.Genus(n))
	}
}

// printFaceStats builds every cover from period 2 up and prints one
// CSV row of face statistics per period.
func printFaceStats(
	out io.Writer,
	family mcycles.CurveFamily,
	critPeriod int32,
	maxPeriod mcycles.Period,
	cat mcycles.Catalog,
) error {

	stream, err := libcycles.StreamCovers(family, critPeriod, 2, maxPeriod)
	if err != nil {
		return err
	}
	if cat != nil && !cat.IsReadOnly() {
		stream = stream.AddTo(cat)
	}

	fmt.Fprintln(out, libcycles.FaceStatsHeader())
	for X := range stream.Outlet {
		switch cov := X.(type) {
		case *libcycles.MarkedCycleCover:
			fmt.Fprintln(out, cov.FaceStats().Row())
		case *libcycles.DynatomicCover:
			fmt.Fprintln(out, cov.FaceStats().Row())
		}
	}
	return nil
}
