package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/DannyStoll1/marked-cycles/libcycles"
	"github.com/DannyStoll1/marked-cycles/libcycles/catalog"
	"github.com/DannyStoll1/marked-cycles/libcycles/tikz"
	"github.com/DannyStoll1/marked-cycles/mcycles"
)

var (
	curve     = flag.String("curve", "", "curve to build and summarize, e.g. mc(14,2) or dyn(8)")
	tableMax  = flag.Int64("table", 0, "print the closed-form data table up to this period")
	statsMax  = flag.Int64("face-stats", 0, "build covers up to this period and print face statistics")
	crit      = flag.Int("crit", 1, "critical period for -table / -face-stats")
	dyn       = flag.Bool("dyn", false, "use the dynatomic family for -face-stats")
	binaryFmt = flag.Bool("binary", false, "print angles as fixed-width binary")
	indent    = flag.Bool("indent", false, "indent cell listings")
	showVerts = flag.Bool("vertices", false, "list the vertex set")
	showEdges = flag.Bool("edges", false, "list the edge set")
	showFaces = flag.Bool("faces", true, "list each face's boundary walk")
	maxItems  = flag.Int("max-items", 100, "max items listed per cell kind")
	tikzMode  = flag.String("tikz", "", "emit tikz for the -curve faces: largest | smallest | all")
	dbPath    = flag.String("db", "", "catalog db path (cover stats are looked up and recorded)")
	sweepPath = flag.String("sweep", "", "yaml sweep config path")
)

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	var cat mcycles.Catalog
	if len(*dbPath) > 0 {
		var err error
		cat, err = catalog.OpenCatalog(mcycles.CatalogOpts{DbPathName: *dbPath})
		if err != nil {
			klog.Fatalf("open catalog: %v", err)
		}
		defer cat.Close()
	}

	switch {
	case len(*sweepPath) > 0:
		cfg, err := loadSweepConfig(*sweepPath)
		if err != nil {
			klog.Fatalf("sweep config: %v", err)
		}
		if err = runSweep(os.Stdout, cfg, cat); err != nil {
			klog.Fatalf("sweep: %v", err)
		}

	case *tableMax > 0:
		printDataTable(os.Stdout, *tableMax, int32(*crit), *dyn)

	case *statsMax > 0:
		family := mcycles.MarkedCycle
		if *dyn {
			family = mcycles.Dynatomic
		}
		if err := printFaceStats(os.Stdout, family, int32(*crit), mcycles.Period(*statsMax), cat); err != nil {
			klog.Fatalf("face stats: %v", err)
		}

	case len(*curve) > 0:
		if err := runCurve(*curve, cat); err != nil {
			klog.Fatalf("%v", err)
		}

	default:
		flag.Usage()
	}

	klog.Flush()
}

func runCurve(expr string, cat mcycles.Catalog) error {
	spec, err := mcycles.ParseCurveSpec(expr)
	if err != nil {
		return err
	}

	if cat != nil {
		if cs, found := cat.LookupStats(spec); found {
			klog.Infof("catalog: %v V=%d E=%d F=%d genus=%d",
				cs.Spec, cs.NumVertices, cs.NumEdges, cs.NumFaces, cs.Genus)
		}
	}

	var (
		X     mcycles.Cover
		views []tikz.FaceView
	)
	switch spec.Family {
	case mcycles.Dynatomic:
		cov, err := libcycles.BuildDynatomicCover(spec.Period, spec.CritPeriod)
		if err != nil {
			return err
		}
		X, views = cov, tikz.FromFaces(cov.Faces)
	default:
		cov, err := libcycles.BuildMarkedCycleCover(spec.Period, spec.CritPeriod)
		if err != nil {
			return err
		}
		X, views = cov, tikz.FromFaces(cov.Faces)
	}

	if len(*tikzMode) > 0 {
		r := tikz.NewRenderer(views)
		switch *tikzMode {
		case "largest":
			fmt.Println(r.DrawLargestFace())
		case "smallest":
			fmt.Println(r.DrawSmallestFace())
		default:
			fmt.Println(r.Generate())
		}
		return nil
	}

	X.WriteAsString(os.Stdout, mcycles.PrintOpts{
		Vertices: *showVerts,
		Edges:    *showEdges,
		Faces:    *showFaces,
		Binary:   *binaryFmt,
		Indent:   *indent,
		MaxItems: *maxItems,
	})

	if cat != nil {
		cat.TryAddStats(X.Stats())
	}
	return nil
}
