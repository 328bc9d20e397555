// Command stripedemo runs a stripe scene against procedurally generated
// terrain and reports what each tick produces.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/groundgeom/stripe"
	"github.com/groundgeom/stripe/document"
	"github.com/groundgeom/stripe/scene"
	"github.com/groundgeom/stripe/terrain"
)

// demoDocument describes two stripes: a road clamped to the terrain and a
// survey corridor whose width animates over the first twenty seconds.
const demoDocument = `{
  "version": "1",
  "entities": [
    {
      "name": "perimeter road",
      "stripe": {
        "positions": {"constant": [
          [-300, -300, 0], [300, -300, 0], [300, 300, 0], [-300, 300, 0]
        ]},
        "width": {"constant": 14},
        "heightReference": {"constant": "CLAMP_TO_GROUND"},
        "cornerType": {"constant": "ROUNDED"},
        "material": {"color": {"constant": "#4477aa"}},
        "zIndex": {"constant": 1}
      }
    },
    {
      "name": "survey sweep",
      "stripe": {
        "positions": {"constant": [
          [-350, -100, 0], [-100, 50, 0], [150, -80, 0], [350, 60, 0]
        ]},
        "width": {"samples": [
          {"time": 0, "value": 4},
          {"time": 20, "value": 18}
        ]},
        "height": {"constant": 25},
        "cornerType": {"constant": "MITERED"},
        "material": {"color": {"constant": [0.9, 0.55, 0.15, 1]}}
      }
    }
  ]
}`

func main() {
	var (
		ticks   = flag.Int("ticks", 8, "number of simulation ticks")
		step    = flag.Float64("step", 2.5, "seconds per tick")
		seed    = flag.Int64("seed", 1337, "terrain noise seed")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		stripe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// 800x800 units of rolling terrain centered on the origin.
	ground, err := terrain.Noise(mgl64.Vec2{-400, -400}, 25, 33, 33, 60, *seed)
	if err != nil {
		log.Fatalf("Failed to build terrain: %v", err)
	}
	hr := ground.MinMaxHeights(ground.Bounds())
	log.Printf("Terrain: %.0fx%.0f units, heights %.1f..%.1f",
		ground.Bounds().Width(), ground.Bounds().Height(), hr.Minimum, hr.Maximum)

	doc, err := document.Decode([]byte(demoDocument))
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	v := scene.NewVisualizer(stripe.NewGeometryFactory(), ground)
	for _, e := range doc.Entities {
		if err := v.Add(e); err != nil {
			log.Fatalf("Failed to add %s: %v", e.Name, err)
		}
		mode := "static"
		if v.Updater(e.ID).Mode() == stripe.ModeDynamic {
			mode = "dynamic"
		}
		log.Printf("Added %s (%s geometry)", e.Name, mode)
	}

	clock := scene.NewClock(0, *step)
	for i := 0; i < *ticks; i++ {
		t := clock.Tick()
		v.Update(t)

		prims := v.Primitives()
		vertices, indices := 0, 0
		for _, p := range prims {
			vertices += p.Instance.Mesh.VertexCount()
			indices += len(p.Instance.Mesh.Indices)
		}
		log.Printf("t=%5.1f: %d primitives, %d vertices, %d triangles",
			float64(t), len(prims), vertices, indices/3)
	}

	log.Printf("Done after %d ticks", *ticks)
}
