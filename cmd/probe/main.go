package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"whitted-tracer/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene file (default: built-in demo)")
	x := flag.Int("x", -1, "Pixel column (default: center)")
	y := flag.Int("y", -1, "Pixel row (default: center)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	sc := scene.Demo()
	if *scenePath != "" {
		var err error
		sc, err = scene.Load(*scenePath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading scene")
		}
	}

	px, py := *x, *y
	if px < 0 {
		px = sc.Width / 2
	}
	if py < 0 {
		py = sc.Height / 2
	}
	if px >= sc.Width || py >= sc.Height {
		log.Fatal().Int("x", px).Int("y", py).Int("width", sc.Width).Int("height", sc.Height).Msg("pixel out of range")
	}

	res := sc.Probe(px, py)
	fmt.Printf("Pixel (%d, %d)\n", res.X, res.Y)
	fmt.Printf("  Ray dir: (%.5f, %.5f, %.5f)\n", res.Ray.Direction[0], res.Ray.Direction[1], res.Ray.Direction[2])
	if !res.Hit {
		fmt.Println("  Miss: background")
	} else {
		fmt.Printf("  Hit: shape[%d] %s at distance %.5f\n", res.Index, res.Kind, res.Distance)
		fmt.Printf("  Point:  (%.5f, %.5f, %.5f)\n", res.Point[0], res.Point[1], res.Point[2])
		fmt.Printf("  Normal: (%.5f, %.5f, %.5f)\n", res.Normal[0], res.Normal[1], res.Normal[2])
		for i, p := range res.LightPower {
			l := sc.Lights[i]
			state := "lit"
			if p == 0 {
				state = "shadowed or facing away"
			}
			fmt.Printf("  Light[%d] %s: power %.6f (%s)\n", i, l.Kind, p, state)
		}
	}
	c := res.Color.NRGBA()
	fmt.Printf("  Linear: (%.5f, %.5f, %.5f)\n", res.Color.R, res.Color.G, res.Color.B)
	fmt.Printf("  Pixel:  #%02x%02x%02x\n", c.R, c.G, c.B)
}
