// Command genconfig writes a tunables file populated with the stock wave
// parameters, ready to be edited.
//
// Usage:
//
//	go run ./cmd/genconfig \
//	  -out Mods/SailwindStormController/config.txt \
//	  -wave-weight 1.5
package main

import (
	"flag"
	"log"

	"github.com/couchcryptid/storm-controller/internal/adapter/tunablefile"
	"github.com/couchcryptid/storm-controller/internal/config"
	"github.com/couchcryptid/storm-controller/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults := domain.DefaultTunables()

	out := flag.String("out", config.DefaultTunablesPath, "output path for the tunables file")
	force := flag.Bool("force", false, "overwrite an existing file")
	t := defaults
	flag.Float64Var(&t.WindSpeedWaveFactor, "wind-speed-wave-factor", defaults.WindSpeedWaveFactor, "wind effect on wave strength")
	flag.Float64Var(&t.InertiaWindScale, "inertia-wind-scale", defaults.InertiaWindScale, "wind effect on wave inertia")
	flag.Float64Var(&t.WaveWeight, "wave-weight", defaults.WaveWeight, "weight of both inertia wave channels")
	flag.Float64Var(&t.WaveDistanceToLandIncrease, "distance-to-land-increase", defaults.WaveDistanceToLandIncrease, "added to the distance to land")
	flag.Float64Var(&t.SmallWavesValueMultiplier, "small-waves-multiplier", defaults.SmallWavesValueMultiplier, "waves in between the swells")
	flag.Parse()

	if err := tunablefile.Write(*out, t, *force); err != nil {
		return err
	}

	log.Printf("wrote %s", *out)
	for _, f := range t.Fields() {
		log.Printf("  %s: %g", f.Key, f.Value)
	}
	return nil
}
