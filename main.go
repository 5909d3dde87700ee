package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"wavesim/internal/render"
	"wavesim/internal/wave"
)

func main() {
	flag.Parse()

	settings, err := loadSettings(*configFlag)
	if err != nil {
		log.Fatalf("Loading settings failed: %v", err)
	}
	applyFlags(&settings)

	stopProfiling, err := startProfiling(*cpuProfileFlag, *heapProfileFlag)
	if err != nil {
		log.Fatalf("Profiling setup failed: %v", err)
	}
	err = run(settings)
	if perr := stopProfiling(); perr != nil {
		log.Printf("Writing profiles failed: %v", perr)
	}
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

func run(settings Settings) error {
	params := settings.params(*allowUnstableFlag)
	if err := params.Validate(); err != nil {
		return err
	}
	initial, err := settings.initFunc()
	if err != nil {
		return err
	}
	backend, err := wave.NewBackend(settings.Compute.Backend, settings.backendOptions())
	if err != nil {
		return &wave.StageError{Stage: wave.StageInit, Err: err}
	}
	defer backend.Close()

	sim, err := wave.New(params, initial, backend)
	if err != nil {
		return err
	}
	log.Printf("Simulating %dx%d for %d steps on %s (k=%g)",
		params.Width, params.Height, params.Steps, backend.Name(), params.Courant())

	var pr *probe
	if *probeFlag != "" {
		if settings.Compute.Backend == wave.BackendOpenCL {
			return errors.New("probe needs a host backend (cpu or pool)")
		}
		if pr, err = parseProbe(*probeFlag); err != nil {
			return err
		}
		if err := pr.check(sim.Grid()); err != nil {
			return err
		}
	}
	logEvery := *logEveryFlag
	sim.Observer = func(step int, g *wave.Grid) {
		if pr != nil {
			pr.observe(step, g)
		}
		if logEvery > 0 && step%logEvery == 0 && step < params.Steps {
			log.Printf("Step %d/%d", step, params.Steps)
		}
	}

	if *viewFlag {
		if err := runViewer(sim, *stepsPerFrameFlag, float32(*pngScaleFlag)); err != nil {
			return err
		}
	} else {
		start := time.Now()
		if err := sim.Run(); err != nil {
			return err
		}
		log.Printf("%s execution time: %.3f seconds", backend.Name(), time.Since(start).Seconds())
	}

	field, err := sim.Field()
	if err != nil {
		return err
	}
	if !sim.Complete() {
		log.Printf("Warning: run stopped after %d of %d steps; outputs hold a partial run", sim.Done(), params.Steps)
	}
	s := wave.Summarize(field)
	log.Printf("Final field after %d steps: min %.4f max %.4f mean %.6f L2 %.4f",
		sim.Done(), s.Min, s.Max, s.Mean, s.L2)

	if pr != nil {
		log.Print(pr.summary())
		if *probeOutFlag != "" {
			if err := writeFile(*probeOutFlag, pr.writeCSV); err != nil {
				return err
			}
		}
	}
	if *pngFlag != "" {
		err := writeFile(*pngFlag, func(w io.Writer) error {
			return render.WritePNG(w, params.Width, params.Height, field, sim.Grid().Elevation, float32(*pngScaleFlag))
		})
		if err != nil {
			return err
		}
		log.Printf("Wrote %s", *pngFlag)
	}
	if *rawFlag != "" {
		err := writeFile(*rawFlag, func(w io.Writer) error {
			return render.WriteRaw(w, field)
		})
		if err != nil {
			return err
		}
		log.Printf("Wrote %s", *rawFlag)
	}
	return nil
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
