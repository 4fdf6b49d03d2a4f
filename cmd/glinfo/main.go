// glinfo probes a headless host's software GL stack: it creates an OSMesa
// context and a CPU render buffer, binds them, and reports what the
// rasterizer offers. Draw calls happen only here, never in the library.
package main

import (
	"context"
	"image"
	"image/png"
	stdos "os"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	flag "github.com/spf13/pflag"

	"github.com/osmesa-go/osmesa/pkg/config"
	"github.com/osmesa-go/osmesa/pkg/logger"
	"github.com/osmesa-go/osmesa/pkg/monitoring"
	"github.com/osmesa-go/osmesa/pkg/os"
	"github.com/osmesa-go/osmesa/pkg/osmesa"
	"github.com/osmesa-go/osmesa/pkg/osmesa/mesa"
	"github.com/osmesa-go/osmesa/pkg/thread"
)

var Version = ""

func run() {
	var (
		screenshot string
		bench      bool
	)
	conf := config.NewConfig().WithFlags(flag.CommandLine)
	flag.StringVar(&screenshot, "screenshot", "", "Write the cleared buffer to a PNG file")
	flag.BoolVar(&bench, "bench", false, "Loop bind/unbind cycles until interrupted")
	flag.Parse()

	log := logger.NewConsole(conf.Debug, "glinfo", false)
	if Version != "" {
		log.Info().Msgf("version: %v", Version)
	}

	if conf.Library.Path != "" {
		_ = stdos.Setenv(mesa.LibEnv, conf.Library.Path)
	}

	profile, err := conf.GlProfile()
	if err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	buf := osmesa.NewBuffer(conf.Buffer.W, conf.Buffer.H)
	ctx, err := osmesa.New(osmesa.Config{
		Profile: profile,
		Version: osmesa.Version{Major: conf.Context.Major, Minor: conf.Context.Minor},
		Log:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("context creation failed")
	}
	defer ctx.Destroy()
	monitoring.ContextsCreated.Inc()

	thread.Main(func() {
		ctx.MakeCurrent(buf)
		monitoring.Binds.Inc()

		if err := gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
			p, err := ctx.ProcAddress(name)
			if err != nil {
				log.Fatal().Err(err).Msg("proc address")
			}
			return p
		}); err != nil {
			log.Fatal().Err(err).Msg("gl init failed")
		}

		log.Info().Msgf("GL_VERSION:  %v", gl.GoStr(gl.GetString(gl.VERSION)))
		log.Info().Msgf("GL_VENDOR:   %v", gl.GoStr(gl.GetString(gl.VENDOR)))
		log.Info().Msgf("GL_RENDERER: %v", gl.GoStr(gl.GetString(gl.RENDERER)))
		log.Info().Msgf("GLSL:        %v", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

		if screenshot != "" {
			gl.ClearColor(0.2, 0.3, 0.3, 1.0)
			gl.Clear(gl.COLOR_BUFFER_BIT)
			gl.Finish()
			if err := writePNG(screenshot, buf); err != nil {
				log.Error().Err(err).Msgf("couldn't write %v", screenshot)
			} else {
				log.Info().Msgf("buffer saved to %v", screenshot)
			}
		}

		unbind(ctx, log)
	})

	if bench {
		runBench(ctx, buf, conf, log)
	}
}

// runBench hammers the bind/unbind cycle until SIGINT/SIGTERM, optionally
// exposing the counters and pprof over HTTP.
func runBench(ctx *osmesa.Context, buf *osmesa.Buffer, conf *config.Config, log *logger.Logger) {
	var mon *monitoring.Monitoring
	if conf.Monitoring.IsEnabled() {
		mon = monitoring.New(conf.Monitoring, "glinfo", log)
		mon.Run()
	}

	log.Info().Msg("bench: looping bind/unbind, ^C to stop")
	done := os.ExpectTermination()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			thread.Main(func() {
				ctx.MakeCurrent(buf)
				monitoring.Binds.Inc()
				unbind(ctx, log)
			})
		}
	}

	if mon != nil {
		c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := mon.Shutdown(c); err != nil {
			log.Error().Err(err).Msg("monitoring shutdown failed")
		}
	}
}

func unbind(ctx *osmesa.Context, log *logger.Logger) {
	if err := ctx.MakeNotCurrent(); err != nil {
		monitoring.UnbindFailures.Inc()
		log.Warn().Err(err).Msg("context stays bound")
		return
	}
	monitoring.Unbinds.Inc()
}

// writePNG stores the buffer as a PNG. OSMesa writes rows bottom-up, so
// they are flipped on the way out.
func writePNG(name string, b *osmesa.Buffer) error {
	w, h := int(b.Width()), int(b.Height())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	src, stride := b.Bytes(), w*4
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:], src[(h-1-y)*stride:(h-y)*stride])
	}
	f, err := stdos.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func main() {
	thread.MainWrap(run)
}
