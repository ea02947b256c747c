// Live camera classification.
//
// Captures frames from a local camera, samples one in N, classifies it with
// a quantized model, and publishes the result to the console and the web
// dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-lens/internal/config"
	"github.com/teslashibe/go-lens/internal/log"
	"github.com/teslashibe/go-lens/pkg/analyzer"
	"github.com/teslashibe/go-lens/pkg/capture"
	"github.com/teslashibe/go-lens/pkg/classify"
	"github.com/teslashibe/go-lens/pkg/display"
	"github.com/teslashibe/go-lens/pkg/sampler"
	"github.com/teslashibe/go-lens/pkg/web"
)

func main() {
	log.Init(config.LogLevel())

	fmt.Println("👁️  go-lens — live camera classification")
	fmt.Println("=========================================")

	// Classifier: a load failure is recorded, not fatal; the pipeline then
	// reports "Model not loaded" instead of crashing.
	clsCfg := classify.DefaultConfig()
	clsCfg.ModelPath = config.ModelPath()
	clsCfg.LabelsPath = config.LabelsPath()
	cls := classify.New(clsCfg)
	defer cls.Close()

	smp, err := sampler.New(config.SampleInterval())
	if err != nil {
		log.Error("invalid sample interval", "err", err)
		os.Exit(1)
	}

	a := analyzer.New(cls, smp)

	// Camera setup errors are explicit and fatal: without frames there is
	// no pipeline.
	cam, err := capture.OpenWebcam(capture.WebcamConfig{
		Device: config.CameraDevice(),
		Width:  640,
		Height: 480,
	})
	if err != nil {
		log.Error("camera setup failed", "err", err)
		os.Exit(1)
	}
	defer cam.Close()

	// Camera access granted: authorize the analysis gate.
	a.Authorize()

	srv := web.NewServer(config.WebPort())
	srv.OnMetrics = func() any { return a.Metrics() }
	srv.StartAsync()
	defer srv.Shutdown()

	// Handle Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Goodbye!")
		cancel()
	}()

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := a.Run(ctx); err != nil {
			log.Error("analysis worker failed", "err", err)
			cancel()
		}
	}()

	sinks := display.Fanout(display.Console{}, srv)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case p := <-a.Predictions():
				sinks.Show(p.Text)
			}
		}
	}()

	fmt.Printf("🔄 Capturing (sampling 1 in %d, Ctrl+C to stop)\n\n", smp.Interval())

	for ctx.Err() == nil {
		frame, err := cam.Read(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			log.Warn("frame read failed", "err", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}
		a.Submit(frame)
	}

	// Let the worker drain before the deferred classifier Close runs.
	<-workerDone

	m := a.Metrics()
	fmt.Printf("📊 frames=%d sampled=%d classified=%d\n", m.Received, m.Sampled, m.Classified)
}
