// ocrpipe-server exposes the image-to-XML pipeline over HTTP.
//
// Usage:
//
//	ocrpipe-server [-config config.yaml] [-addr host:port] [-debug]
//
// The listen address defaults to the configured server host and port
// (0.0.0.0:8000). Provider credentials come from the environment; see the
// package config documentation for the recognized variables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hdnguyen/ocrpipe/pkg/api"
	"github.com/hdnguyen/ocrpipe/pkg/config"
	"github.com/hdnguyen/ocrpipe/pkg/ocr"
	"github.com/hdnguyen/ocrpipe/pkg/paraphrase"
	"github.com/hdnguyen/ocrpipe/pkg/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging and gin debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ocrDispatcher := ocr.NewDispatcher(cfg.OCRConfig(), log)
	llmDispatcher := paraphrase.NewDispatcher(cfg.ParaphraseConfig())
	pipe := pipeline.New(ocrDispatcher, llmDispatcher, log)
	handler := api.New(pipe, llmDispatcher, cfg, log)

	listen := *addr
	if listen == "" {
		listen = cfg.Server.Addr()
	}

	log.WithFields(logrus.Fields{
		"addr":         listen,
		"ocr_provider": cfg.OCR.Provider,
		"llm_provider": cfg.LLM.Provider,
	}).Info("starting OCR pipeline server")

	if err := handler.Router().Run(listen); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
