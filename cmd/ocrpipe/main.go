// ocrpipe is a command-line tool for running the image-to-XML pipeline on a
// single file.
//
// It extracts text from the image with the selected OCR provider, structures
// the text into XML, and paraphrases the embedded content with an LLM (or
// the deterministic mock).
//
// Usage:
//
//	ocrpipe -image scan.png [options]
//
// Options:
//
//	-image string     Path to the input image (required)
//	-config string    Path to a YAML config file
//	-provider string  OCR provider (replicate, clarifai, gdocai, tesseract, mock)
//	-prompt string    Custom OCR prompt
//	-llm string       LLM provider for paraphrasing (openai, anthropic)
//	-mock-llm         Use the mock paraphraser instead of a remote LLM (default true)
//	-output string    Write the paraphrased XML to this file instead of stdout
//	-raw              Print the raw OCR text and structured XML as well
//
// Credentials come from the environment (REPLICATE_API_TOKEN, CLARIFAI_PAT,
// OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_APPLICATION_CREDENTIALS).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hdnguyen/ocrpipe/pkg/config"
	"github.com/hdnguyen/ocrpipe/pkg/ocr"
	"github.com/hdnguyen/ocrpipe/pkg/paraphrase"
	"github.com/hdnguyen/ocrpipe/pkg/pipeline"
)

func main() {
	imagePath := flag.String("image", "", "Path to the input image")
	configPath := flag.String("config", "", "Path to a YAML config file")
	provider := flag.String("provider", "", "OCR provider (empty = configured default)")
	prompt := flag.String("prompt", "", "Custom OCR prompt")
	llmProvider := flag.String("llm", "", "LLM provider for paraphrasing")
	mockLLM := flag.Bool("mock-llm", true, "Use the mock paraphraser")
	outputPath := flag.String("output", "", "Write the paraphrased XML to this file")
	showRaw := flag.Bool("raw", false, "Print raw OCR text and structured XML too")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Error: Must provide -image path")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	imageData, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Printf("Error: failed to read image: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	ocrDispatcher := ocr.NewDispatcher(cfg.OCRConfig(), log)
	llmDispatcher := paraphrase.NewDispatcher(cfg.ParaphraseConfig())
	pipe := pipeline.New(ocrDispatcher, llmDispatcher, log)

	result := pipe.Process(context.Background(), imageData, pipeline.Options{
		OCRProvider: *provider,
		OCRPrompt:   *prompt,
		LLMProvider: *llmProvider,
		UseMockLLM:  *mockLLM,
	})

	if !result.Success {
		fmt.Printf("Pipeline failed: %s (provider: %s)\n", result.Message, result.OCRProvider)
		os.Exit(1)
	}

	if *showRaw {
		fmt.Printf("--- Raw text (%s) ---\n%s\n\n", result.OCRProvider, result.RawText)
		fmt.Printf("--- Structured XML ---\n%s\n\n", result.RawXML)
		fmt.Println("--- Paraphrased XML ---")
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, []byte(result.ParaphrasedXML), 0o644); err != nil {
			fmt.Printf("Error: failed to write output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *outputPath)
		return
	}
	fmt.Println(result.ParaphrasedXML)
}
