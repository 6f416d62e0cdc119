package client

import (
	"context"
	"fmt"
	"log"

	"github.com/otiai10/gosseract/v2"
)

// OCROptions tune Tesseract for a particular document layout. A character
// whitelist cuts down on symbol noise in stamped figures; the page
// segmentation mode helps with tabular policy schedules. Zero values leave
// the engine defaults in place.
type OCROptions struct {
	Language    string
	Whitelist   string
	PageSegMode gosseract.PageSegMode
}

type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractText runs Tesseract over the image at filePath and returns the raw
// transcript. Best effort: the text comes back noisy and unstructured.
func (tc *TesseractClient) ExtractText(filePath string, opts OCROptions) (string, error) {
	ocr := gosseract.NewClient()
	defer ocr.Close()

	ocr.SetTessdataPrefix(tc.dataPath)

	lang := opts.Language
	if lang == "" {
		lang = "eng"
	}
	if err := ocr.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if opts.Whitelist != "" {
		if err := ocr.SetWhitelist(opts.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if opts.PageSegMode != 0 {
		if err := ocr.SetPageSegMode(opts.PageSegMode); err != nil {
			return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}

	if err := ocr.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := ocr.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// ExtractTextContext bounds ExtractText with the context's deadline.
// Tesseract itself cannot be cancelled, so the recognition keeps running in
// its goroutine after a timeout, but the request no longer waits on it.
func (tc *TesseractClient) ExtractTextContext(ctx context.Context, filePath string, opts OCROptions) (string, error) {
	type result struct {
		text string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		text, err := tc.ExtractText(filePath, opts)
		ch <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ocr aborted: %w", ctx.Err())
	case r := <-ch:
		return r.text, r.err
	}
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
