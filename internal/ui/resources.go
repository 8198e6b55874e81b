package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxImageBytes = 4 << 20

var errImageTooLarge = errors.New("image exceeds size limit")

// ImageLoader fetches product images in the background and caches them by URL
type ImageLoader struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]fyne.Resource
	order []string
}

// NewImageLoader creates a loader with a traced HTTP client
func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		client: &http.Client{
			Timeout:   ImageLoadTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cache: make(map[string]fyne.Resource),
	}
}

// Load fills img with the image at url. Cached images are set immediately;
// others are fetched in a goroutine and applied on the UI thread.
func (il *ImageLoader) Load(img *canvas.Image, url string) {
	if url == "" {
		return
	}
	if res, ok := il.cached(url); ok {
		img.Resource = res
		img.Refresh()
		return
	}

	go func() {
		res, err := il.fetch(url)
		if err != nil {
			log.Printf("failed to load image %s: %v", url, err)
			return
		}
		il.store(url, res)
		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
}

func (il *ImageLoader) fetch(url string) (fyne.Resource, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ImageLoadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := il.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	return fyne.NewStaticResource(url, data), nil
}

func (il *ImageLoader) cached(url string) (fyne.Resource, bool) {
	il.mu.Lock()
	defer il.mu.Unlock()
	res, ok := il.cache[url]
	return res, ok
}

func (il *ImageLoader) store(url string, res fyne.Resource) {
	il.mu.Lock()
	defer il.mu.Unlock()

	if _, exists := il.cache[url]; exists {
		return
	}
	if len(il.order) >= ImageCacheSize {
		oldest := il.order[0]
		il.order = il.order[1:]
		delete(il.cache, oldest)
	}
	il.cache[url] = res
	il.order = append(il.order, url)
}
