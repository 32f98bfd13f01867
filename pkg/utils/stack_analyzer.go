package utils

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	wappalyze "github.com/projectdiscovery/wappalyzergo"
)

var (
	wappalyzerClient   *wappalyze.Wappalyze
	wappalyzerInitOnce sync.Once
	wappalyzerInitErr  error
)

const versionSeparator = ":"

func initializeWappalyzer() {
	wappalyzerInitOnce.Do(func() {
		wappalyzerClient, wappalyzerInitErr = wappalyze.New()
		if wappalyzerInitErr != nil {
			wappalyzerInitErr = fmt.Errorf("failed to initialize wappalyzer client: %w", wappalyzerInitErr)
			log.Println(wappalyzerInitErr)
		}
	})
}

// DetectedTechnologyInfo describes one technology fingerprinted on a page.
type DetectedTechnologyInfo struct {
	Name        string
	Version     string
	Categories  []string
	Description string
	Website     string
	Icon        string
	CPE         string
}

// AnalyzeStack fetches a URL, decompresses its body if needed and
// fingerprints the technology stack of the final landing page.
func AnalyzeStack(targetURL string) ([]DetectedTechnologyInfo, string, error) {
	initializeWappalyzer()
	if wappalyzerInitErr != nil {
		return nil, targetURL, wappalyzerInitErr
	}

	fetchResult, err := FetchURL(targetURL)
	if err != nil {
		return nil, targetURL, err
	}
	finalURL := fetchResult.FinalURL

	if fetchResult.StatusCode != 200 {
		return nil, finalURL, fmt.Errorf("failed to fetch %s: received status code %d (%s)", targetURL, fetchResult.StatusCode, fetchResult.Status)
	}

	body := decompressBody(fetchResult)

	detected := wappalyzerClient.FingerprintWithInfo(fetchResult.Headers, body)

	var results []DetectedTechnologyInfo
	for appKey, appInfo := range detected {
		name := appKey
		version := ""
		if strings.Contains(appKey, versionSeparator) {
			parts := strings.SplitN(appKey, versionSeparator, 2)
			name = parts[0]
			version = parts[1]
		}
		results = append(results, DetectedTechnologyInfo{
			Name:        name,
			Version:     version,
			Categories:  appInfo.Categories,
			Description: appInfo.Description,
			Website:     appInfo.Website,
			Icon:        appInfo.Icon,
			CPE:         appInfo.CPE,
		})
	}

	return results, finalURL, nil
}

// decompressBody undoes the Content-Encoding FetchURL negotiated. On any
// decompression problem the original bytes are analyzed as-is.
func decompressBody(fetchResult *FetchResult) []byte {
	encoding := strings.ToLower(strings.TrimSpace(fetchResult.Headers.Get("Content-Encoding")))

	var reader io.ReadCloser
	switch encoding {
	case "gzip":
		gz, err := gzip.NewReader(bytes.NewReader(fetchResult.Body))
		if err != nil {
			log.Printf("Failed to create gzip reader for %s: %v. Using original body.", fetchResult.FinalURL, err)
			return fetchResult.Body
		}
		reader = gz
	case "deflate":
		zl, err := zlib.NewReader(bytes.NewReader(fetchResult.Body))
		if err != nil {
			log.Printf("Failed to create deflate reader for %s: %v. Using original body.", fetchResult.FinalURL, err)
			return fetchResult.Body
		}
		reader = zl
	case "br":
		reader = io.NopCloser(brotli.NewReader(bytes.NewReader(fetchResult.Body)))
	default:
		return fetchResult.Body
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("Failed to decompress %s body for %s: %v. Using original body.", encoding, fetchResult.FinalURL, err)
		return fetchResult.Body
	}
	return decompressed
}
