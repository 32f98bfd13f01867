package utils

import (
	"embed"
	"encoding/json"
	"log"
	"net/url"
	"sort"
	"strings"
	"sync"
)

//go:embed tracking_params.json
var trackingParamsJSON embed.FS

// TrackingParamDetail defines the metadata for one tracking parameter rule.
type TrackingParamDetail struct {
	Key         string `json:"key"`
	MatchType   string `json:"match_type,omitempty"` // "exact" or "prefix"
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RemovedParamInfo records a tracking parameter stripped from a target URL.
type RemovedParamInfo struct {
	Parameter   string `json:"parameter"`
	Value       string `json:"value"`
	Company     string `json:"company"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MatchedRule string `json:"matched_rule"`
}

var (
	exactMatchParams  map[string]TrackingParamDetail
	prefixMatchParams []TrackingParamDetail
	loadOnce          sync.Once
	loadErr           error
)

func loadTrackingDefinitions() {
	loadOnce.Do(func() {
		fileData, err := trackingParamsJSON.ReadFile("tracking_params.json")
		if err != nil {
			loadErr = err
			log.Printf("Error reading embedded tracking_params.json: %v", err)
			return
		}

		var params []TrackingParamDetail
		if err = json.Unmarshal(fileData, &params); err != nil {
			loadErr = err
			log.Printf("Error unmarshalling tracking_params.json: %v", err)
			return
		}

		exactMatchParams = make(map[string]TrackingParamDetail)
		for _, p := range params {
			if p.MatchType == "" {
				p.MatchType = "exact"
			}
			p.Key = strings.ToLower(p.Key)
			if p.MatchType == "prefix" {
				prefixMatchParams = append(prefixMatchParams, p)
			} else {
				exactMatchParams[p.Key] = p
			}
		}
	})
}

// CleanURLResult holds the result of the cleaning operation.
type CleanURLResult struct {
	CleanedURL    string
	RemovedParams []RemovedParamInfo
}

// CleanURL strips known tracking parameters from a target URL before it
// enters an investigation, reporting what was removed. Kept parameters are
// re-encoded in sorted key order.
func CleanURL(rawURL string) (CleanURLResult, error) {
	loadTrackingDefinitions()
	if loadErr != nil {
		return CleanURLResult{}, loadErr
	}

	result := CleanURLResult{RemovedParams: []RemovedParamInfo{}}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return result, err
	}

	query := parsedURL.Query()
	if len(query) == 0 {
		result.CleanedURL = parsedURL.String()
		return result, nil
	}

	kept := url.Values{}
	for key, values := range query {
		detail, ruleKey, matched := matchTrackingParam(strings.ToLower(key))
		if matched {
			for _, value := range values {
				result.RemovedParams = append(result.RemovedParams, RemovedParamInfo{
					Parameter:   key,
					Value:       value,
					Company:     detail.Company,
					Type:        detail.Type,
					Description: detail.Description,
					MatchedRule: ruleKey,
				})
			}
			continue
		}
		for _, value := range values {
			kept.Add(key, value)
		}
	}

	keptKeys := make([]string, 0, len(kept))
	for k := range kept {
		keptKeys = append(keptKeys, k)
	}
	sort.Strings(keptKeys)

	final := url.Values{}
	for _, k := range keptKeys {
		for _, v := range kept[k] {
			final.Add(k, v)
		}
	}
	parsedURL.RawQuery = final.Encode()
	result.CleanedURL = parsedURL.String()

	return result, nil
}

// matchTrackingParam checks exact rules before prefix rules.
func matchTrackingParam(lowercaseKey string) (TrackingParamDetail, string, bool) {
	if detail, ok := exactMatchParams[lowercaseKey]; ok {
		return detail, detail.Key, true
	}
	for _, detail := range prefixMatchParams {
		if strings.HasPrefix(lowercaseKey, detail.Key) {
			return detail, detail.Key, true
		}
	}
	return TrackingParamDetail{}, "", false
}
