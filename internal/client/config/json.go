package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
	"github.com/dmitrijs2005/storeadmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL  string         `json:"api_base_url"`
	SessionFile string         `json:"session_file"`
	ToastTTL    timex.Duration `json:"toast_ttl"`
	PageSize    int            `json:"page_size"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JsonConfigFlags(); when no path is given nothing is loaded.
// Read or unmarshal errors panic (caller may recover). Only fields
// present in the file override the running config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.ToastTTL.Duration != 0 {
		cfg.ToastTTL = jc.ToastTTL.Duration
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
}
