package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/guestkeeper/internal/flagx"
	"github.com/dmitrijs2005/guestkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations accept strings like "3s" or integer nanoseconds.
// Pointer fields distinguish "absent" from "set to empty".
type JsonConfig struct {
	ServerEndpointAddr  *string        `json:"server_endpoint_addr"`
	LocalDBPath         string         `json:"local_db_path"`
	ExportDir           string         `json:"export_dir"`
	DefaultTitle        string         `json:"default_title"`
	LogLevel            string         `json:"log_level"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`

	S3Bucket   string `json:"s3_bucket"`
	S3Region   string `json:"s3_region"`
	S3Endpoint string `json:"s3_endpoint"`
	S3User     string `json:"s3_user"`
	S3Password string `json:"s3_password"`
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Fields missing from the file keep their current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
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

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	overlay(&cfg.LocalDBPath, jc.LocalDBPath)
	overlay(&cfg.ExportDir, jc.ExportDir)
	overlay(&cfg.DefaultTitle, jc.DefaultTitle)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Endpoint, jc.S3Endpoint)
	overlay(&cfg.S3User, jc.S3User)
	overlay(&cfg.S3Password, jc.S3Password)

	if d := jc.RequestTimeout.Duration; d > 0 {
		cfg.RequestTimeout = d
	}
	if d := jc.OnlineCheckInterval.Duration; d > 0 {
		cfg.OnlineCheckInterval = d
	}
}
