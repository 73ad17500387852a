package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] in the JSON file layout.
type jsonConfig struct {
	App struct {
		TokenSignKey  string    `json:"token_sign_key"`
		TokenIssuer   string    `json:"token_issuer"`
		TokenDuration *Duration `json:"token_duration"`
		HashKey       string    `json:"hash_key"`
		Version       string    `json:"version"`
		TimeZone      string    `json:"time_zone"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db"`
		Local struct {
			Dir string `json:"dir"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string    `json:"http_address"`
		GRPCAddress    string    `json:"grpc_address"`
		RequestTimeout *Duration `json:"request_timeout"`
	} `json:"server"`

	Cache struct {
		StaleTime       *Duration `json:"stale_time"`
		GCTime          *Duration `json:"gc_time"`
		JanitorInterval *Duration `json:"janitor_interval"`
	} `json:"cache"`

	Adapter struct {
		BaseURL        string    `json:"address"`
		RequestTimeout *Duration `json:"request_timeout"`
		SessionFile    string    `json:"session_file"`
	} `json:"adapter"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg jsonConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: durationOrZero(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
			TimeZone:      jsonCfg.App.TimeZone,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN, Driver: jsonCfg.Storage.DB.Driver},
			Local: Local{Dir: jsonCfg.Storage.Local.Dir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: durationOrZero(jsonCfg.Server.RequestTimeout),
		},
		Cache: Cache{
			StaleTime:       durationOrZero(jsonCfg.Cache.StaleTime),
			GCTime:          durationOrZero(jsonCfg.Cache.GCTime),
			JanitorInterval: durationOrZero(jsonCfg.Cache.JanitorInterval),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: durationOrZero(jsonCfg.Adapter.RequestTimeout),
			SessionFile:    jsonCfg.Adapter.SessionFile,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from strings like "5m" as
// well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
