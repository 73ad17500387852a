package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-daily-diary",
			TokenDuration: 24 * time.Hour,
			Version:       "1.0.0",
		},
		Storage: Storage{
			Local: Local{Dir: "./data"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Cache: Cache{
			StaleTime:       5 * time.Minute,
			GCTime:          30 * time.Minute,
			JanitorInterval: time.Minute,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
