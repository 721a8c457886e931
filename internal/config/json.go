package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		ServiceName string `json:"service_name"`
		Version     string `json:"version"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		Cache struct {
			RedisAddress  string   `json:"redis_address"`
			RedisPassword string   `json:"redis_password"`
			RedisDB       int      `json:"redis_db"`
			UserTTL       Duration `json:"user_ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		UserServiceAddress string   `json:"user_service_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		RetryCount         int      `json:"retry_count"`
		TokenSignKey       string   `json:"token_sign_key"`
		TokenDuration      Duration `json:"token_duration"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName: jsonCfg.App.ServiceName,
			Version:     jsonCfg.App.Version,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
			Cache: Cache{
				RedisAddress:  jsonCfg.Storage.Cache.RedisAddress,
				RedisPassword: jsonCfg.Storage.Cache.RedisPassword,
				RedisDB:       jsonCfg.Storage.Cache.RedisDB,
				UserTTL:       time.Duration(jsonCfg.Storage.Cache.UserTTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			UserServiceAddress: jsonCfg.Adapter.UserServiceAddress,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:         jsonCfg.Adapter.RetryCount,
			TokenSignKey:       jsonCfg.Adapter.TokenSignKey,
			TokenDuration:      time.Duration(jsonCfg.Adapter.TokenDuration),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
