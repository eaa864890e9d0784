package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Events struct {
		MQTT struct {
			Broker         string   `json:"broker"`
			ClientID       string   `json:"client_id"`
			Username       string   `json:"username"`
			Password       string   `json:"password"`
			TopicPrefix    string   `json:"topic_prefix"`
			QoS            int      `json:"qos"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"mqtt,omitempty"`
		QueueSize int `json:"queue_size"`
	} `json:"events,omitempty"`

	Sync struct {
		PermissionsFile string `json:"permissions_file"`
	} `json:"sync,omitempty"`
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
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Events: Events{
			MQTT: MQTT{
				Broker:         jsonCfg.Events.MQTT.Broker,
				ClientID:       jsonCfg.Events.MQTT.ClientID,
				Username:       jsonCfg.Events.MQTT.Username,
				Password:       jsonCfg.Events.MQTT.Password,
				TopicPrefix:    jsonCfg.Events.MQTT.TopicPrefix,
				QoS:            jsonCfg.Events.MQTT.QoS,
				ConnectTimeout: time.Duration(jsonCfg.Events.MQTT.ConnectTimeout),
			},
			QueueSize: jsonCfg.Events.QueueSize,
		},
		Sync: Sync{
			PermissionsFile: jsonCfg.Sync.PermissionsFile,
		},
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
