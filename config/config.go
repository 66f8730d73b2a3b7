/*
 *    Copyright 2025 XeOps.ai
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package config

import (
	"bytes"
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const (
	defaultPort           = 3000
	defaultMaxRequestSize = 1048576
	defaultCaptchaTimeout = 10
	defaultVerifyURL      = "https://www.google.com/recaptcha/api/siteverify"
)

type AppConfig struct {
	HTTPServer   HTTPServer
	Captcha      Captcha
	Storage      Storage
	Email        Email
	Notification Notification
	Redis        Redis
	Aws          AWS
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Metrics           bool
	DebugLog          bool
	MaxRequestSize    int
	Port              int
}

type Captcha struct {
	Secret    string
	VerifyURL string
	Timeout   int
}

type Storage struct {
	DataDir  string
	AuditLog string
}

type Email struct {
	Enabled   bool
	Transport string
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	FromName  string
	NotifyTo  string
}

type Notification struct {
	Slack Slack
}

type Slack struct {
	ChannelID string
	Webhook   string
}

type Redis struct {
	URL      string
	Password string
	UseTLS   bool
}

type AWS struct {
	Region        string
	ArchiveBucket string
	Resolver      string
}

func NewConfig() *AppConfig {
	return &AppConfig{
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
		Captcha: Captcha{
			VerifyURL: defaultVerifyURL,
			Timeout:   defaultCaptchaTimeout,
		},
		Storage: Storage{
			DataDir:  "./scan_requests",
			AuditLog: "./logs/form_submissions.log",
		},
		Email: Email{
			Transport: "log",
			From:      "noreply@xeops.ai",
			FromName:  "XeOps.ai",
			NotifyTo:  "contact@xeops.ai",
		},
		Aws: AWS{
			Region: "us-east-1",
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Captcha.Secret == "" {
		return fmt.Errorf("no CAPTCHA secret specified")
	}

	if config.Storage.DataDir == "" {
		return fmt.Errorf("no data directory specified")
	}

	if config.Email.Transport != "smtp" && config.Email.Transport != "log" {
		return fmt.Errorf("unknown email transport %q", config.Email.Transport)
	}

	if config.Email.Enabled && config.Email.Transport == "smtp" && config.Email.Host == "" {
		return fmt.Errorf("no SMTP host specified")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/data/")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// If file not found, return error
	if err := v.MergeInConfig(); err != nil {
		return AppConfig{}, err
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}
