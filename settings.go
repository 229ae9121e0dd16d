package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// settings keys
const (
	sLogFile      = "logFile"
	sLogMaxSize   = "logMaxSizeMB"
	sLogMaxAge    = "logMaxAgeDays"
	sLogBackups   = "logBackups"
	sLogStderr    = "logStderr"
	sDisplay      = "display"
	sDebug        = "debugDump"
	sGear         = "gear"
	sText         = "text"
	sScroll       = "scroll"
	sScale        = "scale"
	sInvert       = "invert"
	sTickTime     = "tickTime"
	sHTTPEnabled  = "httpEnabled"
	sHTTPAddr     = "httpAddr"
	sEnvFile      = "envFile"
	sDisplayLog   = "log"
	sDisplayTerm  = "term"
	defConfigFile = "/etc/default/geardisplay/geardisplay.conf"
	envPrefix     = "GEARDISPLAY_"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sLogFile] = "/var/log/geardisplay.log"
	s[sLogMaxSize] = 10
	s[sLogMaxAge] = 28
	s[sLogBackups] = 3
	s[sLogStderr] = false
	s[sDisplay] = sDisplayLog
	s[sDebug] = false
	s[sGear] = "P"
	s[sText] = ""
	s[sScroll] = "off"
	s[sScale] = 8
	s[sInvert] = false
	s[sTickTime], _ = time.ParseDuration("100ms")
	s[sHTTPEnabled] = true
	s[sHTTPAddr] = ":8080"
	s[sEnvFile] = ""

	return configSettings{settings: s}
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err != nil {
			continue
		}

		var err error
		switch initVal.(type) {
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// allow "0x10" style strings too
				str, err2 := jsonparser.GetString(data, k)
				if err2 == nil {
					val, err = strconv.ParseInt(str, 0, 64)
				}
			}
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var d time.Duration
				d, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = d
				}
			}
		case string:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err == nil {
				s.settings[k] = str
			}
		default:
			err = fmt.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

func loadSettings(configFile string) (configSettings, error) {
	s := defaultSettings()
	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return s, errors.Wrapf(err, "could not load conf file '%s'", configFile)
	}
	if err := s.settingsFromJSON(data); err != nil {
		return s, errors.Wrapf(err, "bad conf file '%s'", configFile)
	}
	if err := s.settingsFromEnvFile(s.GetString(sEnvFile)); err != nil {
		return s, err
	}
	return s, nil
}

// settingsFromEnvFile overrides settings with GEARDISPLAY_<KEY> entries from
// a dotenv file, a missing file is fine
func (s *configSettings) settingsFromEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("No env file at '%s'", path)
		return nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "could not read env file '%s'", path)
	}
	return s.settingsFromEnv(env)
}

func (s *configSettings) settingsFromEnv(env map[string]string) error {
	for k, initVal := range defaultSettings().settings {
		str, ok := env[envPrefix+strings.ToUpper(k)]
		if !ok {
			continue
		}

		var err error
		switch initVal.(type) {
		case int:
			var val int64
			if val, err = strconv.ParseInt(str, 0, 64); err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			if bVal, err = strconv.ParseBool(str); err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var d time.Duration
			if d, err = time.ParseDuration(str); err == nil {
				s.settings[k] = d
			}
		case string:
			s.settings[k] = str
		}
		if err != nil {
			return errors.Wrapf(err, "env setting %s", k)
		}
	}
	return nil
}

func initSettings(configFile string) configSettings {
	s, err := loadSettings(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read configuration from '%s'", configFile)
	return s
}

func (s *configSettings) Set(key string, val interface{}) {
	s.settings[key] = val
}

func (s *configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s *configSettings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.settings[k]
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
