package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestSettingsFromConfigFile(t *testing.T) {
	assert.Equal(t, testSettings.GetString(sDisplay), sDisplayLog)
	assert.Equal(t, testSettings.GetString(sGear), "N")
	assert.Equal(t, testSettings.GetInt(sScale), 4)
	assert.Equal(t, testSettings.GetDuration(sTickTime), 100*time.Millisecond)
	assert.Equal(t, testSettings.GetBool(sHTTPEnabled), false)
	// string booleans are accepted
	assert.Equal(t, testSettings.GetBool(sDebug), false)
	// untouched keys keep their defaults
	assert.Equal(t, testSettings.GetInt(sLogMaxAge), 28)
}

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{"scale": "0x6", "invert": "TRUE", "tickTime": "1s", "text": "HI", "unknown": 5}`))
	assert.NilError(t, err)
	assert.Equal(t, s.GetInt(sScale), 6)
	assert.Equal(t, s.GetBool(sInvert), true)
	assert.Equal(t, s.GetDuration(sTickTime), time.Second)
	assert.Equal(t, s.GetString(sText), "HI")
	_, ok := s.settings["unknown"]
	assert.Assert(t, !ok)
}

func TestSettingsBadValues(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{"tickTime": "soon"}`))
	assert.ErrorContains(t, err, "setting tickTime")

	s = defaultSettings()
	err = s.settingsFromJSON([]byte(`{"invert": "perhaps"}`))
	assert.ErrorContains(t, err, "setting invert")

	_, err = loadSettings("./test/does-not-exist.conf")
	assert.ErrorContains(t, err, "could not load conf file")
}

func TestSettingsFromEnvFile(t *testing.T) {
	f, err := ioutil.TempFile("", "geardisplay-env")
	assert.NilError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString("GEARDISPLAY_GEAR=R\nGEARDISPLAY_SCALE=0x3\nGEARDISPLAY_INVERT=true\nOTHER=1\n")
	assert.NilError(t, err)
	f.Close()

	s := defaultSettings()
	assert.NilError(t, s.settingsFromEnvFile(f.Name()))
	assert.Equal(t, s.GetString(sGear), "R")
	assert.Equal(t, s.GetInt(sScale), 3)
	assert.Equal(t, s.GetBool(sInvert), true)
	assert.Equal(t, s.GetDuration(sTickTime), 100*time.Millisecond)

	// no file, nothing changes
	s = defaultSettings()
	assert.NilError(t, s.settingsFromEnvFile("./test/does-not-exist.env"))
	assert.NilError(t, s.settingsFromEnvFile(""))
	assert.Equal(t, s.GetString(sGear), "P")
}

func TestSettingsFromEnvBadValue(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromEnv(map[string]string{"GEARDISPLAY_TICKTIME": "later"})
	assert.ErrorContains(t, err, "env setting tickTime")
}

func TestSettingsGetters(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, s.GetString(sScale), "")
	assert.Equal(t, s.GetInt(sGear), 0)
	assert.Equal(t, s.GetBool(sGear), false)
	assert.Equal(t, s.GetDuration(sGear), time.Duration(-1))

	s.Set(sGear, "R")
	assert.Equal(t, s.GetString(sGear), "R")
}

func TestNewDisplay(t *testing.T) {
	s := defaultSettings()
	d, err := newDisplay(s)
	assert.NilError(t, err)
	_, ok := d.(*logDisplay)
	assert.Assert(t, ok)

	s.Set(sDisplay, sDisplayTerm)
	d, err = newDisplay(s)
	assert.NilError(t, err)
	_, ok = d.(*termDisplay)
	assert.Assert(t, ok)

	s.Set(sDisplay, "oled")
	_, err = newDisplay(s)
	assert.ErrorContains(t, err, "bad display type")
}
