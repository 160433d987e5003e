package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestLoadMissingFile(t *testing.T) {
	useTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error for a missing config, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, &AppConfig{}) {
		t.Errorf("expected an empty config, got %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := useTempHome(t)

	saved := &AppConfig{
		InputDir:         "exports",
		OutputFile:       "site/data.js",
		VarName:          "COURSES",
		Extensions:       []string{".html"},
		Workers:          4,
		DisableCache:     true,
		ExamCalendarFile: "finals.ics",
		AccentColor:      "#1E90FF",
	}
	if err := Save(saved); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".vahedctl.json")); err != nil {
		t.Errorf("expected config file in home: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".vahedctl.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Errorf("round trip mismatch.\nGot: %+v\nExpected: %+v", loaded, saved)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	home := useTempHome(t)

	if err := os.WriteFile(filepath.Join(home, ".vahedctl.json"), []byte("{ input_dir: "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	home := useTempHome(t)

	cases := map[string]AppConfig{
		"var name":  {VarName: "not-an-identifier"},
		"workers":   {Workers: -2},
		"extension": {Extensions: []string{"../html"}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := Save(&cfg); err == nil {
				t.Errorf("expected %+v to be rejected", cfg)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(home, ".vahedctl.json")); !os.IsNotExist(err) {
		t.Errorf("invalid config must not be written")
	}
}

func TestWithDefaults(t *testing.T) {
	got := AppConfig{}.WithDefaults()
	want := AppConfig{
		InputDir:         DefaultInputDir,
		OutputFile:       DefaultOutputFile,
		VarName:          DefaultVarName,
		Extensions:       []string{".html", ".htm"},
		Workers:          1,
		ExamCalendarFile: DefaultExamCalendar,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected defaults.\nGot: %+v\nExpected: %+v", got, want)
	}

	custom := AppConfig{InputDir: "in", Workers: 8, VarName: "X"}.WithDefaults()
	if custom.InputDir != "in" || custom.Workers != 8 || custom.VarName != "X" {
		t.Errorf("WithDefaults overwrote explicit values: %+v", custom)
	}

	// the package default must not be shared with callers
	got.Extensions[0] = ".xhtml"
	if DefaultExtensions[0] != ".html" {
		t.Errorf("WithDefaults aliased DefaultExtensions")
	}
}
