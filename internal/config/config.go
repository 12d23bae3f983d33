package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"CurveBoard/internal/state"
)

// Profile describes one version of the drawing window.
type Profile struct {
	Name   string
	Width  int
	Height int
	FPS    int
	Grid   bool
	Upload bool
}

var profiles = map[string]Profile{
	"simple": {Name: "simple", Width: 800, Height: 600, FPS: 60},
	"grid":   {Name: "grid", Width: 810, Height: 610, FPS: 15, Grid: true},
	"upload": {Name: "upload", Width: 810, Height: 610, FPS: 15, Grid: true, Upload: true},
}

const DefaultProfile = "upload"

func Lookup(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type Config struct {
	Profile Profile
	Out     string
	PDF     string
}

// Parse reads command line flags. args excludes the program name.
func Parse(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("curveboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg     Config
		profile string
		fps     int
	)
	fs.StringVar(&profile, "profile", DefaultProfile, "Window profile: "+strings.Join(Names(), ", ")+".")
	fs.StringVar(&cfg.Out, "out", state.DefaultPath, "JSON file the curve is written to on exit.")
	fs.StringVar(&cfg.PDF, "pdf", "", "Also render the curve to this PDF on exit.")
	fs.IntVar(&fps, "fps", 0, "Frame rate override (0 = profile default).")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	p, err := Lookup(profile)
	if err != nil {
		return Config{}, err
	}
	if fps < 0 {
		return Config{}, fmt.Errorf("fps must not be negative, got %d", fps)
	}
	if fps > 0 {
		p.FPS = fps
	}
	cfg.Profile = p
	return cfg, nil
}
