package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ProcessProfile describes how the external match process is launched
type ProcessProfile struct {
	Executable string            `yaml:"executable"`
	Script     string            `yaml:"script"`
	WorkDir    string            `yaml:"work_dir"`
	Game       string            `yaml:"game"`
	State      string            `yaml:"state"`
	P1Model    string            `yaml:"p1_model"`
	P2Model    string            `yaml:"p2_model"`
	NumRounds  int               `yaml:"num_rounds"`
	ExtraArgs  []string          `yaml:"extra_args"`
	Env        map[string]string `yaml:"env"`
}

// DefaultProcessProfile returns the stock Mortal Kombat II matchup
func DefaultProcessProfile() *ProcessProfile {
	return &ProcessProfile{
		Executable: "python",
		Script:     "/app/custom_scripts/run_fight_and_stream.py",
		Game:       "MortalKombatII-Genesis",
		State:      "Level1.LiuKangVsJax.2P.state",
		P1Model:    "/app/models/LiuKang.pt",
		P2Model:    "/app/models/LiuKang.pt",
		NumRounds:  3,
	}
}

// LoadProcessProfile reads a YAML launch profile. A missing file yields the default profile.
// Fields left empty in the file keep their default values.
func LoadProcessProfile(path string) (*ProcessProfile, error) {
	profile := DefaultProcessProfile()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read process profile %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse process profile %q: %w", path, err)
	}

	if profile.Executable == "" {
		return nil, fmt.Errorf("process profile %q: executable must be set", path)
	}
	if profile.NumRounds <= 0 {
		return nil, fmt.Errorf("process profile %q: num_rounds must be positive", path)
	}

	return profile, nil
}

// Args builds the command line for one fight
func (p *ProcessProfile) Args(fightID, secureID string) []string {
	var args []string
	if p.Script != "" {
		args = append(args, p.Script)
	}
	args = append(args,
		"--env", p.Game,
		"--state", p.State,
		"--load_p1_model", p.P1Model,
		"--load_p2_model", p.P2Model,
		"--num_rounds", strconv.Itoa(p.NumRounds),
		"--fight_id", fightID,
		"--secure_id", secureID,
	)
	return append(args, p.ExtraArgs...)
}

// Environ returns KEY=VALUE pairs for the process, with HOST_URL set to hostURL
func (p *ProcessProfile) Environ(hostURL string) []string {
	env := make([]string, 0, len(p.Env)+1)
	for k, v := range p.Env {
		if k == "HOST_URL" {
			continue
		}
		env = append(env, k+"="+v)
	}
	return append(env, "HOST_URL="+hostURL)
}
