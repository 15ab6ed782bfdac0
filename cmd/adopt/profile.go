package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/workflow"
)

const (
	profileFileName = ".adopt.yaml"
	profileEnv      = "ADOPT_PROFILE"
	defaultAPIURL   = "http://localhost:8080"
	defaultTimeout  = 10 * time.Second
)

// Profile es el archivo ~/.adopt.yaml. Los flags lo pisan campo a campo.
type Profile struct {
	APIURL   string `yaml:"api_url,omitempty"`
	UserID   string `yaml:"user_id,omitempty"`
	Role     string `yaml:"role,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Token    string `yaml:"token,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
	Format   string `yaml:"format,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func defaultProfilePath() string {
	if p := strings.TrimSpace(os.Getenv(profileEnv)); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return profileFileName
	}
	return filepath.Join(home, profileFileName)
}

// loadProfile lee el perfil. Si el archivo no existe devuelve un perfil vacío.
func loadProfile(path string) (Profile, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultProfilePath()
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// merge aplica los valores no vacíos de o sobre p.
func (p Profile) merge(o Profile) Profile {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&p.APIURL, o.APIURL)
	set(&p.UserID, o.UserID)
	set(&p.Role, o.Role)
	set(&p.Name, o.Name)
	set(&p.Email, o.Email)
	set(&p.Token, o.Token)
	set(&p.Timeout, o.Timeout)
	set(&p.Format, o.Format)
	set(&p.LogLevel, o.LogLevel)
	return p
}

func (p Profile) apiURL() string {
	if u := strings.TrimSpace(p.APIURL); u != "" {
		return u
	}
	return defaultAPIURL
}

func (p Profile) timeout() (time.Duration, error) {
	if strings.TrimSpace(p.Timeout) == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q", p.Timeout)
	}
	return d, nil
}

// actor arma la identidad. Con token el servidor resuelve el resto; sin token hace falta user_id.
func (p Profile) actor() (workflow.Actor, error) {
	a := workflow.Actor{
		ID:    strings.TrimSpace(p.UserID),
		Role:  auth.ParseRole(p.Role),
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
		Token: strings.TrimSpace(p.Token),
	}
	if a.Token == "" && a.ID == "" {
		return workflow.Actor{}, errors.New("no identity: set user_id (dev) or token in the profile or flags")
	}
	if a.ID == "" {
		// Con bearer el id real lo pone el servidor.
		a.ID = "me"
	}
	return a, nil
}

// saveProfile escribe el perfil (modo 0600, puede tener token).
func saveProfile(path string, p Profile) error {
	if strings.TrimSpace(path) == "" {
		path = defaultProfilePath()
	}
	raw, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
