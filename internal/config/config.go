package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/trinity-tools/trinity-mail/internal/util"
)

// Config holds the SMTP relay settings and credentials. The JSON key names
// are the on-disk contract of email_config.json and must not change.
type Config struct {
	Server    string `json:"smtp_server"`
	Port      int    `json:"smtp_port"`
	Sender    string `json:"sender_email"`
	Password  string `json:"sender_password"`
	Recipient string `json:"default_recipient"`
}

const ConfigFileName = "email_config.json"
const ConfigFolderName = "trinity-mail"
const XdgConfigHome = "XDG_CONFIG_HOME"

// DefaultPort is the standard mail submission port.
const DefaultPort = 587

// fileMode keeps the stored password readable by the owner only.
const fileMode = os.FileMode(0o600)

// Default returns the placeholder Gmail configuration written on first run.
// Every value except server and port must be edited before sending works.
func Default() Config {
	return Config{
		Server:    "smtp.gmail.com",
		Port:      DefaultPort,
		Sender:    "your_email@gmail.com",
		Password:  "your_app_password_here",
		Recipient: "your_email@gmail.com",
	}
}

func DefaultConfigPath() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("couldn't get current user: %w", err)
	}
	xdgConfigHome := os.Getenv(XdgConfigHome)
	var configFolder string
	if len(xdgConfigHome) == 0 {
		configFolder = path.Join(user.HomeDir, ".config")
		configFolder = path.Join(configFolder, ConfigFolderName)
	} else {
		configFolder = path.Join(xdgConfigHome, ConfigFolderName)
	}
	if err := os.MkdirAll(configFolder, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return path.Join(configFolder, ConfigFileName), nil
}

func exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func read(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("error parsing config %s: %w", filename, err)
	}
	return c, nil
}

// EnsureDefault writes the placeholder configuration if filename does not
// exist yet and reports whether it did. An existing file is returned as-is,
// never rewritten.
func EnsureDefault(filename string) (Config, bool, error) {
	if exists(filename) {
		c, err := read(filename)
		return c, false, err
	}
	c := Default()
	if err := Save(c, filename); err != nil {
		return Config{}, false, err
	}
	return c, true, nil
}

// Load reads the configuration for the send path, creating the placeholder
// file first when none exists.
func Load(filename string) (Config, error) {
	c, created, err := EnsureDefault(filename)
	if err != nil {
		return Config{}, err
	}
	if created {
		util.Cyan.Printf("Created default config file: %s\n", filename)
		util.Cyan.Println("Please edit it with your email settings!")
	}
	return c, nil
}

// LoadProvider loads the configuration and wraps it for injection.
func LoadProvider(filename string) (ConfigProvider, error) {
	c, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return NewConfigProvider(&c), nil
}

// Save writes the configuration and restricts the file to the owner.
// os.WriteFile keeps the old mode when the file already exists, so the
// permission is applied explicitly after every write.
func Save(c Config, filename string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, fileMode); err != nil {
		return fmt.Errorf("error writing config to %s: %w", filename, err)
	}
	return os.Chmod(filename, fileMode)
}

// Field is one displayable configuration entry, keyed by its on-disk name.
type Field struct {
	Key   string
	Value string
}

// Redacted returns the configuration as ordered key/value pairs with every
// password field replaced by a mask of the same length.
func (c Config) Redacted() []Field {
	fields := []Field{
		{"smtp_server", c.Server},
		{"smtp_port", strconv.Itoa(c.Port)},
		{"sender_email", c.Sender},
		{"sender_password", c.Password},
		{"default_recipient", c.Recipient},
	}
	for i, f := range fields {
		if strings.Contains(strings.ToLower(f.Key), "password") {
			fields[i].Value = MaskSecret(f.Value)
		}
	}
	return fields
}

// MaskSecret renders a secret as one mask character per character of the
// secret, so the length is visible but the value never is.
func MaskSecret(secret string) string {
	return strings.Repeat("*", utf8.RuneCountInString(secret))
}
