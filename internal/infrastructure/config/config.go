package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"taskboard/pkg/filesystem"
)

const (
	defaultConfigFileName  = "config.yml"
	defaultConfigDirName   = ".config/taskboard"
	defaultDataDirName     = ".local/share/taskboard"
	defaultSessionFileName = "session.yml"
	defaultLogFileName     = "taskboard.log"
	defaultBaseURL         = "http://localhost:5000"

	// EnvConfigPath overrides the config file location
	EnvConfigPath = "TASKBOARD_CONFIG"
	// EnvAPIURL overrides api.base_url
	EnvAPIURL = "TASKBOARD_API_URL"
)

// Config holds application configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	Session     SessionConfig     `yaml:"session"`
	Logging     LoggingConfig     `yaml:"logging"`
	TUI         TUIConfig         `yaml:"tui"`
	Keybindings KeybindingsConfig `yaml:"keybindings"`
}

// APIConfig holds the backend connection settings
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"` // 0 waits for the server indefinitely
}

// SessionConfig holds where the local session is stored
type SessionConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// TUIConfig holds TUI styling configuration
type TUIConfig struct {
	Styles StylesConfig `yaml:"styles"`
}

// StylesConfig holds color and styling configuration
type StylesConfig struct {
	Sidebar         ColumnStyle    `yaml:"sidebar"`
	Column          ColumnStyle    `yaml:"column"`
	FocusedColumn   ColumnStyle    `yaml:"focused_column"`
	ColumnTitle     TextStyle      `yaml:"column_title"`
	Header          TextStyle      `yaml:"header"`
	Task            TextStyle      `yaml:"task"`
	SelectedTask    TextStyle      `yaml:"selected_task"`
	ActiveBoard     TextStyle      `yaml:"active_board"`
	Help            TextStyle      `yaml:"help"`
	Error           TextStyle      `yaml:"error"`
	Loading         TextStyle      `yaml:"loading"`
	Description     TextStyle      `yaml:"description"`
	Meta            TextStyle      `yaml:"meta"`
	Overdue         TextStyle      `yaml:"overdue"`
	Overlay         ColumnStyle    `yaml:"overlay"`
	Priority        PriorityColors `yaml:"priority"`
	ScrollIndicator TextStyle      `yaml:"scroll_indicator"`
}

// ColumnStyle represents bordered box styling
type ColumnStyle struct {
	PaddingVertical   int    `yaml:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal"`
	BorderStyle       string `yaml:"border_style"`
	BorderColor       string `yaml:"border_color"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground        string `yaml:"foreground,omitempty"`
	Background        string `yaml:"background,omitempty"`
	Bold              bool   `yaml:"bold,omitempty"`
	Italic            bool   `yaml:"italic,omitempty"`
	PaddingVertical   int    `yaml:"padding_vertical,omitempty"`
	PaddingHorizontal int    `yaml:"padding_horizontal,omitempty"`
	Align             string `yaml:"align,omitempty"`
}

// PriorityColors holds colors for different priority levels
type PriorityColors struct {
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`
}

// KeybindingsConfig holds keybinding configuration
type KeybindingsConfig struct {
	Up          []string `yaml:"up"`
	Down        []string `yaml:"down"`
	Left        []string `yaml:"left"`
	Right       []string `yaml:"right"`
	SwitchPane  []string `yaml:"switch_pane"`
	Select      []string `yaml:"select"`
	AddTask     []string `yaml:"add_task"`
	EditTask    []string `yaml:"edit_task"`
	DeleteTask  []string `yaml:"delete_task"`
	AdvanceTask []string `yaml:"advance_task"`
	NewBoard    []string `yaml:"new_board"`
	RenameBoard []string `yaml:"rename_board"`
	DeleteBoard []string `yaml:"delete_board"`
	Refresh     []string `yaml:"refresh"`
	Auth        []string `yaml:"auth"`
	Quit        []string `yaml:"quit"`
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
	homeDir    string
}

// NewLoader creates a config loader for the default location, or TASKBOARD_CONFIG if set
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		configPath = filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName)
	}

	return &Loader{
		configPath: configPath,
		homeDir:    homeDir,
	}, nil
}

// NewLoaderAt creates a loader for an explicit config path
func NewLoaderAt(configPath, homeDir string) *Loader {
	return &Loader{configPath: configPath, homeDir: homeDir}
}

// Load loads the configuration, creating defaults if it doesn't exist
func (l *Loader) Load() (*Config, error) {
	var config *Config

	exists, err := filesystem.Exists(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if !exists {
		config, err = l.createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		config = &Config{}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		config.applyDefaults(l.Defaults())
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		config.API.BaseURL = url
	}

	return config, nil
}

// Save persists the configuration to disk
func (l *Loader) Save(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := filesystem.SafeWrite(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset overwrites the config file with defaults
func (l *Loader) Reset() (*Config, error) {
	return l.createDefaultConfig()
}

// createDefaultConfig creates and saves a default configuration
func (l *Loader) createDefaultConfig() (*Config, error) {
	config := l.Defaults()
	if err := l.Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// Defaults returns the default configuration for this loader's home directory
func (l *Loader) Defaults() *Config {
	dataDir := filepath.Join(l.homeDir, defaultDataDirName)

	return &Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
		},
		Session: SessionConfig{
			Path:  filepath.Join(dataDir, defaultSessionFileName),
			Watch: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dataDir, defaultLogFileName),
		},
		TUI: TUIConfig{
			Styles: StylesConfig{
				Sidebar: ColumnStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 1,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				Column: ColumnStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				FocusedColumn: ColumnStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "62",
				},
				ColumnTitle: TextStyle{
					Foreground: "99",
					Bold:       true,
					Align:      "center",
				},
				Header: TextStyle{
					Foreground:        "230",
					Bold:              true,
					PaddingHorizontal: 1,
				},
				Task: TextStyle{
					Foreground:        "252",
					PaddingHorizontal: 1,
				},
				SelectedTask: TextStyle{
					Foreground:        "230",
					Background:        "62",
					Bold:              true,
					PaddingHorizontal: 1,
				},
				ActiveBoard: TextStyle{
					Foreground: "#A8DADC",
					Bold:       true,
				},
				Help: TextStyle{
					Foreground:        "241",
					PaddingVertical:   1,
					PaddingHorizontal: 2,
				},
				Error: TextStyle{
					Foreground: "#FF6B6B",
					Bold:       true,
				},
				Loading: TextStyle{
					Foreground: "#FFE66D",
					Italic:     true,
				},
				Description: TextStyle{
					Foreground: "#888888",
					Italic:     true,
				},
				Meta: TextStyle{
					Foreground: "#999999",
				},
				Overdue: TextStyle{
					Foreground: "#FF6B6B",
					Bold:       true,
				},
				Overlay: ColumnStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "double",
					BorderColor:       "62",
				},
				Priority: PriorityColors{
					High:   "#FF6B6B",
					Medium: "#FFE66D",
					Low:    "#95E1D3",
				},
				ScrollIndicator: TextStyle{
					Foreground: "#999999",
					Italic:     true,
				},
			},
		},
		Keybindings: KeybindingsConfig{
			Up:          []string{"up", "k"},
			Down:        []string{"down", "j"},
			Left:        []string{"left", "h"},
			Right:       []string{"right", "l"},
			SwitchPane:  []string{"tab"},
			Select:      []string{"enter"},
			AddTask:     []string{"a"},
			EditTask:    []string{"e"},
			DeleteTask:  []string{"x"},
			AdvanceTask: []string{"m"},
			NewBoard:    []string{"n"},
			RenameBoard: []string{"r"},
			DeleteBoard: []string{"D"},
			Refresh:     []string{"ctrl+r"},
			Auth:        []string{"L"},
			Quit:        []string{"q", "ctrl+c"},
		},
	}
}

// applyDefaults fills values a hand-edited config file left empty
func (c *Config) applyDefaults(d *Config) {
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	if c.Session.Path == "" {
		c.Session = d.Session
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.TUI.Styles.Column.BorderStyle == "" {
		c.TUI = d.TUI
	}

	kb, dk := &c.Keybindings, d.Keybindings
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&kb.Up, dk.Up)
	fill(&kb.Down, dk.Down)
	fill(&kb.Left, dk.Left)
	fill(&kb.Right, dk.Right)
	fill(&kb.SwitchPane, dk.SwitchPane)
	fill(&kb.Select, dk.Select)
	fill(&kb.AddTask, dk.AddTask)
	fill(&kb.EditTask, dk.EditTask)
	fill(&kb.DeleteTask, dk.DeleteTask)
	fill(&kb.AdvanceTask, dk.AdvanceTask)
	fill(&kb.NewBoard, dk.NewBoard)
	fill(&kb.RenameBoard, dk.RenameBoard)
	fill(&kb.DeleteBoard, dk.DeleteBoard)
	fill(&kb.Refresh, dk.Refresh)
	fill(&kb.Auth, dk.Auth)
	fill(&kb.Quit, dk.Quit)
}
