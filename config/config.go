package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/alejandrodnm/hedgecalc/internal/application/calculator"
	"github.com/alejandrodnm/hedgecalc/internal/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de la calculadora.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Window   WindowConfig   `yaml:"window"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// DefaultsConfig son los valores con los que arranca el formulario.
// Se guardan como string para respetar exactamente lo que se escribió.
type DefaultsConfig struct {
	PrimaryOdds        string `yaml:"primary_odds"`
	PrimaryStake       string `yaml:"primary_stake"`
	PrimaryRebatePct   string `yaml:"primary_rebate_pct"`
	SecondaryOdds      string `yaml:"secondary_odds"`
	SecondaryRebatePct string `yaml:"secondary_rebate_pct"`
}

// WindowConfig controla la tabla de sensibilidad.
type WindowConfig struct {
	Steps int    `yaml:"steps"` // pasos por dirección
	Step  string `yaml:"step"`  // tamaño del paso de cuota, p.ej. "0.01"
}

// DisplayConfig controla la presentación de resultados.
type DisplayConfig struct {
	Locale        string `yaml:"locale"`         // zh-CN | en-US | de-DE | fr-FR ...
	BannerSeconds int    `yaml:"banner_seconds"` // duración de los mensajes transitorios
	Table         bool   `yaml:"table"`          // tablas completas en vez de resumen compacto
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el YAML no existe se usan los valores por defecto.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if _, err := cfg.SensitivityWindow(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

// BannerTTL devuelve la duración de los mensajes como time.Duration.
func (c *Config) BannerTTL() time.Duration {
	return time.Duration(c.Display.BannerSeconds) * time.Second
}

// SensitivityWindow convierte la sección window a domain.Window.
func (c *Config) SensitivityWindow() (domain.Window, error) {
	step, err := decimal.NewFromString(c.Window.Step)
	if err != nil {
		return domain.Window{}, fmt.Errorf("window.step %q: %w", c.Window.Step, err)
	}
	w := domain.Window{Steps: c.Window.Steps, Step: step}
	if err := w.Validate(); err != nil {
		return domain.Window{}, err
	}
	return w, nil
}

// SessionConfig construye la configuración de la sesión interactiva.
func (c *Config) SessionConfig() (calculator.Config, error) {
	w, err := c.SensitivityWindow()
	if err != nil {
		return calculator.Config{}, err
	}
	return calculator.Config{
		Defaults: calculator.Fields{
			PrimaryOdds:        c.Defaults.PrimaryOdds,
			PrimaryStake:       c.Defaults.PrimaryStake,
			PrimaryRebatePct:   c.Defaults.PrimaryRebatePct,
			SecondaryOdds:      c.Defaults.SecondaryOdds,
			SecondaryRebatePct: c.Defaults.SecondaryRebatePct,
		},
		Window: w,
	}, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("HEDGE_LOCALE"); v != "" {
		cfg.Display.Locale = v
	}
	if v := os.Getenv("HEDGE_BANNER_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Display.BannerSeconds = n
		}
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Window.Steps <= 0 {
		cfg.Window.Steps = 5
	}
	if cfg.Window.Step == "" {
		cfg.Window.Step = "0.01"
	}
	if cfg.Display.Locale == "" {
		cfg.Display.Locale = "zh-CN"
	}
	if cfg.Display.BannerSeconds <= 0 {
		cfg.Display.BannerSeconds = 3
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
