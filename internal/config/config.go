package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	Engine Engine `yaml:"engine"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// Engine holds the analytics tunables. Defaults match the values the
// estimating team signed off on; override per deployment in local.yaml.
type Engine struct {
	LaborRatePerHour      float64 `yaml:"labor_rate_per_hour" env-default:"65"`
	MinBaselineDataPoints int     `yaml:"min_baseline_data_points" env-default:"5"`
	AtRiskIndex           float64 `yaml:"at_risk_index" env-default:"0.85"`
	CriticalVariancePct   float64 `yaml:"critical_variance_pct" env-default:"15"`
	CautionVariancePct    float64 `yaml:"caution_variance_pct" env-default:"5"`
}

func MustConfig() *Config {
	var cfg Config
	path := "./config/local.yaml"

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
