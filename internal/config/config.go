package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	CORSOrigins     []string
	Reminder        ReminderConfig
	ShutdownTimeout time.Duration
}

// ReminderConfig drives the daily scan. Location is the zone every day boundary is computed in.
type ReminderConfig struct {
	Cron        string
	Location    *time.Location
	ScanTimeout time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "finance_db")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("cors_origins", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("reminder_cron", "0 8 * * *")
	v.SetDefault("reminder_timezone", "UTC")
	v.SetDefault("reminder_scan_timeout", "5m")
	v.SetDefault("shutdown_timeout", "30s")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"database_url", "db_password"} {
		_ = v.BindEnv(key)
	}
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	spec := v.GetString("reminder_cron")
	if _, err := cron.ParseStandard(spec); err != nil {
		return Config{}, fmt.Errorf("REMINDER_CRON %q: %w", spec, err)
	}
	zone := v.GetString("reminder_timezone")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Config{}, fmt.Errorf("REMINDER_TIMEZONE %q: %w", zone, err)
	}

	dbURL := v.GetString("database_url")
	if dbURL == "" {
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(v.GetString("db_user"), v.GetString("db_password")),
			Host:   fmt.Sprintf("%s:%d", v.GetString("db_host"), v.GetInt("db_port")),
			Path:   "/" + v.GetString("db_name"),
		}
		dbURL = u.String()
	}

	var origins []string
	for _, origin := range strings.Split(v.GetString("cors_origins"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		DatabaseURL: dbURL,
		HTTPAddr:    v.GetString("http_addr"),
		CORSOrigins: origins,
		Reminder: ReminderConfig{
			Cron:        spec,
			Location:    loc,
			ScanTimeout: v.GetDuration("reminder_scan_timeout"),
		},
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}, nil
}
