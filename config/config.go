package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"chefhu-reservation"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Taipei"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"          default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"30"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Store struct {
		Path string `envconfig:"PATH" default:"local-db.json"`
	} `envconfig:"STORE"`

	Schedule struct {
		StartMonth  int    `envconfig:"START_MONTH"  default:"3"`
		StartYear   int    `envconfig:"START_YEAR"   default:"2026"`
		EndMonth    int    `envconfig:"END_MONTH"    default:"6"`
		EndYear     int    `envconfig:"END_YEAR"     default:"2026"`
		DefaultTime string `envconfig:"DEFAULT_TIME" default:"18:00"`
		// Saturdays inside the bounding months with no event scheduled, kept
		// out of the default schedule.
		ExcludedDates []string `envconfig:"EXCLUDED_DATES" default:"2026-03-07,2026-03-28,2026-04-04,2026-05-23,2026-05-30,2026-06-06"`
	} `envconfig:"SCHEDULE"`

	Booking struct {
		MinGuests     int `envconfig:"MIN_GUESTS"      default:"4"`
		MaxGuests     int `envconfig:"MAX_GUESTS"      default:"4"`
		PricePerGuest int `envconfig:"PRICE_PER_GUEST" default:"380"`
	} `envconfig:"BOOKING"`

	Admin struct {
		Password     string `envconfig:"PASSWORD"`
		PasswordHash string `envconfig:"PASSWORD_HASH"`
	} `envconfig:"ADMIN"`

	Mail struct {
		SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
		SMTPPort string `envconfig:"SMTP_PORT" default:"587"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		To       string `envconfig:"TO"`
	} `envconfig:"MAIL"`

	Line struct {
		AccessToken string `envconfig:"ACCESS_TOKEN"`
	} `envconfig:"LINE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
