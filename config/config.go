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
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE" default:"Africa/Lagos"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable          bool     `envconfig:"ENABLE"`
			MaxRequests     int      `envconfig:"MAX_REQUESTS"`
			FormMaxRequests int      `envconfig:"FORM_MAX_REQUESTS" default:"5"`
			WindowSeconds   int      `envconfig:"WINDOW_SECONDS"`
			TrustedProxies  []string `envconfig:"TRUSTED_PROXIES"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`

		// Site holds public content defaults shown when the admin has not configured anything yet.
		Site struct {
			DefaultHeroImages []string `envconfig:"DEFAULT_HERO_IMAGES"`
			PhoneRegion       string   `envconfig:"PHONE_REGION"        default:"NG"`
			DefaultPaymentURL string   `envconfig:"DEFAULT_PAYMENT_URL" default:"https://paystack.com"`
		} `envconfig:"SITE"`

		Upload struct {
			MaxSizeMB     float64 `envconfig:"MAX_SIZE_MB"     default:"10"`
			MaxImageWidth int     `envconfig:"MAX_IMAGE_WIDTH" default:"1920"`
		} `envconfig:"UPLOAD"`

		Bootstrap struct {
			Email    string `envconfig:"EMAIL"`
			Password string `envconfig:"PASSWORD"`
			FullName string `envconfig:"FULL_NAME" default:"Site Owner"`
		} `envconfig:"BOOTSTRAP"`

		Scheduler struct {
			Enable            bool   `envconfig:"ENABLE"`
			KeepAliveSpec     string `envconfig:"KEEP_ALIVE_SPEC" default:"@every 72h"`
			WarmCacheSpec     string `envconfig:"WARM_CACHE_SPEC" default:"@every 15m"`
			JobTimeoutSeconds int    `envconfig:"JOB_TIMEOUT_SECONDS" default:"60"`
		} `envconfig:"SCHEDULER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Pool           struct {
				MaxOpen            int `envconfig:"MAX_OPEN"             default:"10"`
				MaxIdle            int `envconfig:"MAX_IDLE"             default:"5"`
				MaxLifetimeMinutes int `envconfig:"MAX_LIFETIME_MINUTES" default:"30"`
			} `envconfig:"POOL"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`

		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			Region          string `envconfig:"REGION"            default:"auto"`
			CacheControl    string `envconfig:"CACHE_CONTROL"     default:"public, max-age=31536000, immutable"`
		} `envconfig:"S3"`

		Kafka struct {
			Enable        bool     `envconfig:"ENABLE"`
			Brokers       []string `envconfig:"BROKERS"`
			ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
			SASL          struct {
				Username string `envconfig:"USERNAME"`
				Password string `envconfig:"PASSWORD"`
			} `envconfig:"SASL"`
			Topics struct {
				InquiryCreated       string `envconfig:"INQUIRY_CREATED"       default:"haven.inquiry.created"`
				NewsletterSubscribed string `envconfig:"NEWSLETTER_SUBSCRIBED" default:"haven.newsletter.subscribed"`
			} `envconfig:"TOPICS"`
		} `envconfig:"KAFKA"`
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
		return fmt.Errorf("loading .env file: %w", err)
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
