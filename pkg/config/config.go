package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	Tokens     TokensConfig
	HTTP       HTTPConfig
	Cookie     CookieConfig
	Redis      RedisConfig
	Mail       MailConfig
	RateLimit  RateLimitConfig
	Pagination PaginationConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	ServerURL string // URL pública usada en los enlaces de los correos
	LogLevel  string
}

// IsProduction indica si la app corre en producción (oculta IP y detalle de errores).
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// TokensConfig secretos y expiraciones de los cuatro tipos de token.
type TokensConfig struct {
	AccessSecret       string
	AccessExpiry       time.Duration
	RefreshSecret      string
	RefreshExpiry      time.Duration
	VerificationSecret string
	VerificationExpiry time.Duration
	ResetSecret        string
	ResetExpiry        time.Duration
	Issuer             string
	// RefreshRotation habilita la rotación access/refresh dentro del middleware de auth.
	RefreshRotation bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	BodyLimitKB    int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CookieConfig opciones de la cookie refreshToken.
type CookieConfig struct {
	Secure bool
}

// RedisConfig conexión a Redis (lista de revocación y rate limiting).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailConfig transporte SMTP. Host vacío = solo log.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// RateLimitConfig límite de peticiones por IP.
type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// PaginationConfig tope de pageSize aplicado en servidor.
type PaginationConfig struct {
	MaxPageSize int
}

// ErrMissingSecret se devuelve cuando falta algún secreto de firma; el proceso no debe arrancar.
var ErrMissingSecret = errors.New("config: secreto de token no definido")

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Devuelve error si falta cualquiera de los secretos de token.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")

	refreshExpiry, err := getDuration(v, "REFRESH_TOKEN_EXPIRY", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	accessExpiry, err := getDuration(v, "ACCESS_TOKEN_EXPIRY", 60*time.Minute)
	if err != nil {
		return nil, err
	}
	verificationExpiry, err := getDuration(v, "VERIFICATION_TOKEN_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	resetExpiry, err := getDuration(v, "RESET_TOKEN_EXPIRY", 48*time.Hour)
	if err != nil {
		return nil, err
	}
	rateWindow, err := getDuration(v, "RATE_LIMIT_WINDOW", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:       env,
			Name:      getString(v, "APP_NAME", "lms-api"),
			ServerURL: strings.TrimRight(getString(v, "SERVER_URL", "http://localhost:8080"), "/"),
			LogLevel:  getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "lms"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			MinConns:    getInt(v, "DB_MIN_CONNS", 2),
		},
		Tokens: TokensConfig{
			AccessSecret:       getString(v, "ACCESS_TOKEN_SECRET", ""),
			AccessExpiry:       accessExpiry,
			RefreshSecret:      getString(v, "REFRESH_TOKEN_SECRET", ""),
			RefreshExpiry:      refreshExpiry,
			VerificationSecret: getString(v, "VERIFICATION_TOKEN_SECRET", ""),
			VerificationExpiry: verificationExpiry,
			ResetSecret:        getString(v, "RESET_TOKEN_SECRET", ""),
			ResetExpiry:        resetExpiry,
			Issuer:             getString(v, "TOKEN_ISSUER", "lms-api"),
			RefreshRotation:    getBool(v, "AUTH_REFRESH_ROTATION", true),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			AllowedOrigins: splitList(getString(v, "CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
			BodyLimitKB:    getInt(v, "HTTP_BODY_LIMIT_KB", 25),
		},
		Cookie: CookieConfig{
			Secure: getBool(v, "COOKIE_SECURE", env == "production"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Mail: MailConfig{
			Host:     getString(v, "MAIL_HOST", ""),
			Port:     getInt(v, "MAIL_PORT", 465),
			User:     getString(v, "MAIL_USER", ""),
			Password: getString(v, "MAIL_PASSWORD", ""),
			From:     getString(v, "MAIL_FROM", "noreply@lms.local"),
			FromName: getString(v, "MAIL_FROM_NAME", "LMS"),
		},
		RateLimit: RateLimitConfig{
			Max:    getInt(v, "RATE_LIMIT_MAX", 100),
			Window: rateWindow,
		},
		Pagination: PaginationConfig{
			MaxPageSize: getInt(v, "PAGINATION_MAX_PAGE_SIZE", 100),
		},
	}

	if err := cfg.Tokens.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c TokensConfig) validate() error {
	missing := make([]string, 0, 4)
	if c.AccessSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if c.RefreshSecret == "" {
		missing = append(missing, "REFRESH_TOKEN_SECRET")
	}
	if c.VerificationSecret == "" {
		missing = append(missing, "VERIFICATION_TOKEN_SECRET")
	}
	if c.ResetSecret == "" {
		missing = append(missing, "RESET_TOKEN_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// getDuration acepta duraciones Go ("60m", "720h") y el sufijo "d" para días ("30d").
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// ParseDuration extiende time.ParseDuration con el sufijo de días ("30d").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("duración inválida %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
