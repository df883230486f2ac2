package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env). No confundir con entity.SystemConfig, que es
// configuración de negocio persistida y editable en caliente.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig backend del blob store de colecciones.
// Driver: file (por defecto), redis, postgres o memory (tests/demos).
type StorageConfig struct {
	Driver      string
	Dir         string // driver file: directorio de los JSON por colección
	RedisAddr   string
	RedisDB     int
	DatabaseURL string // driver postgres: connection string completo
}

// AuthConfig opciones de autenticación.
type AuthConfig struct {
	Seed bool // cargar tabla de credenciales y datos demo al arrancar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "almacen-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "almacen-api"),
		},
		Storage: StorageConfig{
			Driver:      getString(v, "STORAGE_DRIVER", "file"),
			Dir:         getString(v, "STORAGE_DIR", "./data"),
			RedisAddr:   getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisDB:     getInt(v, "REDIS_DB", 0),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			Seed: getBool(v, "AUTH_SEED", true),
		},
	}

	return cfg, nil
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
