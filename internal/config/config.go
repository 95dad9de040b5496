package config

import (
	"os"
	"strconv"

	"property-info-api/internal/database"
)

// Config property-info-api (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	// MaterialsDB holds the apartment material choice tables.
	MaterialsDB database.Config
	// XpandDB is the legacy property management system's SQL view surface.
	XpandDB database.Config
	Redis   struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	XpandSoap      XpandSoapConfig
	ParkingService ParkingServiceConfig
}

// XpandSoapConfig configures the legacy published rental objects SOAP service.
type XpandSoapConfig struct {
	URL         string
	Username    string
	Password    string
	CompanyCode string
}

// ParkingServiceConfig configures the external parking space lookup API.
type ParkingServiceConfig struct {
	URL string
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.MaterialsDB.Host = getEnv("MATERIALS_DB_HOST", "localhost")
	cfg.MaterialsDB.Port = parseInt(getEnv("MATERIALS_DB_PORT", "5432"), 5432)
	cfg.MaterialsDB.User = getEnv("MATERIALS_DB_USER", "postgres")
	cfg.MaterialsDB.Password = getEnv("MATERIALS_DB_PASSWORD", "postgres")
	cfg.MaterialsDB.Database = getEnv("MATERIALS_DB_NAME", "materials")
	cfg.MaterialsDB.SSLMode = getEnv("MATERIALS_DB_SSLMODE", "disable")

	cfg.XpandDB.Host = getEnv("XPAND_DB_HOST", "localhost")
	cfg.XpandDB.Port = parseInt(getEnv("XPAND_DB_PORT", "5432"), 5432)
	cfg.XpandDB.User = getEnv("XPAND_DB_USER", "postgres")
	cfg.XpandDB.Password = getEnv("XPAND_DB_PASSWORD", "postgres")
	cfg.XpandDB.Database = getEnv("XPAND_DB_NAME", "xpand")
	cfg.XpandDB.SSLMode = getEnv("XPAND_DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.XpandSoap.URL = getEnv("XPAND_SOAP_URL", "")
	cfg.XpandSoap.Username = getEnv("XPAND_SOAP_USERNAME", "")
	cfg.XpandSoap.Password = getEnv("XPAND_SOAP_PASSWORD", "")
	cfg.XpandSoap.CompanyCode = getEnv("XPAND_SOAP_COMPANY_CODE", "001")

	cfg.ParkingService.URL = getEnv("PARKING_SERVICE_URL", "")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
