package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AppConfig holds everything the server needs besides the database DSN
type AppConfig struct {
	ServerPort    string
	UploadsDir    string
	PublicBaseURL string
	LogLevel      logrus.Level
	GinMode       string
	BcryptCost    int

	ReportSchedule   string
	ReportRecipients []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// LoadAppConfig reads the application settings from the environment.
// Malformed values fall back to their defaults; the returned warnings say which.
func LoadAppConfig() (*AppConfig, []string) {
	var warnings []string

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		warnings = append(warnings, "invalid LOG_LEVEL, defaulting to info")
		level = logrus.InfoLevel
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		warnings = append(warnings, "invalid BCRYPT_COST, defaulting to "+strconv.Itoa(bcrypt.DefaultCost))
		cost = bcrypt.DefaultCost
	}

	cfg := &AppConfig{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		UploadsDir:       getEnv("UPLOADS_DIR", "uploads"),
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:         level,
		GinMode:          getEnv("GIN_MODE", "debug"),
		BcryptCost:       cost,
		ReportSchedule:   getEnv("REPORT_SCHEDULE", "@daily"),
		ReportRecipients: splitList(getEnv("REPORT_RECIPIENTS", "")),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", ""),
	}
	return cfg, warnings
}

// MailEnabled reports whether activity reports should go out by email
func (c *AppConfig) MailEnabled() bool {
	return c.SMTPHost != "" && len(c.ReportRecipients) > 0
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
