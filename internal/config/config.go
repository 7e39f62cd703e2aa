package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// AI provider
	AIProvider    string
	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() Config {
	// .env is optional; real deployments use process env.
	_ = godotenv.Load()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	// DSN demo (mysql):
	// app:apppass@tcp(127.0.0.1:3306)/savorspice?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "savorspice.db"
	}

	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "gemini"
	}

	geminiBaseURL := os.Getenv("GEMINI_BASE_URL")
	if geminiBaseURL == "" {
		geminiBaseURL = "https://generativelanguage.googleapis.com"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.5-flash"
	}

	ollamaBaseURL := os.Getenv("OLLAMA_BASE_URL")
	if ollamaBaseURL == "" {
		ollamaBaseURL = "http://localhost:11434"
	}

	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3:latest"
	}

	return Config{
		HTTPAddr: addr,

		DBDriver: driver,
		DBDSN:    dsn,

		AIProvider:    aiProvider,
		GeminiBaseURL: geminiBaseURL,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   geminiModel,
		OllamaBaseURL: ollamaBaseURL,
		OllamaModel:   ollamaModel,
	}
}
