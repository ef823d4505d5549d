package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	JWTPublicKey string

	RedisAddr     string
	RedisPassword string

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioUseSSL     bool
	MinioPublicBase string
	Bucket          string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	TTSBaseURL string
	TTSAPIKey  string
	TTSVoiceID string
	TTSModelID string

	VideoWorkerAddr string

	FFmpegBin string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("BUCKET", "reels")
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("TTS_MODEL_ID", "eleven_multilingual_v2")
	viper.SetDefault("FFMPEG_BIN", "ffmpeg")

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		JWTPublicKey:    viper.GetString("JWT_PUBLIC_KEY"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		MinioPublicBase: viper.GetString("MINIO_PUBLIC_BASE_URL"),
		Bucket:          viper.GetString("BUCKET"),
		LLMBaseURL:      viper.GetString("LLM_BASE_URL"),
		LLMAPIKey:       viper.GetString("LLM_API_KEY"),
		LLMModel:        viper.GetString("LLM_MODEL"),
		TTSBaseURL:      viper.GetString("TTS_BASE_URL"),
		TTSAPIKey:       viper.GetString("TTS_API_KEY"),
		TTSVoiceID:      viper.GetString("TTS_VOICE_ID"),
		TTSModelID:      viper.GetString("TTS_MODEL_ID"),
		VideoWorkerAddr: viper.GetString("VIDEO_WORKER_ADDR"),
		FFmpegBin:       viper.GetString("FFMPEG_BIN"),
	}, nil
}
