package configs

import "os"

const (
	DefaultPort        = "3000"
	DefaultStoreDriver = "memory"
	DefaultDBName      = "student_hub"
)

// Config collects everything read from the environment. Load never
// fails; missing values fall back to defaults and Mongo settings are
// only required when the mongo driver is selected.
type Config struct {
	Port        string
	StoreDriver string // "memory" or "mongo"
	MongoURI    string
	DBName      string
	JWTSecret   string
	UploadDir   string
}

func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		StoreDriver: os.Getenv("STORE_DRIVER"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DefaultStoreDriver
	}
	if cfg.DBName == "" {
		cfg.DBName = DefaultDBName
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./static/uploads"
	}
	return cfg
}
