package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"prod"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warning"`
	Catalog  Catalog
	Download Download
}

type Catalog struct {
	// Location может быть http(s) ссылкой или локальным путем до xlsx файла.
	Location    string `env:"CATALOG_LOCATION" envDefault:"https://resource-cms.springernature.com/springer-cms/rest/v1/content/17858272/data/v5"`
	CacheDir    string `env:"CATALOG_CACHE_DIR"`
	TitleCol    string `env:"CATALOG_TITLE_COL" envDefault:"A"`
	PackageCol  string `env:"CATALOG_PACKAGE_COL" envDefault:"L"`
	SubjectsCol string `env:"CATALOG_SUBJECTS_COL" envDefault:"T"`
	URLCol      string `env:"CATALOG_URL_COL" envDefault:"R"`
	// URLTemplate строит ссылку на скачивание из идентификатора книги (колонка URLCol).
	// Плейсхолдер {id} заменяется на экранированный идентификатор книги.
	// Если пустая строка - значение колонки используется как есть.
	URLTemplate string `env:"CATALOG_URL_TEMPLATE" envDefault:"https://link.springer.com/content/pdf/{id}.pdf"`
}

type Download struct {
	Dir            string `env:"DOWNLOAD_DIR" envDefault:"."`
	TimeoutSeconds int    `env:"DOWNLOAD_TIMEOUT_SECONDS" envDefault:"300"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
