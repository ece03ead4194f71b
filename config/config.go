package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string         `yaml:"env" env-default:"local"`
	StoragePath    string         `yaml:"storage_path" env-required:"true"`
	ManifestPath   string         `yaml:"manifest_path" env-required:"true"`
	NoiseWordsPath string         `yaml:"noise_words_path" env-required:"true"`
	DocsDir        string         `yaml:"docs_dir" env-default:"."`
	Search         SearchConfig   `yaml:"search"`
	Indexing       IndexingConfig `yaml:"indexing"`
}

type SearchConfig struct {
	TopK int `yaml:"top_k" env-default:"5"`
}

type IndexingConfig struct {
	Workers int `yaml:"workers" env-default:"1"`
}

func MustLoad() *Config {
	configPathFlag := flag.String("config", "", "Path to the config file")
	manifestPathFlag := flag.String("manifest", "", "Path to the document manifest")
	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = fetchConfigPath() // fallback to default method
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("error loading config file: " + err.Error())
	}

	if *manifestPathFlag != "" {
		cfg.ManifestPath = *manifestPathFlag
	}

	validateConfig(&cfg)

	return &cfg
}

// fetchConfigPath fetches config path from environment variable or default if it was not set in command line flag.
// Priority: flag > env > default.
func fetchConfigPath() string {
	res := os.Getenv("CONFIG_PATH")
	if res == "" {
		res = "./config/config_local.yaml" // default path
	}

	fmt.Println("Config path:", res)
	return res
}

func validateConfig(cfg *Config) {
	if cfg.Search.TopK < 1 {
		panic(fmt.Sprintf("search result limit must be positive: %d", cfg.Search.TopK))
	}
	if cfg.Indexing.Workers < 1 {
		panic(fmt.Sprintf("indexing workers must be positive: %d", cfg.Indexing.Workers))
	}
}
