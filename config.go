package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	CellPx        float64
	WorldCols     int
	WorldRows     int
	BaseURL       string
	SaveDirectory string
	Confirmations bool
}

func loadConfig() *Config {
	config := &Config{
		CellPx:        defaultCellPx,
		WorldCols:     defaultWorldCols,
		WorldRows:     defaultWorldRows,
		BaseURL:       "https://gridplan.example/",
		Confirmations: true,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".gridplanrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "cellpx", "cell_px", "cellsize":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
				config.CellPx = v
			}
		case "worldcols", "world_cols":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				config.WorldCols = v
			}
		case "worldrows", "world_rows":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				config.WorldRows = v
			}
		case "baseurl", "base_url":
			config.BaseURL = value
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
