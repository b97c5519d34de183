package model

type Health struct {
	Status          string `json:"status"`
	CacheSize       int    `json:"cache_size"`
	CacheFileExists bool   `json:"cache_file_exists"`
}
