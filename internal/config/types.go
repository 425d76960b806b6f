package config

type Config struct {
	HubToken        string
	DailyLimit      int
	GalleryCapacity int
	Environment     string
}
