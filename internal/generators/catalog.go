package generators

import (
	"streaming-analytics/internal/models"
)

// titleCatalog is the fixed set of titles the generator draws from, ordered
// by popularity rank. Rank 0 is the most popular under the Zipf draw.
var titleCatalog = []string{
	"Stranger Things",
	"Wednesday",
	"The Crown",
	"Squid Game",
	"Breaking Bad",
	"Bridgerton",
	"The Witcher",
	"Money Heist",
	"Black Mirror",
	"Ozark",
	"Narcos",
	"Dark",
	"Peaky Blinders",
	"The Queen's Gambit",
	"Planet Earth",
	"Friends",
}

type weighted[T any] struct {
	value  T
	weight float64
}

var deviceWeights = []weighted[models.DeviceType]{
	{models.DeviceMobile, 0.35},
	{models.DeviceDesktop, 0.25},
	{models.DeviceSmartTV, 0.20},
	{models.DeviceTablet, 0.12},
	{models.DeviceConsole, 0.08},
}

// devicePlatforms constrains the platform draw to platforms that actually run
// on the drawn device.
var devicePlatforms = map[models.DeviceType][]models.Platform{
	models.DeviceMobile:  {models.PlatformIOS, models.PlatformAndroid},
	models.DeviceTablet:  {models.PlatformIOS, models.PlatformAndroid},
	models.DeviceDesktop: {models.PlatformWeb},
	models.DeviceConsole: {models.PlatformWeb},
	models.DeviceSmartTV: {models.PlatformRoku, models.PlatformFireTV, models.PlatformAppleTV},
}

var countryWeights = []weighted[string]{
	{"US", 0.40},
	{"UK", 0.12},
	{"CA", 0.10},
	{"DE", 0.08},
	{"FR", 0.07},
	{"BR", 0.07},
	{"IN", 0.06},
	{"JP", 0.05},
	{"AU", 0.03},
	{"MX", 0.02},
}

var qualityWeights = []weighted[string]{
	{"1080p", 0.45},
	{"720p", 0.25},
	{"4k", 0.20},
	{"480p", 0.10},
}

// platformUserAgents holds one realistic user agent string per platform.
var platformUserAgents = map[models.Platform]string{
	models.PlatformWeb:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	models.PlatformIOS:     "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/21C62",
	models.PlatformAndroid: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
	models.PlatformRoku:    "Roku/DVP-12.5 (12.5.5.4163-29)",
	models.PlatformFireTV:  "Mozilla/5.0 (Linux; Android 9; AFTKA) AppleWebKit/537.36 (KHTML, like Gecko) Silk/120.2.1 Safari/537.36",
	models.PlatformAppleTV: "AppleTV14,1/17.2",
}

func pickWeighted[T any](choices []weighted[T], roll float64) T {
	acc := 0.0
	for _, c := range choices {
		acc += c.weight
		if roll < acc {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}
