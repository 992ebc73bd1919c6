package weather

// UnknownEmoji is returned for icon codes missing from the table.
const UnknownEmoji = "❓"

// iconEmoji maps OpenWeatherMap icon codes to emoji.
// See https://openweathermap.org/weather-conditions
var iconEmoji = map[string]string{
	// day
	"01d": "☀️", // clear sky
	"02d": "🌤️", // few clouds
	"03d": "☁️", // scattered clouds
	"04d": "🌥️", // broken / overcast clouds
	"09d": "🌦️", // shower rain
	"10d": "🌧️", // rain
	"11d": "⛈️", // thunderstorm
	"13d": "❄️", // snow
	"50d": "🌫️", // mist
	// night
	"01n": "🌙",
	"02n": "☁️",
	"03n": "☁️",
	"04n": "🌥️",
	"09n": "🌦️",
	"10n": "🌧️",
	"11n": "⛈️",
	"13n": "❄️",
	"50n": "🌫️",
}

// EmojiForIcon never fails: unknown or empty codes yield UnknownEmoji.
func EmojiForIcon(icon string) string {
	if e, ok := iconEmoji[icon]; ok {
		return e
	}
	return UnknownEmoji
}
