package weather

// Raw* types mirror the OpenWeatherMap payloads as fetched. Validation tags
// describe the minimum shape a payload needs before it can be normalized.

// RawCondition is one entry of a provider "weather" list.
type RawCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
}

// RawMain carries the "main" block of current and hourly readings.
type RawMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure" validate:"gte=0"`
	Humidity  int     `json:"humidity" validate:"gte=0,lte=100"`
	SeaLevel  *int    `json:"sea_level,omitempty"`
	GrndLevel *int    `json:"grnd_level,omitempty"`
}

type RawWind struct {
	Speed float64  `json:"speed" validate:"gte=0"`
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

type RawClouds struct {
	All int `json:"all"`
}

// RawPrecip is a rain or snow volume block keyed by accumulation window.
type RawPrecip struct {
	OneH   *float64 `json:"1h,omitempty"`
	ThreeH *float64 `json:"3h,omitempty"`
}

type RawSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise" validate:"gte=0"`
	Sunset  int64  `json:"sunset" validate:"gte=0"`
}

// RawCurrent is the current-weather endpoint payload.
type RawCurrent struct {
	Coord      Coordinates    `json:"coord"`
	Weather    []RawCondition `json:"weather" validate:"required,min=1,dive"`
	Main       *RawMain       `json:"main" validate:"required"`
	Visibility int            `json:"visibility"`
	Wind       *RawWind       `json:"wind" validate:"required"`
	Clouds     *RawClouds     `json:"clouds,omitempty"`
	Rain       *RawPrecip     `json:"rain,omitempty"`
	Snow       *RawPrecip     `json:"snow,omitempty"`
	Dt         int64          `json:"dt" validate:"gt=0"`
	Sys        *RawSys        `json:"sys" validate:"required"`
	Timezone   int            `json:"timezone"`
	Name       string         `json:"name"`
}

// RawCity describes the location block of the forecast payloads.
type RawCity struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Coord    Coordinates `json:"coord"`
	Country  string      `json:"country"`
	Timezone *int        `json:"timezone,omitempty"`
	Sunrise  *int64      `json:"sunrise,omitempty"`
	Sunset   *int64      `json:"sunset,omitempty"`
}

// RawHourlyItem is a single point of the hourly forecast.
type RawHourlyItem struct {
	Dt         int64          `json:"dt" validate:"gt=0"`
	Main       *RawMain       `json:"main" validate:"required"`
	Weather    []RawCondition `json:"weather" validate:"required,min=1,dive"`
	Clouds     *RawClouds     `json:"clouds,omitempty"`
	Wind       *RawWind       `json:"wind" validate:"required"`
	Visibility *int           `json:"visibility,omitempty"`
	Pop        *float64       `json:"pop,omitempty"`
	Rain       *RawPrecip     `json:"rain,omitempty"`
	Snow       *RawPrecip     `json:"snow,omitempty"`
	DtTxt      string         `json:"dt_txt"`
}

// RawHourly is the hourly-forecast endpoint payload.
type RawHourly struct {
	Cod  string          `json:"cod"`
	Cnt  *int            `json:"cnt,omitempty"`
	List []RawHourlyItem `json:"list" validate:"dive"`
	City *RawCity        `json:"city,omitempty"`
}

type RawDailyTemp struct {
	Day   float64  `json:"day"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Night float64  `json:"night"`
	Eve   float64  `json:"eve"`
	Morn  float64  `json:"morn"`
}

type RawDailyFeelsLike struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

// RawDailyItem is a single day of the 16-day forecast. Wind and daylight
// fields are optional upstream.
type RawDailyItem struct {
	Dt        int64              `json:"dt" validate:"gt=0"`
	Sunrise   *int64             `json:"sunrise,omitempty"`
	Sunset    *int64             `json:"sunset,omitempty"`
	Temp      *RawDailyTemp      `json:"temp" validate:"required"`
	FeelsLike *RawDailyFeelsLike `json:"feels_like,omitempty"`
	Pressure  int                `json:"pressure" validate:"gte=0"`
	Humidity  int                `json:"humidity" validate:"gte=0,lte=100"`
	Weather   []RawCondition     `json:"weather" validate:"required,min=1,dive"`
	Speed     *float64           `json:"speed,omitempty"`
	Deg       *int               `json:"deg,omitempty"`
	Gust      *float64           `json:"gust,omitempty"`
	Clouds    *int               `json:"clouds,omitempty"`
	Pop       *float64           `json:"pop,omitempty"`
	Rain      *float64           `json:"rain,omitempty"`
	Snow      *float64           `json:"snow,omitempty"`
}

// RawDaily is the daily-forecast endpoint payload.
type RawDaily struct {
	City *RawCity       `json:"city,omitempty"`
	Cod  string         `json:"cod"`
	Cnt  *int           `json:"cnt,omitempty"`
	List []RawDailyItem `json:"list" validate:"dive"`
}
